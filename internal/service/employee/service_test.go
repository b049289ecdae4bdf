package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
)

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
	sequence  int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return *e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	r.sequence++
	newEmployee.ID = fmt.Sprintf("emp-%d", r.sequence)
	clone := newEmployee
	r.employees[newEmployee.ID] = &clone
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) CreateIfAbsent(ctx context.Context, newEmployee employee.Employee) (bool, error) {
	if _, err := r.Create(ctx, newEmployee); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListWithManagers(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Active = active
	return nil
}

func (r *fakeEmployeeRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, e := range r.employees {
		if e.Active {
			n++
		}
	}
	return n, nil
}

type fakeRecorder struct {
	details []string
}

func (f *fakeRecorder) Record(_ context.Context, _ string, _ string, details string) {
	f.details = append(f.details, details)
}

var adminActor = account.Actor{ID: "acc-admin", Role: account.RoleAdmin}

func TestCreate_NormalizesInput(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &EmployeeServiceImpl{employeeRepo: repo, recorder: &fakeRecorder{}}

	created, err := svc.Create(context.Background(), adminActor, employee.CreateEmployeeRequest{
		Name:  "  Alice Chen ",
		Email: " Alice@Example.COM ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.True(t, created.Active)
}

func TestCreate_AdministrativeOnly(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo(), recorder: &fakeRecorder{}}

	_, err := svc.Create(context.Background(), account.Actor{ID: "acc-m1", Role: account.RoleManager}, employee.CreateEmployeeRequest{
		Name:  "Alice Chen",
		Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestDeactivate(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := &EmployeeServiceImpl{employeeRepo: repo, recorder: &fakeRecorder{}}
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor, employee.CreateEmployeeRequest{Name: "Alice Chen", Email: "alice@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, adminActor, created.ID))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// The record survives deactivation.
	_, err = repo.GetByID(ctx, created.ID)
	assert.NoError(t, err)

	err = svc.Deactivate(ctx, adminActor, "emp-ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestImport_PerRowBookkeeping(t *testing.T) {
	repo := newFakeEmployeeRepo()
	recorder := &fakeRecorder{}
	svc := &EmployeeServiceImpl{employeeRepo: repo, recorder: recorder}
	ctx := context.Background()

	_, err := svc.Create(ctx, adminActor, employee.CreateEmployeeRequest{Name: "Existing", Email: "existing@example.com"})
	require.NoError(t, err)

	result, err := svc.Import(ctx, adminActor, []employee.ImportRow{
		{Name: "Alice Chen", Email: "alice@example.com"},
		{Name: "", Email: "noname@example.com"},
		{Name: "No Email", Email: ""},
		{Name: "Bad Email", Email: "not-an-email"},
		{Name: "Dup", Email: "existing@example.com"},
		{Name: "Bob Reyes", Email: "BOB@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 4)

	byEmail := make(map[string]string, len(result.Errors))
	for _, rowErr := range result.Errors {
		byEmail[rowErr.Row.Email] = rowErr.Error
	}
	assert.Equal(t, "name is required", byEmail["noname@example.com"])
	assert.Equal(t, "email is required", byEmail[""])
	assert.Equal(t, "invalid email address", byEmail["not-an-email"])
	assert.Equal(t, "email already exists", byEmail["existing@example.com"])

	// Email is normalized before insertion.
	_, err = repo.GetByEmail(ctx, "bob@example.com")
	assert.NoError(t, err)

	assert.Contains(t, recorder.details, "Imported 2 employees")
}

func TestImport_AdministrativeOnly(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo(), recorder: &fakeRecorder{}}

	_, err := svc.Import(context.Background(), account.Actor{ID: "acc-hr", Role: account.RoleHR}, []employee.ImportRow{
		{Name: "Alice Chen", Email: "alice@example.com"},
	})
	assert.ErrorIs(t, err, policy.ErrForbidden)
}
