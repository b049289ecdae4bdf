package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

type edge struct {
	managerID  string
	employeeID string
}

type fakeTeamRepo struct {
	edges []edge
}

func (r *fakeTeamRepo) ListTeam(_ context.Context, managerID string) ([]team.Member, error) {
	var out []team.Member
	for _, e := range r.edges {
		if e.managerID == managerID {
			out = append(out, team.Member{EmployeeID: e.employeeID})
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) TeamEmployeeIDs(_ context.Context, managerID string) ([]string, error) {
	var out []string
	for _, e := range r.edges {
		if e.managerID == managerID {
			out = append(out, e.employeeID)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) TeamAccountIDs(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (r *fakeTeamRepo) ManagersOf(_ context.Context, employeeID string) ([]string, error) {
	var out []string
	for _, e := range r.edges {
		if e.employeeID == employeeID {
			out = append(out, e.managerID)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) IsMember(_ context.Context, managerID string, employeeID string) (bool, error) {
	for _, e := range r.edges {
		if e.managerID == managerID && e.employeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTeamRepo) Assign(_ context.Context, managerID string, employeeID string) error {
	r.edges = append(r.edges, edge{managerID: managerID, employeeID: employeeID})
	return nil
}

func (r *fakeTeamRepo) Unassign(_ context.Context, managerID string, employeeID string) error {
	for i, e := range r.edges {
		if e.managerID == managerID && e.employeeID == employeeID {
			r.edges = append(r.edges[:i], r.edges[i+1:]...)
			return nil
		}
	}
	return team.ErrAssignmentNotFound
}

func (r *fakeTeamRepo) ListUnassigned(_ context.Context) ([]team.Member, error) {
	return nil, nil
}

type fakeAccountRepo struct {
	account.AccountRepository
	accounts map[string]account.Account
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return account.Account{}, account.ErrAccountNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) ListByRole(_ context.Context, role account.Role) ([]account.Account, error) {
	var out []account.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(_ context.Context, _ string, action string, _ string) {
	f.actions = append(f.actions, action)
}

var (
	adminActor   = account.Actor{ID: "acc-admin", Role: account.RoleAdmin}
	managerActor = account.Actor{ID: "acc-m1", Role: account.RoleManager}
)

func newTestService() (*TeamServiceImpl, *fakeTeamRepo, *fakeRecorder) {
	teamRepo := &fakeTeamRepo{}
	recorder := &fakeRecorder{}
	svc := &TeamServiceImpl{
		teamRepo: teamRepo,
		accountRepo: &fakeAccountRepo{accounts: map[string]account.Account{
			"acc-m1": {ID: "acc-m1", Email: "m1@example.com", Role: account.RoleManager},
			"acc-m2": {ID: "acc-m2", Email: "m2@example.com", Role: account.RoleManager},
			"acc-hr": {ID: "acc-hr", Email: "hr@example.com", Role: account.RoleHR},
		}},
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-e1": {ID: "emp-e1", Name: "Alice Chen", Active: true},
			"emp-e2": {ID: "emp-e2", Name: "Bob Reyes", Active: true},
		}},
		txManager: database.NoopTxManager{},
		recorder:  recorder,
	}
	return svc, teamRepo, recorder
}

func TestAssign(t *testing.T) {
	svc, _, recorder := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Assign(ctx, adminActor, "acc-m1", "emp-e1"))
	assert.Contains(t, recorder.actions, "Assign Employee")

	member, err := svc.IsMember(ctx, "acc-m1", "emp-e1")
	require.NoError(t, err)
	assert.True(t, member)

	// An employee may belong to several managers.
	require.NoError(t, svc.Assign(ctx, adminActor, "acc-m2", "emp-e1"))
	managers, err := svc.ManagersOf(ctx, "emp-e1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"acc-m1", "acc-m2"}, managers)
}

func TestAssign_DuplicateEdge(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Assign(ctx, adminActor, "acc-m1", "emp-e1"))
	err := svc.Assign(ctx, adminActor, "acc-m1", "emp-e1")
	assert.ErrorIs(t, err, team.ErrAlreadyAssigned)
}

func TestAssign_TargetMustBeManager(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Assign(context.Background(), adminActor, "acc-hr", "emp-e1")
	assert.ErrorIs(t, err, account.ErrInvalidRole)
}

func TestAssign_UnknownParties(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	err := svc.Assign(ctx, adminActor, "acc-ghost", "emp-e1")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)

	err = svc.Assign(ctx, adminActor, "acc-m1", "emp-ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAssign_AdministrativeOnly(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Assign(context.Background(), managerActor, "acc-m1", "emp-e1")
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUnassign(t *testing.T) {
	svc, _, recorder := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Assign(ctx, adminActor, "acc-m1", "emp-e1"))
	require.NoError(t, svc.Unassign(ctx, adminActor, "acc-m1", "emp-e1"))
	assert.Contains(t, recorder.actions, "Unassign Employee")

	err := svc.Unassign(ctx, adminActor, "acc-m1", "emp-e1")
	assert.ErrorIs(t, err, team.ErrAssignmentNotFound)
}

func TestManagers(t *testing.T) {
	svc, _, _ := newTestService()

	managers, err := svc.Managers(context.Background())
	require.NoError(t, err)
	require.Len(t, managers, 2)
	for _, m := range managers {
		assert.Equal(t, account.RoleManager, m.Role)
	}
}
