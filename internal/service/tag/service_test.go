package tag

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
)

type fakeTagRepo struct {
	tags     map[string]*tag.Tag
	sequence int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*tag.Tag)}
}

func (r *fakeTagRepo) Create(_ context.Context, newTag tag.Tag) (tag.Tag, error) {
	r.sequence++
	newTag.ID = fmt.Sprintf("tag-%d", r.sequence)
	clone := newTag
	r.tags[newTag.ID] = &clone
	return newTag, nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, id string) (tag.Tag, error) {
	t, ok := r.tags[id]
	if !ok {
		return tag.Tag{}, tag.ErrTagNotFound
	}
	return *t, nil
}

func (r *fakeTagRepo) ListByEmployee(_ context.Context, employeeID string) ([]tag.Tag, error) {
	var out []tag.Tag
	for _, t := range r.tags {
		if t.EmployeeID == employeeID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTagRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tags[id]; !ok {
		return tag.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
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

type fakeTeamRepo struct {
	team.TeamRepository
	teams map[string][]string
}

func (r *fakeTeamRepo) TeamEmployeeIDs(_ context.Context, managerID string) ([]string, error) {
	return r.teams[managerID], nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(_ context.Context, _ string, action string, _ string) {
	f.actions = append(f.actions, action)
}

var (
	ceoActor = account.Actor{ID: "acc-ceo", Role: account.RoleCEO}
	hrActor  = account.Actor{ID: "acc-hr", Role: account.RoleHR}
	m1Actor  = account.Actor{ID: "acc-m1", Role: account.RoleManager}
	m2Actor  = account.Actor{ID: "acc-m2", Role: account.RoleManager}
)

func newTestService() (*TagServiceImpl, *fakeTagRepo, *fakeRecorder) {
	tags := newFakeTagRepo()
	recorder := &fakeRecorder{}
	svc := &TagServiceImpl{
		tagRepo: tags,
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-e1": {ID: "emp-e1", Name: "Alice Chen", Active: true},
			"emp-e2": {ID: "emp-e2", Name: "Bob Reyes", Active: true},
		}},
		teamRepo: &fakeTeamRepo{teams: map[string][]string{
			m1Actor.ID: {"emp-e1"},
			m2Actor.ID: {"emp-e1", "emp-e2"},
		}},
		recorder: recorder,
	}
	return svc, tags, recorder
}

func TestAdd(t *testing.T) {
	svc, _, recorder := newTestService()
	ctx := context.Background()

	created, err := svc.Add(ctx, m1Actor, "emp-e1", "  mentor  ")
	require.NoError(t, err)
	assert.Equal(t, "mentor", created.Tag)
	assert.Equal(t, m1Actor.ID, created.CreatedBy)
	assert.Contains(t, recorder.actions, "Added Tag")

	// Out of team.
	_, err = svc.Add(ctx, m1Actor, "emp-e2", "mentor")
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// HR does not author tags.
	_, err = svc.Add(ctx, hrActor, "emp-e1", "mentor")
	assert.ErrorIs(t, err, policy.ErrForbidden)

	_, err = svc.Add(ctx, ceoActor, "emp-ghost", "mentor")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListForEmployee_ManagerSeesOwnAuthoredOnly(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Both managers hold emp-e1 on their team; each tags them once.
	_, err := svc.Add(ctx, m1Actor, "emp-e1", "mentor")
	require.NoError(t, err)
	_, err = svc.Add(ctx, m2Actor, "emp-e1", "flight-risk")
	require.NoError(t, err)

	m1Tags, err := svc.ListForEmployee(ctx, m1Actor, "emp-e1")
	require.NoError(t, err)
	require.Len(t, m1Tags, 1)
	assert.Equal(t, "mentor", m1Tags[0].Tag)

	hrTags, err := svc.ListForEmployee(ctx, hrActor, "emp-e1")
	require.NoError(t, err)
	assert.Len(t, hrTags, 2)

	ceoTags, err := svc.ListForEmployee(ctx, ceoActor, "emp-e1")
	require.NoError(t, err)
	assert.Len(t, ceoTags, 2)
}

func TestDelete_WriteScope(t *testing.T) {
	svc, tags, _ := newTestService()
	ctx := context.Background()

	byM2, err := svc.Add(ctx, m2Actor, "emp-e1", "flight-risk")
	require.NoError(t, err)

	// Not the author.
	err = svc.Delete(ctx, m1Actor, byM2.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Top role deletes anything.
	require.NoError(t, svc.Delete(ctx, ceoActor, byM2.ID))
	_, err = tags.GetByID(ctx, byM2.ID)
	assert.ErrorIs(t, err, tag.ErrTagNotFound)

	err = svc.Delete(ctx, ceoActor, "tag-missing")
	assert.ErrorIs(t, err, tag.ErrTagNotFound)
}
