package note

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeNoteRepo struct {
	notes    map[string]*note.Note
	sequence int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*note.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, newNote note.Note) (note.Note, error) {
	r.sequence++
	newNote.ID = fmt.Sprintf("note-%d", r.sequence)
	clone := newNote
	r.notes[newNote.ID] = &clone
	return newNote, nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id string) (note.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return note.Note{}, note.ErrNoteNotFound
	}
	return *n, nil
}

func (r *fakeNoteRepo) List(_ context.Context) ([]note.Note, error) {
	out := make([]note.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNoteRepo) ListByEmployee(_ context.Context, employeeID string) ([]note.Note, error) {
	var out []note.Note
	for _, n := range r.notes {
		if n.EmployeeID == employeeID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, id string, text string, noteType string, isPrivate bool) (note.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return note.Note{}, note.ErrNoteNotFound
	}
	n.Note = text
	n.Type = noteType
	n.IsPrivate = isPrivate
	return *n, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return note.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) Years(_ context.Context) ([]int, error) {
	seen := make(map[int]struct{})
	var out []int
	for _, n := range r.notes {
		if _, ok := seen[n.Year]; !ok {
			seen[n.Year] = struct{}{}
			out = append(out, n.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

func (r *fakeNoteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.notes)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) CreateIfAbsent(_ context.Context, newEmployee employee.Employee) (bool, error) {
	for _, e := range r.employees {
		if e.Email == newEmployee.Email {
			return false, nil
		}
	}
	r.employees[newEmployee.ID] = newEmployee
	return true, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListWithManagers(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) SetActive(_ context.Context, id string, active bool) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Active = active
	r.employees[id] = e
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

// fakeTeamRepo only backs the scoping lookup the note service performs;
// the embedded interface panics on anything else.
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
	actorCEO     = account.Actor{ID: "acc-ceo", Role: account.RoleCEO}
	actorHR      = account.Actor{ID: "acc-hr", Role: account.RoleHR}
	actorM1      = account.Actor{ID: "acc-m1", Role: account.RoleManager}
	actorM2      = account.Actor{ID: "acc-m2", Role: account.RoleManager}
	actorWorker  = account.Actor{ID: "acc-emp", Role: account.RoleEmployee}
	actorSysRoot = account.Actor{ID: "acc-root", Role: account.RoleSuperAdmin}
)

type fixture struct {
	svc      *NoteServiceImpl
	notes    *fakeNoteRepo
	recorder *fakeRecorder
	clock    *stubClock
}

func newFixture() *fixture {
	notes := newFakeNoteRepo()
	recorder := &fakeRecorder{}
	clock := &stubClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	svc := &NoteServiceImpl{
		noteRepo: notes,
		employeeRepo: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-e1": {ID: "emp-e1", Name: "Alice Chen", Email: "alice@example.com", Active: true},
			"emp-e2": {ID: "emp-e2", Name: "Bob Reyes", Email: "bob@example.com", Active: true},
		}},
		teamRepo: &fakeTeamRepo{teams: map[string][]string{
			actorM1.ID: {"emp-e1"},
			actorM2.ID: {"emp-e2"},
		}},
		recorder: recorder,
		clock:    clock,
	}
	return &fixture{svc: svc, notes: notes, recorder: recorder, clock: clock}
}

func (f *fixture) seed(t *testing.T, n note.Note) note.Note {
	t.Helper()
	created, err := f.notes.Create(context.Background(), n)
	require.NoError(t, err)
	return created
}

func TestCreate_ManagerScope(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.Create(ctx, actorM1, note.CreateNoteRequest{
		EmployeeID: "emp-e1",
		Note:       "closed the migration project early",
		Type:       "Praise",
	})
	require.NoError(t, err)
	assert.Equal(t, "praise", created.Type)
	assert.Equal(t, actorM1.ID, created.CreatedBy)
	assert.Equal(t, 2025, created.Year)
	assert.Contains(t, f.recorder.actions, "Added Note")

	// Out of team is forbidden even though the employee exists.
	_, err = f.svc.Create(ctx, actorM1, note.CreateNoteRequest{
		EmployeeID: "emp-e2",
		Note:       "misses standups",
		Type:       "concern",
	})
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestCreate_UnknownEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), actorCEO, note.CreateNoteRequest{
		EmployeeID: "emp-ghost",
		Note:       "text",
		Type:       "note",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_NonAuthoringRoles(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, actor := range []account.Actor{actorHR, actorWorker} {
		_, err := f.svc.Create(ctx, actor, note.CreateNoteRequest{
			EmployeeID: "emp-e1",
			Note:       "text",
			Type:       "note",
		})
		assert.ErrorIs(t, err, policy.ErrForbidden, "role %s", actor.Role)
	}
}

func TestCreate_PrivacyClamp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	byManager, err := f.svc.Create(ctx, actorM1, note.CreateNoteRequest{
		EmployeeID: "emp-e1", Note: "sensitive", Type: "note", IsPrivate: true,
	})
	require.NoError(t, err)
	assert.False(t, byManager.IsPrivate, "manager request for privacy is coerced, not honored")

	byCEO, err := f.svc.Create(ctx, actorCEO, note.CreateNoteRequest{
		EmployeeID: "emp-e1", Note: "sensitive", Type: "note", IsPrivate: true,
	})
	require.NoError(t, err)
	assert.True(t, byCEO.IsPrivate)
}

func TestList_VisibilityScoping(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "by m1", CreatedBy: actorM1.ID, Year: 2025})
	f.seed(t, note.Note{EmployeeID: "emp-e2", Note: "by m2", CreatedBy: actorM2.ID, Year: 2025})
	f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "private", CreatedBy: actorCEO.ID, Year: 2025, IsPrivate: true})

	m1Visible, err := f.svc.List(ctx, actorM1)
	require.NoError(t, err)
	require.Len(t, m1Visible, 1)
	assert.Equal(t, "by m1", m1Visible[0].Note)

	hrVisible, err := f.svc.List(ctx, actorHR)
	require.NoError(t, err)
	assert.Len(t, hrVisible, 2, "hr sees everything except private notes")

	ceoVisible, err := f.svc.List(ctx, actorCEO)
	require.NoError(t, err)
	assert.Len(t, ceoVisible, 3)

	empVisible, err := f.svc.List(ctx, actorWorker)
	require.NoError(t, err)
	assert.Empty(t, empVisible)
}

func TestUpdate_ForbiddenVersusNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	outOfScope := f.seed(t, note.Note{EmployeeID: "emp-e2", Note: "by m2", CreatedBy: actorM2.ID, EmployeeName: "Bob Reyes"})

	// Existing but out of the actor's scope: forbidden.
	_, err := f.svc.Update(ctx, actorM1, outOfScope.ID, note.UpdateNoteRequest{Note: "edited", Type: "note"})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Absent: not found.
	_, err = f.svc.Update(ctx, actorM1, "note-missing", note.UpdateNoteRequest{Note: "edited", Type: "note"})
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestUpdate_ManagerCannotEditPeerNoteOnOwnTeam(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// A CEO note about m1's own team member: visible to m1, but not editable.
	peerNote := f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "by ceo", CreatedBy: actorCEO.ID, EmployeeName: "Alice Chen"})

	_, err := f.svc.Update(ctx, actorM1, peerNote.ID, note.UpdateNoteRequest{Note: "edited", Type: "note"})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	err = f.svc.Delete(ctx, actorM1, peerNote.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUpdate_OwnNoteKeepsScope(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	own := f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "draft", Type: "note", CreatedBy: actorM1.ID, EmployeeName: "Alice Chen"})

	updated, err := f.svc.Update(ctx, actorM1, own.ID, note.UpdateNoteRequest{Note: "final", Type: "Praise", IsPrivate: true})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Note)
	assert.Equal(t, "praise", updated.Type)
	assert.False(t, updated.IsPrivate, "privacy clamp applies on update too")
	assert.Contains(t, f.recorder.actions, "Updated Note")
}

func TestDelete_OwnNote(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	own := f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "obsolete", CreatedBy: actorM1.ID, EmployeeName: "Alice Chen"})

	require.NoError(t, f.svc.Delete(ctx, actorM1, own.ID))
	_, err := f.notes.GetByID(ctx, own.ID)
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
	assert.Contains(t, f.recorder.actions, "Deleted Note")
}

func TestTimeline_AscendingAndScoped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "second", CreatedBy: actorM1.ID, CreatedAt: base.AddDate(0, 1, 0)})
	f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "first", CreatedBy: actorM1.ID, CreatedAt: base})
	f.seed(t, note.Note{EmployeeID: "emp-e1", Note: "hidden", CreatedBy: actorCEO.ID, CreatedAt: base.AddDate(0, 2, 0), IsPrivate: true})

	timeline, err := f.svc.Timeline(ctx, actorM1, "emp-e1")
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, "first", timeline[0].Note)
	assert.Equal(t, "second", timeline[1].Note)

	_, err = f.svc.Timeline(ctx, actorM1, "emp-ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestYears_Scoped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.seed(t, note.Note{EmployeeID: "emp-e1", CreatedBy: actorM1.ID, Year: 2023})
	f.seed(t, note.Note{EmployeeID: "emp-e1", CreatedBy: actorM1.ID, Year: 2025})
	f.seed(t, note.Note{EmployeeID: "emp-e2", CreatedBy: actorM2.ID, Year: 2024})

	all, err := f.svc.Years(ctx, actorSysRoot)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024, 2023}, all)

	scoped, err := f.svc.Years(ctx, actorM1)
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2023}, scoped)
}
