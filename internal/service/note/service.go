package note

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
)

// Clock abstracts time for deterministic year derivation in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NoteServiceImpl enforces visibility policy around the note store. A note
// that exists but is out of the actor's scope fails with ErrForbidden; an
// absent note fails with ErrNoteNotFound. Listings filter silently.
type NoteServiceImpl struct {
	noteRepo     note.NoteRepository
	employeeRepo employee.EmployeeRepository
	teamRepo     team.TeamRepository
	recorder     activity.Recorder
	clock        Clock
}

func NewNoteService(
	noteRepo note.NoteRepository,
	employeeRepo employee.EmployeeRepository,
	teamRepo team.TeamRepository,
	recorder activity.Recorder,
) note.NoteService {
	return &NoteServiceImpl{
		noteRepo:     noteRepo,
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		recorder:     recorder,
		clock:        systemClock{},
	}
}

// teamSet resolves the employee-id scope for a manager actor. Non-manager
// roles do not consult team edges, so the set stays nil for them.
func (s *NoteServiceImpl) teamSet(ctx context.Context, actor account.Actor) (policy.TeamSet, error) {
	if actor.Role != account.RoleManager {
		return nil, nil
	}

	ids, err := s.teamRepo.TeamEmployeeIDs(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve team scope: %w", err)
	}

	return policy.NewTeamSet(ids), nil
}

func (s *NoteServiceImpl) Create(ctx context.Context, actor account.Actor, req note.CreateNoteRequest) (note.Note, error) {
	subject, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return note.Note{}, err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return note.Note{}, err
	}

	if !policy.CanCreateNote(actor, teamScope, subject.ID) {
		return note.Note{}, policy.ErrForbidden
	}

	now := s.clock.Now()
	created, err := s.noteRepo.Create(ctx, note.Note{
		EmployeeID: subject.ID,
		Note:       req.Note,
		Type:       strings.ToLower(req.Type),
		CreatedBy:  actor.ID,
		CreatedAt:  now,
		Year:       now.Year(),
		IsPrivate:  policy.ClampPrivate(actor.Role, req.IsPrivate),
	})
	if err != nil {
		return note.Note{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Added Note", fmt.Sprintf("Added a note for %s", subject.Name))

	return created, nil
}

func (s *NoteServiceImpl) List(ctx context.Context, actor account.Actor) ([]note.Note, error) {
	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := policy.NoteFilter(actor, teamScope)
	filtered := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if visible(n) {
			filtered = append(filtered, n)
		}
	}

	return filtered, nil
}

func (s *NoteServiceImpl) Timeline(ctx context.Context, actor account.Actor, employeeID string) ([]note.Note, error) {
	return s.scopedByEmployee(ctx, actor, employeeID)
}

func (s *NoteServiceImpl) Update(ctx context.Context, actor account.Actor, id string, req note.UpdateNoteRequest) (note.Note, error) {
	existing, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return note.Note{}, err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return note.Note{}, err
	}

	if !policy.ForNote(actor, teamScope, existing).Write {
		return note.Note{}, policy.ErrForbidden
	}

	updated, err := s.noteRepo.Update(ctx, id, req.Note, strings.ToLower(req.Type), policy.ClampPrivate(actor.Role, req.IsPrivate))
	if err != nil {
		return note.Note{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Updated Note", fmt.Sprintf("Updated a note for %s", existing.EmployeeName))

	return updated, nil
}

func (s *NoteServiceImpl) Delete(ctx context.Context, actor account.Actor, id string) error {
	existing, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return err
	}

	if !policy.ForNote(actor, teamScope, existing).Delete {
		return policy.ErrForbidden
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Deleted Note", fmt.Sprintf("Deleted a note for %s", existing.EmployeeName))

	return nil
}

func (s *NoteServiceImpl) Years(ctx context.Context, actor account.Actor) ([]int, error) {
	// Top roles see every note, so the distinct-year query needs no filtering.
	if policy.IsTop(actor.Role) {
		return s.noteRepo.Years(ctx)
	}

	notes, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(notes))
	years := make([]int, 0, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.Year]; ok {
			continue
		}
		seen[n.Year] = struct{}{}
		years = append(years, n.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return years, nil
}

func (s *NoteServiceImpl) Export(ctx context.Context, actor account.Actor, employeeID string) ([]note.Note, error) {
	notes, err := s.scopedByEmployee(ctx, actor, employeeID)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor.ID, "Exported Notes", fmt.Sprintf("Exported notes for employee %s", employeeID))

	return notes, nil
}

func (s *NoteServiceImpl) scopedByEmployee(ctx context.Context, actor account.Actor, employeeID string) ([]note.Note, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	visible := policy.NoteFilter(actor, teamScope)
	filtered := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if visible(n) {
			filtered = append(filtered, n)
		}
	}

	return filtered, nil
}
