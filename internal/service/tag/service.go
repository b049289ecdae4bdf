package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
)

// TagServiceImpl applies note-shaped visibility to employee tags: managers
// only touch tags they authored for their own team, top roles touch all, hr
// reads all.
type TagServiceImpl struct {
	tagRepo      tag.TagRepository
	employeeRepo employee.EmployeeRepository
	teamRepo     team.TeamRepository
	recorder     activity.Recorder
}

func NewTagService(
	tagRepo tag.TagRepository,
	employeeRepo employee.EmployeeRepository,
	teamRepo team.TeamRepository,
	recorder activity.Recorder,
) tag.TagService {
	return &TagServiceImpl{
		tagRepo:      tagRepo,
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		recorder:     recorder,
	}
}

func (s *TagServiceImpl) teamSet(ctx context.Context, actor account.Actor) (policy.TeamSet, error) {
	if actor.Role != account.RoleManager {
		return nil, nil
	}

	ids, err := s.teamRepo.TeamEmployeeIDs(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve team scope: %w", err)
	}

	return policy.NewTeamSet(ids), nil
}

func (s *TagServiceImpl) Add(ctx context.Context, actor account.Actor, employeeID string, label string) (tag.Tag, error) {
	subject, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return tag.Tag{}, err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return tag.Tag{}, err
	}

	// Authoring follows the same shape as notes: top roles anywhere,
	// managers only within their team.
	if !policy.CanCreateNote(actor, teamScope, subject.ID) {
		return tag.Tag{}, policy.ErrForbidden
	}

	created, err := s.tagRepo.Create(ctx, tag.Tag{
		EmployeeID: subject.ID,
		Tag:        strings.TrimSpace(label),
		CreatedBy:  actor.ID,
	})
	if err != nil {
		return tag.Tag{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Added Tag", fmt.Sprintf("Tagged %s with %q", subject.Name, created.Tag))

	return created, nil
}

func (s *TagServiceImpl) ListForEmployee(ctx context.Context, actor account.Actor, employeeID string) ([]tag.Tag, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	visible := policy.TagFilter(actor, teamScope)
	filtered := make([]tag.Tag, 0, len(tags))
	for _, t := range tags {
		if visible(t) {
			filtered = append(filtered, t)
		}
	}

	return filtered, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, actor account.Actor, id string) error {
	existing, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	teamScope, err := s.teamSet(ctx, actor)
	if err != nil {
		return err
	}

	if !policy.ForTag(actor, teamScope, existing).Delete {
		return policy.ErrForbidden
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Deleted Tag", fmt.Sprintf("Deleted tag %q for employee %s", existing.Tag, existing.EmployeeID))

	return nil
}
