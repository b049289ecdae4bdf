package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
)

const recordTimeout = 5 * time.Second

// ActivityServiceImpl stores and serves the audit trail. Record is
// fire-and-forget: an audit write must never fail or slow down the operation
// it describes.
type ActivityServiceImpl struct {
	activityRepo activity.ActivityRepository
	teamRepo     team.TeamRepository
	logger       *slog.Logger

	// recordSync forces Record to run inline, for deterministic tests.
	recordSync bool
}

func NewActivityService(activityRepo activity.ActivityRepository, teamRepo team.TeamRepository, logger *slog.Logger) activity.ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		teamRepo:     teamRepo,
		logger:       logger,
	}
}

// Record appends an entry on a detached goroutine with its own deadline, so
// it outlives the request context and swallows failures.
func (s *ActivityServiceImpl) Record(ctx context.Context, actorID string, action string, details string) {
	insert := func() {
		recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()

		err := s.activityRepo.Insert(recordCtx, activity.Entry{
			UserID:    actorID,
			Action:    action,
			Details:   details,
			Timestamp: time.Now(),
		})
		if err != nil {
			s.logger.Error("failed to record activity",
				slog.String("action", action),
				slog.String("user_id", actorID),
				slog.Any("error", err),
			)
		}
	}

	if s.recordSync {
		insert()
		return
	}
	go insert()
}

func (s *ActivityServiceImpl) List(ctx context.Context, actor account.Actor) ([]activity.Entry, error) {
	if !policy.CanViewActivityLog(actor.Role) {
		return nil, policy.ErrForbidden
	}

	if actor.Role != account.RoleManager {
		return s.activityRepo.List(ctx)
	}

	scope, err := s.managerScope(ctx, actor)
	if err != nil {
		return nil, err
	}

	subjects := make([]string, 0, len(scope))
	for id := range scope {
		subjects = append(subjects, id)
	}

	return s.activityRepo.ListForUsers(ctx, subjects)
}

func (s *ActivityServiceImpl) Update(ctx context.Context, actor account.Actor, id string, action string, details string) (activity.Entry, error) {
	entry, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return activity.Entry{}, err
	}

	scope, err := s.managerScope(ctx, actor)
	if err != nil {
		return activity.Entry{}, err
	}

	if !policy.ForActivity(actor, scope, entry).Write {
		return activity.Entry{}, policy.ErrForbidden
	}

	return s.activityRepo.Update(ctx, id, action, details)
}

func (s *ActivityServiceImpl) Delete(ctx context.Context, actor account.Actor, id string) error {
	entry, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	scope, err := s.managerScope(ctx, actor)
	if err != nil {
		return err
	}

	if !policy.ForActivity(actor, scope, entry).Delete {
		return policy.ErrForbidden
	}

	return s.activityRepo.Delete(ctx, id)
}

// managerScope resolves the account-id set a manager's audit visibility is
// bounded by: their own account plus the accounts of their team members.
// Non-manager roles carry no scope set.
func (s *ActivityServiceImpl) managerScope(ctx context.Context, actor account.Actor) (policy.TeamSet, error) {
	if actor.Role != account.RoleManager {
		return nil, nil
	}

	ids, err := s.teamRepo.TeamAccountIDs(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	scope := policy.NewTeamSet(ids)
	scope[actor.ID] = struct{}{}

	return scope, nil
}
