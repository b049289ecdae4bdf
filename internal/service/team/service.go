package team

import (
	"context"
	"fmt"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/employee"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

// TeamServiceImpl manages the manager-to-employee edges every scoped
// visibility decision is derived from.
type TeamServiceImpl struct {
	teamRepo     team.TeamRepository
	accountRepo  account.AccountRepository
	employeeRepo employee.EmployeeRepository
	txManager    database.TxManager
	recorder     activity.Recorder
}

func NewTeamService(
	teamRepo team.TeamRepository,
	accountRepo account.AccountRepository,
	employeeRepo employee.EmployeeRepository,
	txManager database.TxManager,
	recorder activity.Recorder,
) team.TeamService {
	return &TeamServiceImpl{
		teamRepo:     teamRepo,
		accountRepo:  accountRepo,
		employeeRepo: employeeRepo,
		txManager:    txManager,
		recorder:     recorder,
	}
}

func (s *TeamServiceImpl) Managers(ctx context.Context) ([]account.AccountSummary, error) {
	managers, err := s.accountRepo.ListByRole(ctx, account.RoleManager)
	if err != nil {
		return nil, err
	}

	summaries := make([]account.AccountSummary, 0, len(managers))
	for _, m := range managers {
		summaries = append(summaries, account.Summarize(m))
	}

	return summaries, nil
}

func (s *TeamServiceImpl) TeamOf(ctx context.Context, managerID string) ([]team.Member, error) {
	if _, err := s.accountRepo.GetByID(ctx, managerID); err != nil {
		return nil, err
	}

	return s.teamRepo.ListTeam(ctx, managerID)
}

func (s *TeamServiceImpl) ManagersOf(ctx context.Context, employeeID string) ([]string, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	return s.teamRepo.ManagersOf(ctx, employeeID)
}

func (s *TeamServiceImpl) IsMember(ctx context.Context, managerID string, employeeID string) (bool, error) {
	return s.teamRepo.IsMember(ctx, managerID, employeeID)
}

func (s *TeamServiceImpl) Assign(ctx context.Context, actor account.Actor, managerID string, employeeID string) error {
	if !policy.IsAdministrative(actor.Role) {
		return policy.ErrForbidden
	}

	manager, err := s.accountRepo.GetByID(ctx, managerID)
	if err != nil {
		return err
	}
	if manager.Role != account.RoleManager {
		return account.ErrInvalidRole
	}

	subject, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.teamRepo.IsMember(ctx, managerID, employeeID)
		if err != nil {
			return err
		}
		if member {
			return team.ErrAlreadyAssigned
		}

		return s.teamRepo.Assign(ctx, managerID, employeeID)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Assign Employee", fmt.Sprintf("Assigned %s to manager %s", subject.Name, manager.Email))

	return nil
}

func (s *TeamServiceImpl) Unassign(ctx context.Context, actor account.Actor, managerID string, employeeID string) error {
	if !policy.IsAdministrative(actor.Role) {
		return policy.ErrForbidden
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.teamRepo.IsMember(ctx, managerID, employeeID)
		if err != nil {
			return err
		}
		if !member {
			return team.ErrAssignmentNotFound
		}

		return s.teamRepo.Unassign(ctx, managerID, employeeID)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Unassign Employee", fmt.Sprintf("Unassigned employee %s from manager %s", employeeID, managerID))

	return nil
}

func (s *TeamServiceImpl) Unassigned(ctx context.Context) ([]team.Member, error) {
	return s.teamRepo.ListUnassigned(ctx)
}
