package account

import (
	"context"
	"fmt"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
)

// AccountServiceImpl implements administrative user management. Routes are
// already gated by role middleware; the service re-checks the actor so the
// rule holds even for internal callers.
type AccountServiceImpl struct {
	accountRepo account.AccountRepository
	recorder    activity.Recorder
}

func NewAccountService(accountRepo account.AccountRepository, recorder activity.Recorder) account.AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		recorder:    recorder,
	}
}

func (s *AccountServiceImpl) Create(ctx context.Context, actor account.Actor, req account.CreateAccountRequest) (account.AccountSummary, error) {
	if !policy.IsAdministrative(actor.Role) {
		return account.AccountSummary{}, policy.ErrForbidden
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return account.AccountSummary{}, err
	}

	cred, err := account.NewHashedCredential(req.Password)
	if err != nil {
		return account.AccountSummary{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.accountRepo.Create(ctx, account.Account{
		Email:      req.Email,
		Credential: cred,
		Role:       role,
		Status:     account.StatusActive,
	})
	if err != nil {
		return account.AccountSummary{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Create User", fmt.Sprintf("Created user %s with role %s", created.Email, created.Role))

	return account.Summarize(created), nil
}

func (s *AccountServiceImpl) List(ctx context.Context, actor account.Actor) ([]account.AccountSummary, error) {
	if !policy.IsAdministrative(actor.Role) {
		return nil, policy.ErrForbidden
	}

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]account.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, account.Summarize(a))
	}

	return summaries, nil
}

func (s *AccountServiceImpl) Get(ctx context.Context, actor account.Actor, id string) (account.AccountSummary, error) {
	if !policy.IsAdministrative(actor.Role) {
		return account.AccountSummary{}, policy.ErrForbidden
	}

	found, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return account.AccountSummary{}, err
	}

	return account.Summarize(found), nil
}

func (s *AccountServiceImpl) Update(ctx context.Context, actor account.Actor, id string, req account.UpdateAccountRequest) (account.AccountSummary, error) {
	if !policy.IsAdministrative(actor.Role) {
		return account.AccountSummary{}, policy.ErrForbidden
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return account.AccountSummary{}, err
	}

	updated, err := s.accountRepo.Update(ctx, id, req.Email, role)
	if err != nil {
		return account.AccountSummary{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Update User", fmt.Sprintf("Updated user %s", updated.Email))

	return account.Summarize(updated), nil
}

// UpdateRole changes the target's role and raises forced_reset so the new
// permission set only becomes usable after the credential is rotated.
func (s *AccountServiceImpl) UpdateRole(ctx context.Context, actor account.Actor, id string, req account.UpdateRoleRequest) (account.AccountSummary, error) {
	if !policy.IsAdministrative(actor.Role) {
		return account.AccountSummary{}, policy.ErrForbidden
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return account.AccountSummary{}, err
	}

	updated, err := s.accountRepo.UpdateRole(ctx, id, role, true)
	if err != nil {
		return account.AccountSummary{}, err
	}

	s.recorder.Record(ctx, actor.ID, "Update User Role", fmt.Sprintf("Changed role of %s to %s", updated.Email, updated.Role))

	return account.Summarize(updated), nil
}

func (s *AccountServiceImpl) UpdateStatus(ctx context.Context, actor account.Actor, id string, req account.UpdateStatusRequest) error {
	if !policy.IsAdministrative(actor.Role) {
		return policy.ErrForbidden
	}

	status, err := account.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	if err := s.accountRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Update User Status", fmt.Sprintf("Set user %s status to %s", id, status))

	return nil
}

func (s *AccountServiceImpl) Delete(ctx context.Context, actor account.Actor, id string) error {
	if !policy.IsAdministrative(actor.Role) {
		return policy.ErrForbidden
	}

	target, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor.ID, "Delete User", fmt.Sprintf("Deleted user %s", target.Email))

	return nil
}
