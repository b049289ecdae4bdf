package account

import (
	"context"
)

// AccountService defines administrative user management. Handlers gate these
// behind administrative roles; the service re-checks the actor's role.
type AccountService interface {
	Create(ctx context.Context, actor Actor, req CreateAccountRequest) (AccountSummary, error)
	List(ctx context.Context, actor Actor) ([]AccountSummary, error)
	Get(ctx context.Context, actor Actor, id string) (AccountSummary, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateAccountRequest) (AccountSummary, error)
	// UpdateRole changes the role and forces a password reset, compelling the
	// target to rotate the credential at the next sensitive action.
	UpdateRole(ctx context.Context, actor Actor, id string, req UpdateRoleRequest) (AccountSummary, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req UpdateStatusRequest) error
	Delete(ctx context.Context, actor Actor, id string) error
}
