package account

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	Create(ctx context.Context, newAccount Account) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListByRole(ctx context.Context, role Role) ([]Account, error)
	Update(ctx context.Context, id string, email string, role Role) (Account, error)
	// UpdateRole changes the role and optionally raises the forced-reset flag.
	UpdateRole(ctx context.Context, id string, role Role, forceReset bool) (Account, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// UpdateCredential rotates the stored credential. When clearForcedReset is
	// set the forced-reset flag is lowered in the same statement.
	UpdateCredential(ctx context.Context, id string, cred Credential, clearForcedReset bool) error
	// SetForcedCredential rotates the credential and raises the forced-reset flag.
	SetForcedCredential(ctx context.Context, id string, cred Credential) (Account, error)
	SetResetToken(ctx context.Context, id string, digest string, expiry time.Time) error
	// ConsumeResetToken atomically matches an unexpired reset-token digest,
	// rotates the credential, clears the token fields and lowers the
	// forced-reset flag. Returns ErrAccountNotFound when no row matches.
	ConsumeResetToken(ctx context.Context, digest string, now time.Time, newCred Credential) (Account, error)
	Delete(ctx context.Context, id string) error
}
