package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates an email/password pair and issues a session token.
	// Inactive accounts are rejected before the password is compared. A
	// correct legacy plaintext credential is silently re-hashed in place.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// ForgotPassword issues a single-use reset token (15 minute expiry) and
	// dispatches it by mail. Only the token's digest is stored.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
	// ResetPassword consumes a reset token and rotates the credential.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	// ChangePassword rotates the caller's own credential after verifying the
	// current one.
	ChangePassword(ctx context.Context, accountID string, req ChangePasswordRequest) error
	// ForceReset lets an administrative actor rotate another account's
	// credential and compel a change at the target's next sensitive action.
	ForceReset(ctx context.Context, actorID string, targetID string, req ForceResetRequest) error
}
