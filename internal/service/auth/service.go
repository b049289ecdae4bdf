package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/auth"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/policy"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/email"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/jwt"
)

const resetTokenTTL = 15 * time.Minute

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type AuthServiceImpl struct {
	account.AccountRepository
	recorder     activity.Recorder
	jwtService   jwt.Service
	emailService email.EmailService
	frontendURL  string
	clock        Clock
}

func NewAuthService(accountRepository account.AccountRepository, recorder activity.Recorder, jwtService jwt.Service, emailService email.EmailService, frontendURL string) auth.AuthService {
	return &AuthServiceImpl{
		AccountRepository: accountRepository,
		recorder:          recorder,
		jwtService:        jwtService,
		emailService:      emailService,
		frontendURL:       frontendURL,
		clock:             systemClock{},
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	accountData, err := a.AccountRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			// No account id to attribute the failure to, so the audit event
			// is dropped.
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	// The status gate precedes any password comparison.
	if !accountData.IsActive() {
		a.recorder.Record(ctx, accountData.ID, "Failed Login", fmt.Sprintf("Login rejected: account is %s", accountData.Status))
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if !accountData.Credential.Verify(req.Password) {
		a.recorder.Record(ctx, accountData.ID, "Failed Login", "Invalid password")
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if accountData.Credential.IsLegacy() {
		// Silent migration to the hashed encoding. A concurrent login racing
		// this write converges to a valid hash of the same password, so a
		// lost update is harmless.
		if migrated, hashErr := account.NewHashedCredential(req.Password); hashErr != nil {
			slog.Error("failed to hash legacy credential", "account_id", accountData.ID, "error", hashErr)
		} else if updErr := a.AccountRepository.UpdateCredential(ctx, accountData.ID, migrated, false); updErr != nil {
			slog.Error("failed to migrate legacy credential", "account_id", accountData.ID, "error", updErr)
		}
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(accountData.ID, accountData.Email, accountData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	a.recorder.Record(ctx, accountData.ID, "Login", "Successful login")

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		ForcedReset:          accountData.ForcedReset,
		User:                 account.Summarize(accountData),
	}, nil
}

// ForgotPassword implements auth.AuthService.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	accountData, err := a.AccountRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account by email: %w", err)
	}

	token, digest, err := newResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := a.clock.Now().Add(resetTokenTTL)
	if err := a.AccountRepository.SetResetToken(ctx, accountData.ID, digest, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	// Only the digest is stored; the plaintext token leaves the process in
	// the mail and is never recoverable from the database.
	resetLink := fmt.Sprintf("%s/reset-password/%s", a.frontendURL, token)
	go func() {
		if err := a.emailService.SendPasswordReset(accountData.Email, resetLink, expiry.Format(time.RFC1123)); err != nil {
			slog.Error("failed to send password reset email", "account_id", accountData.ID, "error", err)
		}
	}()

	a.recorder.Record(ctx, accountData.ID, "Request Password Reset", "Password reset token issued")

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	newCred, err := account.NewHashedCredential(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// The digest-and-expiry match, credential rotation and token clearing
	// happen in one conditional update, so a token cannot be consumed twice.
	accountData, err := a.AccountRepository.ConsumeResetToken(ctx, digestToken(req.Token), a.clock.Now(), newCred)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return auth.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	a.recorder.Record(ctx, accountData.ID, "Password Reset", "Password reset via emailed token")

	return nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, accountID string, req auth.ChangePasswordRequest) error {
	accountData, err := a.AccountRepository.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if !accountData.Credential.Verify(req.CurrentPassword) {
		return auth.ErrIncorrectPassword
	}

	newCred, err := account.NewHashedCredential(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := a.AccountRepository.UpdateCredential(ctx, accountData.ID, newCred, true); err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	a.recorder.Record(ctx, accountData.ID, "Change Password", "Password changed")

	return nil
}

// ForceReset implements auth.AuthService.
func (a *AuthServiceImpl) ForceReset(ctx context.Context, actorID string, targetID string, req auth.ForceResetRequest) error {
	actorData, err := a.AccountRepository.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to get acting account: %w", err)
	}
	if !policy.IsAdministrative(actorData.Role) {
		return policy.ErrForbidden
	}

	newCred, err := account.NewHashedCredential(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	target, err := a.AccountRepository.SetForcedCredential(ctx, targetID, newCred)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to force credential reset: %w", err)
	}

	a.recorder.Record(ctx, actorID, "Force Password Reset", fmt.Sprintf("Forced password reset for user: %s", target.Email))

	return nil
}

// newResetToken returns a high-entropy token and its one-way digest.
func newResetToken() (token string, digest string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(raw)
	return token, digestToken(token), nil
}

func digestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
