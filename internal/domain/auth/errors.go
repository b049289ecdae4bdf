package auth

import "errors"

var (
	// ErrInvalidCredentials is deliberately opaque: it covers both an unknown
	// email and a wrong password so login cannot be used to enumerate accounts.
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountInactive       = errors.New("account is not active")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrIncorrectPassword     = errors.New("incorrect current password")
	ErrPasswordResetRequired = errors.New("password reset required")
)
