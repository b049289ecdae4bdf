package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailExists     = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role name")
	ErrInvalidStatus   = errors.New("invalid account status")
)
