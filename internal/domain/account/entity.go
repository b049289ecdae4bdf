package account

import (
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "super-admin" // Full access, bypasses every role gate
	RoleAdmin      Role = "admin"       // Org-wide user and team administration
	RoleCEO        Role = "ceo"         // Org-wide note visibility, may mark notes private
	RoleManager    Role = "manager"     // Team-scoped note visibility
	RoleHR         Role = "hr"          // Public notes only, read-only
	RoleEmployee   Role = "employee"    // Login-capable, no note access
)

// ParseRole normalizes and validates a role name.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleCEO, RoleManager, RoleHR, RoleEmployee:
		return role, nil
	}
	return "", ErrInvalidRole
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

// ParseStatus validates an account status name.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusActive, StatusInactive, StatusArchived:
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Actor is the authenticated identity a request acts as, as carried by the
// session token claims.
type Actor struct {
	ID   string
	Role Role
}

type Account struct {
	ID               string
	Email            string
	Credential       Credential
	Role             Role
	Status           Status
	ForcedReset      bool
	ResetTokenDigest *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// IsAdministrative reports whether the account may manage users and teams.
func (a *Account) IsAdministrative() bool {
	return a.Role == RoleSuperAdmin || a.Role == RoleAdmin
}
