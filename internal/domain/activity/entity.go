package activity

import "time"

// Entry is one append-only record of a security-relevant action.
type Entry struct {
	ID        string
	UserID    string
	Action    string
	Details   string
	TargetID  *string
	Timestamp time.Time

	// DTO / Join
	UserEmail string
}
