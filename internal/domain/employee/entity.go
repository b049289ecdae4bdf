package employee

import "time"

// Employee is an HR subject record. It is a distinct identity space from
// login accounts: an employee need not have an account.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	ManagerIDs []string
}
