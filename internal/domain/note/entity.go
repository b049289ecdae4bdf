package note

import (
	"time"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// Note is a timestamped evaluative record about an employee. IsPrivate hides
// the note from manager and hr visibility entirely; only ceo and super-admin
// may see or set it.
type Note struct {
	ID         string
	EmployeeID string
	Note       string
	Type       string
	CreatedBy  string
	CreatedAt  time.Time
	Year       int
	IsPrivate  bool

	// DTO / Join
	EmployeeName  string
	EmployeeEmail string
	CreatorEmail  string
	CreatorRole   account.Role
}
