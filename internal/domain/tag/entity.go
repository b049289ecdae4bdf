package tag

import (
	"time"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// Tag is a short label attached to an employee. Visibility follows the same
// shape as notes: managers see only tags they authored, top roles and hr see all.
type Tag struct {
	ID         string
	EmployeeID string
	Tag        string
	CreatedBy  string
	CreatedAt  time.Time

	// DTO / Join
	CreatorRole account.Role
}
