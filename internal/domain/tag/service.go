package tag

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// TagService applies note-shaped visibility scoping to employee tags.
type TagService interface {
	Add(ctx context.Context, actor account.Actor, employeeID string, label string) (Tag, error)
	ListForEmployee(ctx context.Context, actor account.Actor, employeeID string) ([]Tag, error)
	Delete(ctx context.Context, actor account.Actor, id string) error
}
