package activity

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// ActivityService exposes the audit trail. Reads and mutations are gated by
// the same visibility scoping as notes: full log for top and administrative
// roles, self-and-team for managers.
type ActivityService interface {
	Recorder

	List(ctx context.Context, actor account.Actor) ([]Entry, error)
	Update(ctx context.Context, actor account.Actor, id string, action string, details string) (Entry, error)
	Delete(ctx context.Context, actor account.Actor, id string) error
}
