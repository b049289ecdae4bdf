package note

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// NoteService defines the policy-gated operations on performance notes.
// Single-resource mutations distinguish Forbidden (exists, out of scope)
// from NotFound (absent); listings filter instead of erroring.
type NoteService interface {
	Create(ctx context.Context, actor account.Actor, req CreateNoteRequest) (Note, error)
	List(ctx context.Context, actor account.Actor) ([]Note, error)
	// Timeline returns an employee's visible notes oldest first.
	Timeline(ctx context.Context, actor account.Actor, employeeID string) ([]Note, error)
	Update(ctx context.Context, actor account.Actor, id string, req UpdateNoteRequest) (Note, error)
	Delete(ctx context.Context, actor account.Actor, id string) error
	// Years lists the distinct years visible notes were created in.
	Years(ctx context.Context, actor account.Actor) ([]int, error)
	// Export returns the rows an export adapter may render for one employee,
	// subject to the same visibility scoping as Timeline.
	Export(ctx context.Context, actor account.Actor, employeeID string) ([]Note, error)
}
