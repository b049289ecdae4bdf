package activity

import (
	"context"
)

type ActivityRepository interface {
	Insert(ctx context.Context, entry Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	// List returns every entry with the actor email joined, newest first.
	List(ctx context.Context) ([]Entry, error)
	// ListForUsers returns entries whose subject is one of the given account ids.
	ListForUsers(ctx context.Context, userIDs []string) ([]Entry, error)
	Update(ctx context.Context, id string, action string, details string) (Entry, error)
	Delete(ctx context.Context, id string) error
}

// Recorder appends an audit entry without ever failing the caller. Append
// failures are logged and swallowed.
type Recorder interface {
	Record(ctx context.Context, actorID string, action string, details string)
}
