package note

import (
	"context"
)

type NoteRepository interface {
	Create(ctx context.Context, newNote Note) (Note, error)
	GetByID(ctx context.Context, id string) (Note, error)
	// List returns every note with employee and creator joins, newest first.
	List(ctx context.Context) ([]Note, error)
	// ListByEmployee returns the employee's notes oldest first (timeline order).
	ListByEmployee(ctx context.Context, employeeID string) ([]Note, error)
	Update(ctx context.Context, id string, text string, noteType string, isPrivate bool) (Note, error)
	Delete(ctx context.Context, id string) error
	Years(ctx context.Context) ([]int, error)
	Count(ctx context.Context) (int64, error)
}
