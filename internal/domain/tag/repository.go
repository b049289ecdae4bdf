package tag

import (
	"context"
)

type TagRepository interface {
	Create(ctx context.Context, newTag Tag) (Tag, error)
	GetByID(ctx context.Context, id string) (Tag, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Tag, error)
	Delete(ctx context.Context, id string) error
}
