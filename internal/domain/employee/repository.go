package employee

import (
	"context"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// CreateIfAbsent inserts an employee and reports whether a row was
	// actually created (false when the email already exists).
	CreateIfAbsent(ctx context.Context, newEmployee Employee) (bool, error)
	ListActive(ctx context.Context) ([]Employee, error)
	// ListWithManagers lists all employees together with their manager edges.
	ListWithManagers(ctx context.Context) ([]Employee, error)
	SetActive(ctx context.Context, id string, active bool) error
	CountActive(ctx context.Context) (int64, error)
}
