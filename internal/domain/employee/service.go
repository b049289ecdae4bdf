package employee

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	// Create adds a single employee record (administrative roles only).
	Create(ctx context.Context, actor account.Actor, req CreateEmployeeRequest) (Employee, error)

	// ListActive lists employees that have not been deactivated.
	ListActive(ctx context.Context) ([]Employee, error)

	// ListWithManagers lists all employees with their manager assignments.
	ListWithManagers(ctx context.Context) ([]Employee, error)

	// Deactivate soft-deactivates an employee; records are never hard-deleted.
	Deactivate(ctx context.Context, actor account.Actor, id string) error

	// Import creates employees from pre-parsed rows with per-row error
	// bookkeeping. Rows whose email already exists are skipped.
	Import(ctx context.Context, actor account.Actor, rows []ImportRow) (ImportResult, error)
}
