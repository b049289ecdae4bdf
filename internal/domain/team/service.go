package team

import (
	"context"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

// TeamService owns the manager-to-employee scoping edges.
type TeamService interface {
	// Managers lists accounts holding the manager role.
	Managers(ctx context.Context) ([]account.AccountSummary, error)

	// TeamOf lists the employees assigned to a manager.
	TeamOf(ctx context.Context, managerID string) ([]Member, error)

	// ManagersOf lists the manager accounts claiming an employee.
	ManagersOf(ctx context.Context, employeeID string) ([]string, error)

	IsMember(ctx context.Context, managerID string, employeeID string) (bool, error)

	// Assign adds a membership edge; duplicate edges are rejected.
	Assign(ctx context.Context, actor account.Actor, managerID string, employeeID string) error

	// Unassign removes a membership edge; missing edges are rejected.
	Unassign(ctx context.Context, actor account.Actor, managerID string, employeeID string) error

	// Unassigned lists active employees with no manager.
	Unassigned(ctx context.Context) ([]Member, error)
}
