package team

import (
	"context"
)

type TeamRepository interface {
	// ListTeam returns the employees with a membership edge to the manager.
	ListTeam(ctx context.Context, managerID string) ([]Member, error)
	// TeamEmployeeIDs returns the employee id set for a manager.
	TeamEmployeeIDs(ctx context.Context, managerID string) ([]string, error)
	// TeamAccountIDs returns the account ids of team members that hold a
	// login account, matched by employee email. Activity-log scoping for
	// managers is evaluated against this set.
	TeamAccountIDs(ctx context.Context, managerID string) ([]string, error)
	// ManagersOf returns the account ids of every manager claiming the employee.
	ManagersOf(ctx context.Context, employeeID string) ([]string, error)
	IsMember(ctx context.Context, managerID string, employeeID string) (bool, error)
	Assign(ctx context.Context, managerID string, employeeID string) error
	Unassign(ctx context.Context, managerID string, employeeID string) error
	// ListUnassigned returns active employees with no membership edge.
	ListUnassigned(ctx context.Context) ([]Member, error)
}
