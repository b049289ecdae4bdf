package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/team"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

func (r *teamRepositoryImpl) ListTeam(ctx context.Context, managerID string) ([]team.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email
		FROM manager_teams mt
		JOIN employees e ON e.id = mt.employee_id
		WHERE mt.manager_id = $1 AND e.active
		ORDER BY e.name`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []team.Member
	for rows.Next() {
		var m team.Member
		if err := rows.Scan(&m.EmployeeID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *teamRepositoryImpl) TeamEmployeeIDs(ctx context.Context, managerID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT employee_id FROM manager_teams WHERE manager_id = $1`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// TeamAccountIDs bridges the two identity spaces: employees are joined to
// login accounts by email, so only team members who hold an account appear.
func (r *teamRepositoryImpl) TeamAccountIDs(ctx context.Context, managerID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id
		FROM manager_teams mt
		JOIN employees e ON e.id = mt.employee_id
		JOIN accounts a ON a.email = e.email
		WHERE mt.manager_id = $1`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *teamRepositoryImpl) ManagersOf(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT manager_id FROM manager_teams WHERE employee_id = $1`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *teamRepositoryImpl) IsMember(ctx context.Context, managerID string, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM manager_teams WHERE manager_id = $1 AND employee_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, managerID, employeeID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *teamRepositoryImpl) Assign(ctx context.Context, managerID string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO manager_teams (manager_id, employee_id) VALUES ($1, $2)`

	if _, err := q.Exec(ctx, query, managerID, employeeID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return team.ErrAlreadyAssigned
		}
		return err
	}

	return nil
}

func (r *teamRepositoryImpl) Unassign(ctx context.Context, managerID string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM manager_teams WHERE manager_id = $1 AND employee_id = $2`

	tag, err := q.Exec(ctx, query, managerID, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return team.ErrAssignmentNotFound
	}

	return nil
}

func (r *teamRepositoryImpl) ListUnassigned(ctx context.Context) ([]team.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email
		FROM employees e
		LEFT JOIN manager_teams mt ON mt.employee_id = e.id
		WHERE mt.employee_id IS NULL AND e.active
		ORDER BY e.name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []team.Member
	for rows.Next() {
		var m team.Member
		if err := rows.Scan(&m.EmployeeID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
