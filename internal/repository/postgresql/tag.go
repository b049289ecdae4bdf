package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/tag"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

const tagSelect = `
	SELECT t.id, t.employee_id, t.tag, t.created_by, t.created_at, a.role
	FROM employee_tags t
	JOIN accounts a ON a.id = t.created_by`

type tagRepositoryImpl struct {
	db *database.DB
}

func NewTagRepository(db *database.DB) tag.TagRepository {
	return &tagRepositoryImpl{db: db}
}

func scanTag(row pgx.Row) (tag.Tag, error) {
	var t tag.Tag
	err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.Tag,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.CreatorRole,
	)
	return t, err
}

func (r *tagRepositoryImpl) Create(ctx context.Context, newTag tag.Tag) (tag.Tag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_tags (employee_id, tag, created_by)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, newTag.EmployeeID, newTag.Tag, newTag.CreatedBy).Scan(&id)
	if err != nil {
		return tag.Tag{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *tagRepositoryImpl) GetByID(ctx context.Context, id string) (tag.Tag, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanTag(q.QueryRow(ctx, tagSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tag.Tag{}, tag.ErrTagNotFound
		}
		return tag.Tag{}, err
	}

	return found, nil
}

func (r *tagRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]tag.Tag, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, tagSelect+` WHERE t.employee_id = $1 ORDER BY t.created_at`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

func (r *tagRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.Exec(ctx, `DELETE FROM employee_tags WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}
