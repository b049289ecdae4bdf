package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/activity"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

const activitySelect = `
	SELECT l.id, l.user_id, l.action, l.details, l.target_id, l.timestamp,
		COALESCE(a.email, '')
	FROM activity_logs l
	LEFT JOIN accounts a ON a.id = l.user_id`

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

func scanEntry(row pgx.Row) (activity.Entry, error) {
	var e activity.Entry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Action,
		&e.Details,
		&e.TargetID,
		&e.Timestamp,
		&e.UserEmail,
	)
	return e, err
}

func (r *activityRepositoryImpl) Insert(ctx context.Context, entry activity.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (user_id, action, details, target_id, timestamp)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query, entry.UserID, entry.Action, entry.Details, entry.TargetID, entry.Timestamp)
	return err
}

func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanEntry(q.QueryRow(ctx, activitySelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Entry{}, activity.ErrEntryNotFound
		}
		return activity.Entry{}, err
	}

	return found, nil
}

func (r *activityRepositoryImpl) List(ctx context.Context) ([]activity.Entry, error) {
	return r.list(ctx, activitySelect+` ORDER BY l.timestamp DESC`)
}

func (r *activityRepositoryImpl) ListForUsers(ctx context.Context, userIDs []string) ([]activity.Entry, error) {
	return r.list(ctx, activitySelect+` WHERE l.user_id = ANY($1) ORDER BY l.timestamp DESC`, userIDs)
}

func (r *activityRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *activityRepositoryImpl) Update(ctx context.Context, id string, action string, details string) (activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE activity_logs SET action = $1, details = $2 WHERE id = $3`

	tag, err := q.Exec(ctx, query, action, details, id)
	if err != nil {
		return activity.Entry{}, err
	}
	if tag.RowsAffected() == 0 {
		return activity.Entry{}, activity.ErrEntryNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return activity.ErrEntryNotFound
	}

	return nil
}
