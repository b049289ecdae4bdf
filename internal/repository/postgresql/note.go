package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/note"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

const noteSelect = `
	SELECT n.id, n.employee_id, n.note, n.note_type, n.created_by, n.created_at,
		n.year, n.is_private,
		e.name, e.email, a.email, a.role
	FROM performance_notes n
	JOIN employees e ON e.id = n.employee_id
	JOIN accounts a ON a.id = n.created_by`

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	err := row.Scan(
		&n.ID,
		&n.EmployeeID,
		&n.Note,
		&n.Type,
		&n.CreatedBy,
		&n.CreatedAt,
		&n.Year,
		&n.IsPrivate,
		&n.EmployeeName,
		&n.EmployeeEmail,
		&n.CreatorEmail,
		&n.CreatorRole,
	)
	return n, err
}

func (r *noteRepositoryImpl) Create(ctx context.Context, newNote note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_notes (employee_id, note, note_type, created_by, created_at, year, is_private)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		newNote.EmployeeID,
		newNote.Note,
		newNote.Type,
		newNote.CreatedBy,
		newNote.CreatedAt,
		newNote.Year,
		newNote.IsPrivate,
	).Scan(&id)
	if err != nil {
		return note.Note{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *noteRepositoryImpl) GetByID(ctx context.Context, id string) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanNote(q.QueryRow(ctx, noteSelect+` WHERE n.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNoteNotFound
		}
		return note.Note{}, err
	}

	return found, nil
}

func (r *noteRepositoryImpl) List(ctx context.Context) ([]note.Note, error) {
	return r.list(ctx, noteSelect+` ORDER BY n.created_at DESC`)
}

func (r *noteRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]note.Note, error) {
	return r.list(ctx, noteSelect+` WHERE n.employee_id = $1 ORDER BY n.created_at ASC`, employeeID)
}

func (r *noteRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (r *noteRepositoryImpl) Update(ctx context.Context, id string, text string, noteType string, isPrivate bool) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_notes
		SET note = $1, note_type = $2, is_private = $3
		WHERE id = $4`

	tag, err := q.Exec(ctx, query, text, noteType, isPrivate, id)
	if err != nil {
		return note.Note{}, err
	}
	if tag.RowsAffected() == 0 {
		return note.Note{}, note.ErrNoteNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *noteRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performance_notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}

	return nil
}

func (r *noteRepositoryImpl) Years(ctx context.Context) ([]int, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT year FROM performance_notes ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}

	return years, rows.Err()
}

func (r *noteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM performance_notes`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
