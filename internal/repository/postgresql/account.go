package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/pkg/database"
)

const uniqueViolation = "23505"

const accountColumns = `id, email, password, role, status, forced_reset,
	reset_token_digest, reset_token_expiry, created_at, updated_at`

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	var stored string
	err := row.Scan(
		&a.ID,
		&a.Email,
		&stored,
		&a.Role,
		&a.Status,
		&a.ForcedReset,
		&a.ResetTokenDigest,
		&a.ResetTokenExpiry,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return account.Account{}, err
	}
	a.Credential = account.ParseCredential(stored)
	return a, nil
}

func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	found, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return found, nil
}

func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	found, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return found, nil
}

func (r *accountRepositoryImpl) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (email, password, role, status, forced_reset)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + accountColumns

	created, err := scanAccount(q.QueryRow(ctx, query,
		newAccount.Email,
		newAccount.Credential.Stored(),
		newAccount.Role,
		newAccount.Status,
		newAccount.ForcedReset,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.Account{}, account.ErrEmailExists
		}
		return account.Account{}, err
	}

	return created, nil
}

func (r *accountRepositoryImpl) List(ctx context.Context) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *accountRepositoryImpl) ListByRole(ctx context.Context, role account.Role) ([]account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE role = $1 ORDER BY email`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *accountRepositoryImpl) Update(ctx context.Context, id string, email string, role account.Role) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET email = $1, role = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + accountColumns

	updated, err := scanAccount(q.QueryRow(ctx, query, email, role, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.Account{}, account.ErrEmailExists
		}
		return account.Account{}, err
	}

	return updated, nil
}

func (r *accountRepositoryImpl) UpdateRole(ctx context.Context, id string, role account.Role, forceReset bool) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET role = $1, forced_reset = forced_reset OR $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + accountColumns

	updated, err := scanAccount(q.QueryRow(ctx, query, role, forceReset, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return updated, nil
}

func (r *accountRepositoryImpl) UpdateStatus(ctx context.Context, id string, status account.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE accounts SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepositoryImpl) UpdateCredential(ctx context.Context, id string, cred account.Credential, clearForcedReset bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET password = $1, forced_reset = forced_reset AND NOT $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := q.Exec(ctx, query, cred.Stored(), clearForcedReset, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepositoryImpl) SetForcedCredential(ctx context.Context, id string, cred account.Credential) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET password = $1, forced_reset = TRUE, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + accountColumns

	updated, err := scanAccount(q.QueryRow(ctx, query, cred.Stored(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return updated, nil
}

func (r *accountRepositoryImpl) SetResetToken(ctx context.Context, id string, digest string, expiry time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET reset_token_digest = $1, reset_token_expiry = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := q.Exec(ctx, query, digest, expiry, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

// ConsumeResetToken atomically rotates the credential for the account holding
// an unexpired token with the given digest. The WHERE clause makes the token
// single-use: a second call matches no row.
func (r *accountRepositoryImpl) ConsumeResetToken(ctx context.Context, digest string, now time.Time, newCred account.Credential) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET password = $1,
			reset_token_digest = NULL,
			reset_token_expiry = NULL,
			forced_reset = FALSE,
			updated_at = NOW()
		WHERE reset_token_digest = $2 AND reset_token_expiry > $3
		RETURNING ` + accountColumns

	updated, err := scanAccount(q.QueryRow(ctx, query, newCred.Stored(), digest, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return updated, nil
}

func (r *accountRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}
