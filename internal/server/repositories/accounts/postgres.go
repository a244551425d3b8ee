// Package accounts implements the account repository over PostgreSQL.
// Uniqueness of username and email is enforced by table constraints, so
// concurrent registrations cannot both succeed; the insert itself is the
// authoritative check.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/dbx"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// classifyUniqueViolation maps a unique_violation to the logical field the
// client collided on. Constraint names are stable
// (uq_accounts_username / uq_accounts_email); substring matching is the
// fallback for environments with generated names.
func classifyUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	c := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(c, "username"):
		return "username", true
	case strings.Contains(c, "email"):
		return "email", true
	}
	return "", true
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (username, email, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.Email, account.PasswordHash).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if field, ok := classifyUniqueViolation(err); ok {
			return nil, &common.ConflictError{Field: field}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	query :=
		`SELECT id, username, email, password_hash FROM accounts
		 WHERE username = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error) {
	query :=
		`SELECT id, username, email, password_hash FROM accounts
		 WHERE username = $1 OR email = $2
		 LIMIT 1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username, email).
		Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.AccountSummary, error) {
	query :=
		`SELECT id, username, email FROM accounts
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.AccountSummary, 0)
	for rows.Next() {
		var s models.AccountSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Email); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
