// Package services contains server-side business logic. This file
// implements AccountService, which handles registration, login, account
// listing, and resolving the account behind a verified token subject.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"github.com/dmitrijs2005/userauth/internal/server/config"
	"github.com/dmitrijs2005/userauth/internal/server/models"
	"github.com/dmitrijs2005/userauth/internal/server/repositories/repomanager"
)

// AccountService provides identity operations:
//   - Register: create accounts with unique username/email
//   - Login: verify credentials and mint a session token
//   - ListAccounts: public account summaries
//   - GetSelf: resolve a token subject back to an account
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. The pre-lookup exists only to name the
// colliding field in a friendly way; the unique constraints checked at
// insert time are authoritative, so a lost race still surfaces as a
// ConflictError from the repository.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrorValidation)
	}

	repo := s.repomanager.Accounts(s.db)

	existing, err := repo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if err == nil {
		// username takes precedence when both fields collide
		if existing.Username == username {
			return nil, &common.ConflictError{Field: "username"}
		}
		return nil, &common.ConflictError{Field: "email"}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	account := &models.Account{Username: username, Email: email, PasswordHash: hash}
	account, err = repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return account, nil
}

// Login verifies the password for username and, on success, returns the
// account together with a freshly issued session token.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Account, string, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.IssueToken(account.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return account, token, nil
}

// ListAccounts returns public summaries of every account.
func (s *AccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	repo := s.repomanager.Accounts(s.db)

	result, err := repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return result, nil
}

// GetSelf resolves the subject of a verified token back to an account.
// Tokens are stateless, so the account may have disappeared since
// issuance; that surfaces as ErrorNotFound.
func (s *AccountService) GetSelf(ctx context.Context, subject string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return account, nil
}
