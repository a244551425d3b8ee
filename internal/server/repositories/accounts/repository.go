package accounts

import (
	"context"

	"github.com/dmitrijs2005/userauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.Account, error)
	ListAll(ctx context.Context) ([]models.AccountSummary, error)
}
