package repositories

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts. Find methods
// return (nil, nil) when no account matches; services decide whether absence
// is an error.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByDocument(ctx context.Context, docType domain.DocumentType, docNumber string) (*domain.Account, error)
	// FindAccountByEmail matches case-insensitively.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}
