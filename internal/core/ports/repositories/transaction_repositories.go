package repositories

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	// FindTransactionsByAccount returns the account's transactions in commit
	// order; ordering for display is the reporting service's concern.
	FindTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	// SavePosting assigns the next sequence id to txn, appends it and writes
	// the owning account's new balance in one atomic commit. It returns the
	// transaction as committed.
	SavePosting(ctx context.Context, txn domain.Transaction, newBalance int64) (*domain.Transaction, error)
}
