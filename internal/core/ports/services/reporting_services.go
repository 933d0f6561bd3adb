package services

import (
	"context"
	"time"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// ReportingSvcFacade provides read-only projections over the ledger. Nothing
// here mutates state.
type ReportingSvcFacade interface {
	TransactionsFor(ctx context.Context, accountID string) ([]domain.Transaction, error)
	TransactionsForPeriod(ctx context.Context, accountID string, year int, month time.Month) ([]domain.Transaction, error)
	Recent(ctx context.Context, accountID string, n int) ([]domain.Transaction, error)
	Summarize(txns []domain.Transaction) domain.TransactionSummary
	Statement(ctx context.Context, accountID string, year int, month time.Month) (*domain.Statement, error)
	Certificate(ctx context.Context, accountID string) (*domain.Certificate, error)
	// Years lists the selectable statement years, newest first.
	Years() []int
}
