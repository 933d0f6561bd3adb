package services

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// LedgerSvcFacade posts balance-affecting operations. Each call either
// commits exactly one transaction together with the new balance, or leaves
// all state untouched and returns a typed error.
type LedgerSvcFacade interface {
	PostDeposit(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error)
	PostWithdrawal(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error)
	PostPayment(ctx context.Context, accountID string, amount int64, service domain.UtilityService, serviceRef string) (*domain.Transaction, error)
}
