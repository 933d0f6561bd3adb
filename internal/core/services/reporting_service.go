package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
)

// Number of selectable statement years besides the current one.
const statementYearSpan = 10

// reportingService provides read-only projections over the ledger; nothing
// here mutates state.
type reportingService struct {
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo, accountRepo: accountRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TransactionsFor returns the account's transactions newest first.
func (s *reportingService) TransactionsFor(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	sortDescending(txns)
	return txns, nil
}

// TransactionsForPeriod returns the subset of TransactionsFor whose postedAt
// falls in the given calendar year and month, newest first.
func (s *reportingService) TransactionsForPeriod(ctx context.Context, accountID string, year int, month time.Month) ([]domain.Transaction, error) {
	txns, err := s.TransactionsFor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, t := range txns {
		if t.PostedAt.Year() == year && t.PostedAt.Month() == month {
			out = append(out, t)
		}
	}
	return out, nil
}

// Recent returns the first n of TransactionsFor.
func (s *reportingService) Recent(ctx context.Context, accountID string, n int) ([]domain.Transaction, error) {
	txns, err := s.TransactionsFor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if len(txns) > n {
		txns = txns[:n]
	}
	return txns, nil
}

// Summarize folds a transaction set into total and per-type counts and
// amount totals. Every type is present in the maps even when zero.
func (s *reportingService) Summarize(txns []domain.Transaction) domain.TransactionSummary {
	summary := domain.TransactionSummary{
		Total:  len(txns),
		Counts: map[domain.TransactionType]int{domain.Deposit: 0, domain.Withdrawal: 0, domain.Payment: 0},
		Totals: map[domain.TransactionType]int64{domain.Deposit: 0, domain.Withdrawal: 0, domain.Payment: 0},
	}
	for _, t := range txns {
		summary.Counts[t.Type]++
		summary.Totals[t.Type] += t.Amount
	}
	return summary
}

// Statement assembles the monthly statement projection.
func (s *reportingService) Statement(ctx context.Context, accountID string, year int, month time.Month) (*domain.Statement, error) {
	txns, err := s.TransactionsForPeriod(ctx, accountID, year, month)
	if err != nil {
		return nil, err
	}
	return &domain.Statement{
		Year:         year,
		Month:        month,
		Period:       fmt.Sprintf("%s %d", month, year),
		Transactions: txns,
		Summary:      s.Summarize(txns),
	}, nil
}

// Certificate assembles the account ownership certificate projection.
func (s *reportingService) Certificate(ctx context.Context, accountID string) (*domain.Certificate, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	return &domain.Certificate{
		HolderName:     account.FullName(),
		DocumentType:   account.DocumentType,
		DocumentNumber: account.DocumentNumber,
		AccountNumber:  account.AccountNumber,
		OpenedAt:       account.CreatedAt,
		IssuedAt:       time.Now().UTC(),
	}, nil
}

// Years lists the selectable statement years: the current one plus the ten
// before it, newest first.
func (s *reportingService) Years() []int {
	current := time.Now().Year()
	years := make([]int, 0, statementYearSpan+1)
	for y := current; y >= current-statementYearSpan; y-- {
		years = append(years, y)
	}
	return years
}

func sortDescending(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].PostedAt.Equal(txns[j].PostedAt) {
			return txns[i].PostedAt.After(txns[j].PostedAt)
		}
		return txns[i].TransactionID > txns[j].TransactionID
	})
}
