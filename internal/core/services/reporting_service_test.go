package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	"github.com/acmebank/acmebank/internal/core/services"
)

func fixedTime(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}

func sampleLedger() []domain.Transaction {
	return []domain.Transaction{
		{TransactionID: 1, AccountID: "acc-1", Type: domain.Deposit, Amount: 100_000, PostedAt: fixedTime(1, 9), BalanceAfter: 100_000},
		{TransactionID: 2, AccountID: "acc-1", Type: domain.Withdrawal, Amount: 20_000, PostedAt: fixedTime(2, 9), BalanceAfter: 80_000},
		{TransactionID: 3, AccountID: "acc-1", Type: domain.Payment, Amount: 30_000, PostedAt: fixedTime(2, 9), BalanceAfter: 50_000},
		{TransactionID: 4, AccountID: "acc-1", Type: domain.Deposit, Amount: 10_000, PostedAt: time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC), BalanceAfter: 60_000},
	}
}

func reportingWithLedger(txns []domain.Transaction) *mockTransactionRepo {
	return &mockTransactionRepo{
		FindTransactionsByAccountFn: func(_ context.Context, _ string) ([]domain.Transaction, error) {
			return txns, nil
		},
	}
}

func TestReportingService_TransactionsFor_NewestFirst(t *testing.T) {
	svc := services.NewReportingService(reportingWithLedger(sampleLedger()), &mockAccountRepo{})

	txns, err := svc.TransactionsFor(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, txns, 4)

	// Newest first; equal timestamps break ties by transaction id.
	assert.Equal(t, int64(4), txns[0].TransactionID)
	assert.Equal(t, int64(3), txns[1].TransactionID)
	assert.Equal(t, int64(2), txns[2].TransactionID)
	assert.Equal(t, int64(1), txns[3].TransactionID)
}

func TestReportingService_TransactionsForPeriod(t *testing.T) {
	svc := services.NewReportingService(reportingWithLedger(sampleLedger()), &mockAccountRepo{})

	txns, err := svc.TransactionsForPeriod(context.Background(), "acc-1", 2026, time.March)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	for _, txn := range txns {
		assert.Equal(t, time.March, txn.PostedAt.Month())
	}

	empty, err := svc.TransactionsForPeriod(context.Background(), "acc-1", 2025, time.March)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReportingService_Recent(t *testing.T) {
	svc := services.NewReportingService(reportingWithLedger(sampleLedger()), &mockAccountRepo{})

	txns, err := svc.Recent(context.Background(), "acc-1", 2)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, int64(4), txns[0].TransactionID)
	assert.Equal(t, int64(3), txns[1].TransactionID)

	all, err := svc.Recent(context.Background(), "acc-1", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReportingService_Summarize(t *testing.T) {
	svc := services.NewReportingService(&mockTransactionRepo{}, &mockAccountRepo{})

	summary := svc.Summarize(sampleLedger())
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Counts[domain.Deposit])
	assert.Equal(t, 1, summary.Counts[domain.Withdrawal])
	assert.Equal(t, 1, summary.Counts[domain.Payment])
	assert.Equal(t, int64(110_000), summary.Totals[domain.Deposit])
	assert.Equal(t, int64(20_000), summary.Totals[domain.Withdrawal])
	assert.Equal(t, int64(30_000), summary.Totals[domain.Payment])

	// Summarizing twice yields the same result; the fold has no side effects.
	assert.Equal(t, summary, svc.Summarize(sampleLedger()))

	// An empty set still carries every type at zero.
	empty := svc.Summarize(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.Counts[domain.Payment])
	assert.Equal(t, int64(0), empty.Totals[domain.Deposit])
}

func TestReportingService_Statement(t *testing.T) {
	svc := services.NewReportingService(reportingWithLedger(sampleLedger()), &mockAccountRepo{})

	statement, err := svc.Statement(context.Background(), "acc-1", 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, 2026, statement.Year)
	assert.Equal(t, time.March, statement.Month)
	assert.Equal(t, "March 2026", statement.Period)
	assert.Len(t, statement.Transactions, 3)
	assert.Equal(t, 3, statement.Summary.Total)
}

func TestReportingService_Certificate(t *testing.T) {
	accountRepo := &mockAccountRepo{
		FindAccountByIDFn: func(_ context.Context, accountID string) (*domain.Account, error) {
			return &domain.Account{
				AccountID:      accountID,
				FirstName:      "Ana",
				LastName:       "Rincon",
				DocumentType:   domain.DocumentCitizenID,
				DocumentNumber: "1098765432",
				AccountNumber:  "440012345678",
				CreatedAt:      fixedTime(1, 9),
			}, nil
		},
	}
	svc := services.NewReportingService(&mockTransactionRepo{}, accountRepo)

	cert, err := svc.Certificate(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Rincon", cert.HolderName)
	assert.Equal(t, domain.DocumentCitizenID, cert.DocumentType)
	assert.Equal(t, "440012345678", cert.AccountNumber)
	assert.Equal(t, fixedTime(1, 9), cert.OpenedAt)
	assert.WithinDuration(t, time.Now().UTC(), cert.IssuedAt, time.Minute)
}

func TestReportingService_Certificate_UnknownAccount(t *testing.T) {
	svc := services.NewReportingService(&mockTransactionRepo{}, &mockAccountRepo{})

	_, err := svc.Certificate(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestReportingService_Years(t *testing.T) {
	svc := services.NewReportingService(&mockTransactionRepo{}, &mockAccountRepo{})

	years := svc.Years()
	require.Len(t, years, 11)
	assert.Equal(t, time.Now().Year(), years[0])
	assert.Equal(t, time.Now().Year()-10, years[10])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, years[i-1]-1, years[i])
	}
}
