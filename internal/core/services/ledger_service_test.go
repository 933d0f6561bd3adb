package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	"github.com/acmebank/acmebank/internal/core/services"
)

var referencePattern = regexp.MustCompile(`^REF\d{13}\d{3}$`)

func testLimits() services.Limits {
	return services.Limits{
		Deposit:    50_000_000,
		Withdrawal: 2_000_000,
		Payment:    5_000_000,
	}
}

func accountRepoWithBalance(balance int64) *mockAccountRepo {
	return &mockAccountRepo{
		FindAccountByIDFn: func(_ context.Context, accountID string) (*domain.Account, error) {
			return &domain.Account{AccountID: accountID, Balance: balance}, nil
		},
	}
}

func TestLedgerService_PostDeposit(t *testing.T) {
	var posted *domain.Transaction
	var postedBalance int64
	txnRepo := &mockTransactionRepo{
		SavePostingFn: func(_ context.Context, txn domain.Transaction, newBalance int64) (*domain.Transaction, error) {
			committed := txn
			committed.TransactionID = 7
			posted = &committed
			postedBalance = newBalance
			return &committed, nil
		},
	}
	svc := services.NewLedgerService(txnRepo, accountRepoWithBalance(100_000), nil, testLimits())

	txn, err := svc.PostDeposit(context.Background(), "acc-1", 50_000)
	require.NoError(t, err)
	require.NotNil(t, posted)

	assert.Equal(t, int64(7), txn.TransactionID)
	assert.Equal(t, domain.Deposit, txn.Type)
	assert.Equal(t, "Electronic deposit", txn.Description)
	assert.Equal(t, int64(150_000), txn.BalanceAfter)
	assert.Equal(t, int64(150_000), postedBalance)
	assert.Regexp(t, referencePattern, txn.Reference)
}

func TestLedgerService_PostWithdrawal_InsufficientFunds(t *testing.T) {
	savePostingCalled := false
	txnRepo := &mockTransactionRepo{
		SavePostingFn: func(_ context.Context, txn domain.Transaction, _ int64) (*domain.Transaction, error) {
			savePostingCalled = true
			return &txn, nil
		},
	}
	svc := services.NewLedgerService(txnRepo, accountRepoWithBalance(100_000), nil, testLimits())

	_, err := svc.PostWithdrawal(context.Background(), "acc-1", 150_000)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.False(t, savePostingCalled, "a rejected withdrawal must not touch the store")
}

func TestLedgerService_PostWithdrawal_Success(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(100_000), nil, testLimits())

	txn, err := svc.PostWithdrawal(context.Background(), "acc-1", 40_000)
	require.NoError(t, err)
	assert.Equal(t, domain.Withdrawal, txn.Type)
	assert.Equal(t, "Cash withdrawal", txn.Description)
	assert.Equal(t, int64(60_000), txn.BalanceAfter)
	assert.Equal(t, int64(-40_000), txn.SignedAmount())
}

func TestLedgerService_PostPayment(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(100_000), nil, testLimits())

	txn, err := svc.PostPayment(context.Background(), "acc-1", 30_000, domain.Water, "W-4451")
	require.NoError(t, err)
	assert.Equal(t, domain.Payment, txn.Type)
	assert.Equal(t, "Payment of Water service - Ref: W-4451", txn.Description)
	assert.Equal(t, int64(70_000), txn.BalanceAfter)
}

func TestLedgerService_PostPayment_ValidatesServiceAndReference(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(100_000), nil, testLimits())

	_, err := svc.PostPayment(context.Background(), "acc-1", 30_000, "cable-tv", "W-4451")
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"select a valid service type"}, verr.Messages)

	_, err = svc.PostPayment(context.Background(), "acc-1", 30_000, domain.Gas, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"you must enter the service reference"}, verr.Messages)
}

func TestLedgerService_RejectsNonPositiveAmounts(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(100_000), nil, testLimits())

	for _, amount := range []int64{0, -500} {
		_, err := svc.PostDeposit(context.Background(), "acc-1", amount)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	}
}

func TestLedgerService_EnforcesPerTypeLimits(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(60_000_000), nil, testLimits())

	tests := []struct {
		name string
		post func() error
		max  int64
	}{
		{"deposit", func() error {
			_, err := svc.PostDeposit(context.Background(), "acc-1", 50_000_001)
			return err
		}, 50_000_000},
		{"withdrawal", func() error {
			_, err := svc.PostWithdrawal(context.Background(), "acc-1", 2_000_001)
			return err
		}, 2_000_000},
		{"payment", func() error {
			_, err := svc.PostPayment(context.Background(), "acc-1", 5_000_001, domain.Internet, "I-100")
			return err
		}, 5_000_000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.post()
			var lerr *apperrors.LimitExceededError
			require.ErrorAs(t, err, &lerr)
			assert.ErrorIs(t, err, apperrors.ErrExceedsLimit)
			assert.Equal(t, tc.max, lerr.Max)
		})
	}

	// A posting exactly at the ceiling goes through.
	_, err := svc.PostWithdrawal(context.Background(), "acc-1", 2_000_000)
	assert.NoError(t, err)
}

func TestLedgerService_UnknownAccount(t *testing.T) {
	svc := services.NewLedgerService(&mockTransactionRepo{}, &mockAccountRepo{}, nil, testLimits())

	_, err := svc.PostDeposit(context.Background(), "missing", 1_000)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestLedgerService_RedrawsCollidingReference(t *testing.T) {
	collisions := 0
	txnRepo := &mockTransactionRepo{
		ReferenceExistsFn: func(_ context.Context, _ string) (bool, error) {
			collisions++
			return collisions <= 2, nil
		},
	}
	svc := services.NewLedgerService(txnRepo, accountRepoWithBalance(0), nil, testLimits())

	txn, err := svc.PostDeposit(context.Background(), "acc-1", 1_000)
	require.NoError(t, err)
	assert.Equal(t, 3, collisions)
	assert.Regexp(t, referencePattern, txn.Reference)
}

func TestLedgerService_RefreshesMatchingSession(t *testing.T) {
	refreshed := false
	session := &mockSessionRefresher{
		CurrentFn: func(_ context.Context) (*domain.Account, error) {
			return &domain.Account{AccountID: "acc-1"}, nil
		},
		RefreshFn: func(_ context.Context) (*domain.Account, error) {
			refreshed = true
			return &domain.Account{AccountID: "acc-1"}, nil
		},
	}
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(0), session, testLimits())

	_, err := svc.PostDeposit(context.Background(), "acc-1", 1_000)
	require.NoError(t, err)
	assert.True(t, refreshed)
}

func TestLedgerService_SkipsRefreshForOtherAccounts(t *testing.T) {
	refreshed := false
	session := &mockSessionRefresher{
		CurrentFn: func(_ context.Context) (*domain.Account, error) {
			return &domain.Account{AccountID: "someone-else"}, nil
		},
		RefreshFn: func(_ context.Context) (*domain.Account, error) {
			refreshed = true
			return nil, nil
		},
	}
	svc := services.NewLedgerService(&mockTransactionRepo{}, accountRepoWithBalance(0), session, testLimits())

	_, err := svc.PostDeposit(context.Background(), "acc-1", 1_000)
	require.NoError(t, err)
	assert.False(t, refreshed)
}
