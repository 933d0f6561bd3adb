package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/core/validation"
	"github.com/acmebank/acmebank/internal/middleware"
	"github.com/acmebank/acmebank/internal/utils"
)

const (
	referencePrefix       = "REF"
	referenceRandomDigits = 3

	depositDescription    = "Electronic deposit"
	withdrawalDescription = "Cash withdrawal"
)

// Limits holds the per-type posting ceilings in the smallest currency unit.
type Limits struct {
	Deposit    int64
	Withdrawal int64
	Payment    int64
}

// ledgerService posts balance-affecting transactions. Steps up to the commit
// are pure computation; the commit itself is a single atomic repository write
// covering both the transaction append and the balance update.
type ledgerService struct {
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.AccountRepository
	session     portssvc.SessionRefresherSvc
	limits      Limits
}

// NewLedgerService creates a new ledger service. session may be nil when no
// session snapshot needs refreshing after postings.
func NewLedgerService(txnRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountRepository, session portssvc.SessionRefresherSvc, limits Limits) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		session:     session,
		limits:      limits,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostDeposit credits the account. Deposits have no balance precondition.
func (s *ledgerService) PostDeposit(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error) {
	return s.post(ctx, accountID, domain.Deposit, amount, depositDescription)
}

// PostWithdrawal debits the account, requiring sufficient funds.
func (s *ledgerService) PostWithdrawal(ctx context.Context, accountID string, amount int64) (*domain.Transaction, error) {
	return s.post(ctx, accountID, domain.Withdrawal, amount, withdrawalDescription)
}

// PostPayment debits the account for a utility bill. The service selector
// only shapes the description; limits do not depend on it.
func (s *ledgerService) PostPayment(ctx context.Context, accountID string, amount int64, service domain.UtilityService, serviceRef string) (*domain.Transaction, error) {
	res := validation.Validate(
		validation.Field{Name: "service", Value: string(service), Rules: []validation.Rule{
			validation.Required("you must select a service type"),
			validation.Custom(func(v string) error {
				if !domain.UtilityService(v).Valid() {
					return fmt.Errorf("select a valid service type")
				}
				return nil
			}),
		}},
		validation.Field{Name: "service reference", Value: serviceRef, Rules: []validation.Rule{
			validation.Required("you must enter the service reference"),
			validation.MinLength(3, ""),
		}},
	)
	if err := res.Err(); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Payment of %s service - Ref: %s", service.DisplayName(), serviceRef)
	return s.post(ctx, accountID, domain.Payment, amount, description)
}

func (s *ledgerService) limitFor(typ domain.TransactionType) int64 {
	switch typ {
	case domain.Deposit:
		return s.limits.Deposit
	case domain.Withdrawal:
		return s.limits.Withdrawal
	default:
		return s.limits.Payment
	}
}

func (s *ledgerService) post(ctx context.Context, accountID string, typ domain.TransactionType, amount int64, description string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	if limit := s.limitFor(typ); amount > limit {
		return nil, &apperrors.LimitExceededError{Type: typ.DisplayName(), Max: limit}
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}

	if typ != domain.Deposit && amount > account.Balance {
		return nil, apperrors.ErrInsufficientFunds
	}

	newBalance := account.Balance + amount
	if typ != domain.Deposit {
		newBalance = account.Balance - amount
	}

	reference, err := s.newReference(ctx)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		AccountID:    accountID,
		Reference:    reference,
		Type:         typ,
		Description:  description,
		Amount:       amount,
		PostedAt:     time.Now().UTC(),
		BalanceAfter: newBalance,
	}

	committed, err := s.txnRepo.SavePosting(ctx, txn, newBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to commit posting: %w", err)
	}

	s.refreshSession(ctx, accountID)

	logger.Info("posting committed",
		slog.String("account_id", accountID),
		slog.String("type", string(typ)),
		slog.String("reference", committed.Reference),
		slog.Int64("amount", amount),
		slog.Int64("balance_after", committed.BalanceAfter))
	return committed, nil
}

// newReference draws a display reference from the current time plus random
// digits, re-drawing while it collides with an existing one.
func (s *ledgerService) newReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		digits, err := utils.RandomDigits(referenceRandomDigits)
		if err != nil {
			return "", fmt.Errorf("failed to generate reference: %w", err)
		}
		candidate := referencePrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + digits
		exists, err := s.txnRepo.ReferenceExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check reference uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique reference after %d attempts", maxGenerationAttempts)
}

// refreshSession replaces the cached session snapshot when the posting
// touched the logged-in account; the ledger mutates balances out-of-band from
// the session's copy.
func (s *ledgerService) refreshSession(ctx context.Context, accountID string) {
	if s.session == nil {
		return
	}
	current, err := s.session.Current(ctx)
	if err != nil || current == nil || current.AccountID != accountID {
		return
	}
	if _, err := s.session.Refresh(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to refresh session snapshot after posting",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
	}
}
