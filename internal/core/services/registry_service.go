package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/core/validation"
	"github.com/acmebank/acmebank/internal/dto"
	"github.com/acmebank/acmebank/internal/middleware"
	"github.com/acmebank/acmebank/internal/utils"
)

const (
	accountNumberPrefix = "4400"
	accountNumberDigits = 8

	// Upper bound on re-draws when a generated identifier collides with an
	// existing one. With 10^8 candidates this is effectively unreachable.
	maxGenerationAttempts = 25
)

// registryService implements account lifecycle operations over the account
// repository.
type registryService struct {
	accountRepo portsrepo.AccountRepository
}

// NewRegistryService creates a new registry service.
func NewRegistryService(accountRepo portsrepo.AccountRepository) portssvc.RegistrySvcFacade {
	return &registryService{accountRepo: accountRepo}
}

var _ portssvc.RegistrySvcFacade = (*registryService)(nil)

func registrationFields(req dto.RegisterRequest) []validation.Field {
	return []validation.Field{
		{Name: "document type", Value: req.DocumentType, Rules: []validation.Rule{
			validation.Required("you must select a document type"),
			validation.Custom(func(v string) error {
				if !domain.DocumentType(v).Valid() {
					return errors.New("select a valid document type")
				}
				return nil
			}),
		}},
		{Name: "document number", Value: req.DocumentNumber, Rules: []validation.Rule{
			validation.Required("you must enter the document number"),
		}},
		{Name: "first name", Value: req.FirstName, Rules: []validation.Rule{
			validation.Required("you must enter the first name"),
		}},
		{Name: "last name", Value: req.LastName, Rules: []validation.Rule{
			validation.Required("you must enter the last name"),
		}},
		{Name: "email", Value: req.Email, Rules: []validation.Rule{
			validation.Required("you must enter the email address"),
			validation.Email(""),
		}},
		{Name: "phone", Value: req.Phone, Rules: []validation.Rule{
			validation.Required("you must enter the phone number"),
			validation.Phone(""),
		}},
		{Name: "gender", Value: req.Gender, Rules: []validation.Rule{
			validation.Required("you must select a gender"),
		}},
		{Name: "city", Value: req.City, Rules: []validation.Rule{
			validation.Required("you must enter the city"),
		}},
		{Name: "address", Value: req.Address, Rules: []validation.Rule{
			validation.Required("you must enter the address"),
		}},
		{Name: "password", Value: req.Password, Rules: []validation.Rule{
			validation.Required("you must enter the password"),
			validation.Password(""),
		}},
	}
}

// Register validates the registration form, enforces document and email
// uniqueness and creates the account with a zero balance.
func (s *registryService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validation.Validate(registrationFields(req)...).Err(); err != nil {
		return nil, err
	}

	docType := domain.DocumentType(req.DocumentType)

	existing, err := s.accountRepo.FindAccountByDocument(ctx, docType, req.DocumentNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check document uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateDocument
	}

	// Email uniqueness is case-insensitive.
	existing, err = s.accountRepo.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	accountNumber, err := s.newAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{
		AccountID:      uuid.NewString(),
		DocumentType:   docType,
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Gender:         req.Gender,
		City:           strings.TrimSpace(req.City),
		Address:        strings.TrimSpace(req.Address),
		PasswordHash:   passwordHash,
		AccountNumber:  accountNumber,
		CreatedAt:      time.Now().UTC(),
		Balance:        0,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("account registered",
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return &account, nil
}

// newAccountNumber draws a fresh account number and re-draws while it
// collides with an existing one.
func (s *registryService) newAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		digits, err := utils.RandomDigits(accountNumberDigits)
		if err != nil {
			return "", fmt.Errorf("failed to generate account number: %w", err)
		}
		candidate := accountNumberPrefix + digits
		exists, err := s.accountRepo.AccountNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check account number uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique account number after %d attempts", maxGenerationAttempts)
}

// Authenticate verifies credentials by document pair and password hash.
func (s *registryService) Authenticate(ctx context.Context, docType domain.DocumentType, docNumber, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByDocument(ctx, docType, docNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil || !utils.CheckPasswordHash(password, account.PasswordHash) {
		middleware.GetLoggerFromCtx(ctx).Warn("authentication failed",
			slog.String("document_type", string(docType)))
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

func (s *registryService) FindByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

// FindByDocumentAndEmail locates the account for the forgot-password flow.
// All three fields must match; the email comparison is case-insensitive.
func (s *registryService) FindByDocumentAndEmail(ctx context.Context, docType domain.DocumentType, docNumber, email string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByDocument(ctx, docType, docNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil || !strings.EqualFold(account.Email, strings.TrimSpace(email)) {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *registryService) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	account, err := s.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = passwordHash

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("password updated", slog.String("account_id", accountID))
	return nil
}

// UpdateBalance overwrites the persisted balance. Only the ledger may call
// this; a balance must never change without a matching transaction record.
func (s *registryService) UpdateBalance(ctx context.Context, accountID string, newBalance int64) error {
	account, err := s.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	account.Balance = newBalance
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}
