package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/core/validation"
	"github.com/acmebank/acmebank/internal/middleware"
)

// sessionService tracks the single active account as an explicit object
// rather than ambient global state, and owns the two-step forgot-password
// flow backed by a single-use reset ticket.
type sessionService struct {
	sessionRepo portsrepo.SessionRepository
	registry    portssvc.RegistryReaderSvc
}

// NewSessionService creates a new session service.
func NewSessionService(sessionRepo portsrepo.SessionRepository, registry portssvc.RegistryReaderSvc) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: sessionRepo, registry: registry}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Login persists the account snapshot as the current session.
func (s *sessionService) Login(ctx context.Context, account domain.Account) error {
	if err := s.sessionRepo.SaveCurrent(ctx, account); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("session started", slog.String("account_id", account.AccountID))
	return nil
}

// Logout clears the current session.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.ClearCurrent(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("session ended")
	return nil
}

// Current returns the cached session snapshot.
func (s *sessionService) Current(ctx context.Context) (*domain.Account, error) {
	account, err := s.sessionRepo.FindCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if account == nil {
		return nil, apperrors.ErrSessionExpired
	}
	return account, nil
}

// Refresh re-reads the authoritative registry record for the current session
// and replaces the cached snapshot. Needed because the ledger mutates the
// balance out-of-band from the session's copy.
func (s *sessionService) Refresh(ctx context.Context) (*domain.Account, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	fresh, err := s.registry.FindByID(ctx, current.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.SaveCurrent(ctx, *fresh); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed session: %w", err)
	}
	return fresh, nil
}

// BeginPasswordReset proves account ownership by document pair and email and
// stores a single-use reset ticket.
func (s *sessionService) BeginPasswordReset(ctx context.Context, docType domain.DocumentType, docNumber, email string) error {
	res := validation.Validate(
		validation.Field{Name: "document type", Value: string(docType), Rules: []validation.Rule{
			validation.Required("you must select a document type"),
		}},
		validation.Field{Name: "document number", Value: docNumber, Rules: []validation.Rule{
			validation.Required("you must enter the document number"),
		}},
		validation.Field{Name: "email", Value: email, Rules: []validation.Rule{
			validation.Required("you must enter the email address"),
			validation.Email(""),
		}},
	)
	if err := res.Err(); err != nil {
		return err
	}

	account, err := s.registry.FindByDocumentAndEmail(ctx, docType, docNumber, email)
	if err != nil {
		return err
	}

	ticket := domain.ResetTicket{
		TicketID:  uuid.NewString(),
		AccountID: account.AccountID,
		IssuedAt:  time.Now().UTC(),
	}
	if err := s.sessionRepo.SaveResetTicket(ctx, ticket); err != nil {
		return fmt.Errorf("failed to persist reset ticket: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("password reset started", slog.String("account_id", account.AccountID))
	return nil
}

// CompletePasswordReset consumes the live reset ticket and updates the
// password. A missing ticket means the flow expired or was already used.
func (s *sessionService) CompletePasswordReset(ctx context.Context, newPassword, confirmPassword string) error {
	res := validation.Validate(
		validation.Field{Name: "new password", Value: newPassword, Rules: []validation.Rule{
			validation.Required("you must enter the new password"),
			validation.Password(""),
		}},
		validation.Field{Name: "confirm password", Value: confirmPassword, Rules: []validation.Rule{
			validation.Required("you must confirm the new password"),
			validation.Custom(func(v string) error {
				if v != newPassword {
					return errors.New("passwords do not match")
				}
				return nil
			}),
		}},
	)
	if err := res.Err(); err != nil {
		return err
	}

	ticket, err := s.sessionRepo.FindResetTicket(ctx)
	if err != nil {
		return fmt.Errorf("failed to read reset ticket: %w", err)
	}
	if ticket == nil {
		return apperrors.ErrSessionExpired
	}

	if err := s.registry.UpdatePassword(ctx, ticket.AccountID, newPassword); err != nil {
		return err
	}
	if err := s.sessionRepo.ClearResetTicket(ctx); err != nil {
		return fmt.Errorf("failed to clear reset ticket: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("password reset completed", slog.String("account_id", ticket.AccountID))
	return nil
}
