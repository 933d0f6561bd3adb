package services

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// SessionSvcFacade tracks the single active account and owns the two-step
// forgot-password flow.
type SessionSvcFacade interface {
	Login(ctx context.Context, account domain.Account) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.Account, error)
	// Refresh re-reads the authoritative registry record for the current
	// session and replaces the cached snapshot.
	Refresh(ctx context.Context) (*domain.Account, error)

	BeginPasswordReset(ctx context.Context, docType domain.DocumentType, docNumber, email string) error
	CompletePasswordReset(ctx context.Context, newPassword, confirmPassword string) error
}

// SessionRefresherSvc is the narrow view the ledger uses to keep the session
// snapshot in step with balances it mutates out-of-band.
type SessionRefresherSvc interface {
	Current(ctx context.Context) (*domain.Account, error)
	Refresh(ctx context.Context) (*domain.Account, error)
}
