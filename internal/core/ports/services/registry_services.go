package services

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
	"github.com/acmebank/acmebank/internal/dto"
)

// RegistrySvcFacade exposes account lifecycle operations to the presentation
// layer and to the other core services.
type RegistrySvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)
	Authenticate(ctx context.Context, docType domain.DocumentType, docNumber, password string) (*domain.Account, error)
	FindByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindByDocumentAndEmail(ctx context.Context, docType domain.DocumentType, docNumber, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, accountID, newPassword string) error
	// UpdateBalance is reserved for the ledger; presentation code must never
	// set a balance without a matching transaction record.
	UpdateBalance(ctx context.Context, accountID string, newBalance int64) error
}

// RegistryReaderSvc is the narrow read-only view needed by the session
// service.
type RegistryReaderSvc interface {
	FindByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindByDocumentAndEmail(ctx context.Context, docType domain.DocumentType, docNumber, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, accountID, newPassword string) error
}
