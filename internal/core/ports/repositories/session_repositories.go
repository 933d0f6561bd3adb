package repositories

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// SessionRepository persists the single current-session snapshot and the
// ephemeral password reset ticket. Find methods return (nil, nil) when absent.
type SessionRepository interface {
	SaveCurrent(ctx context.Context, account domain.Account) error
	FindCurrent(ctx context.Context) (*domain.Account, error)
	ClearCurrent(ctx context.Context) error

	SaveResetTicket(ctx context.Context, ticket domain.ResetTicket) error
	FindResetTicket(ctx context.Context) (*domain.ResetTicket, error)
	ClearResetTicket(ctx context.Context) error
}
