package services

import (
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	portssvc "github.com/acmebank/acmebank/internal/core/ports/services"
	"github.com/acmebank/acmebank/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Registry = NewRegistryService(repos.AccountRepo)
	container.Session = NewSessionService(repos.SessionRepo, container.Registry)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo, container.Session, Limits{
		Deposit:    cfg.DepositLimit,
		Withdrawal: cfg.WithdrawalLimit,
		Payment:    cfg.PaymentLimit,
	})
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.AccountRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.RegistrySvcFacade  = (*registryService)(nil)
	_ portssvc.SessionSvcFacade   = (*sessionService)(nil)
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
