// Package kv implements the repository ports on top of the JSON key-value
// store, mirroring the original persisted layout: accounts under "users", the
// flat ledger under "transactions", and the session and reset snapshots under
// "currentUser" and "resetUser".
package kv

import (
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
)

const (
	keyUsers        = "users"
	keyTransactions = "transactions"
	keyCurrentUser  = "currentUser"
	keyResetUser    = "resetUser"
	keySequence     = "sequence"
)

// NewRepositoryProvider wires all repositories against one store.
func NewRepositoryProvider(store *kvstore.Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:     newAccountRepository(store),
		TransactionRepo: newTransactionRepository(store),
		SessionRepo:     newSessionRepository(store),
	}
}
