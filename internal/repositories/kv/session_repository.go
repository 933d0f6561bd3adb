package kv

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
)

type sessionRepository struct {
	store *kvstore.Store
}

func newSessionRepository(store *kvstore.Store) portsrepo.SessionRepository {
	return &sessionRepository{store: store}
}

var _ portsrepo.SessionRepository = (*sessionRepository)(nil)

func (r *sessionRepository) SaveCurrent(_ context.Context, account domain.Account) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		return tx.Set(keyCurrentUser, account)
	})
}

func (r *sessionRepository) FindCurrent(_ context.Context) (*domain.Account, error) {
	var account domain.Account
	found, err := r.store.Get(keyCurrentUser, &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &account, nil
}

func (r *sessionRepository) ClearCurrent(_ context.Context) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		tx.Delete(keyCurrentUser)
		return nil
	})
}

func (r *sessionRepository) SaveResetTicket(_ context.Context, ticket domain.ResetTicket) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		return tx.Set(keyResetUser, ticket)
	})
}

func (r *sessionRepository) FindResetTicket(_ context.Context) (*domain.ResetTicket, error) {
	var ticket domain.ResetTicket
	found, err := r.store.Get(keyResetUser, &ticket)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &ticket, nil
}

func (r *sessionRepository) ClearResetTicket(_ context.Context) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		tx.Delete(keyResetUser)
		return nil
	})
}
