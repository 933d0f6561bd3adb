package kv

import (
	"context"
	"strings"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
)

type accountRepository struct {
	store *kvstore.Store
}

func newAccountRepository(store *kvstore.Store) portsrepo.AccountRepository {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepository = (*accountRepository)(nil)

func (r *accountRepository) loadAccounts() ([]domain.Account, error) {
	var accounts []domain.Account
	if _, err := r.store.Get(keyUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		var accounts []domain.Account
		if _, err := tx.Get(keyUsers, &accounts); err != nil {
			return err
		}
		accounts = append(accounts, account)
		return tx.Set(keyUsers, accounts)
	})
}

func (r *accountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	accounts, err := r.loadAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].AccountID == accountID {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (r *accountRepository) FindAccountByDocument(_ context.Context, docType domain.DocumentType, docNumber string) (*domain.Account, error) {
	accounts, err := r.loadAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].DocumentType == docType && accounts[i].DocumentNumber == docNumber {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (r *accountRepository) FindAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	accounts, err := r.loadAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (r *accountRepository) AccountNumberExists(_ context.Context, accountNumber string) (bool, error) {
	accounts, err := r.loadAccounts()
	if err != nil {
		return false, err
	}
	for i := range accounts {
		if accounts[i].AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *accountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		var accounts []domain.Account
		if _, err := tx.Get(keyUsers, &accounts); err != nil {
			return err
		}
		for i := range accounts {
			if accounts[i].AccountID == account.AccountID {
				accounts[i] = account
				return tx.Set(keyUsers, accounts)
			}
		}
		return apperrors.ErrAccountNotFound
	})
}
