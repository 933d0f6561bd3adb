package kv

import (
	"context"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/core/domain"
	portsrepo "github.com/acmebank/acmebank/internal/core/ports/repositories"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
)

type transactionRepository struct {
	store *kvstore.Store
}

func newTransactionRepository(store *kvstore.Store) portsrepo.TransactionRepository {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepository = (*transactionRepository)(nil)

func (r *transactionRepository) FindTransactionsByAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	var all []domain.Transaction
	if _, err := r.store.Get(keyTransactions, &all); err != nil {
		return nil, err
	}
	var out []domain.Transaction
	for _, t := range all {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *transactionRepository) ReferenceExists(_ context.Context, reference string) (bool, error) {
	var all []domain.Transaction
	if _, err := r.store.Get(keyTransactions, &all); err != nil {
		return false, err
	}
	for _, t := range all {
		if t.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

// SavePosting commits the transaction append and the balance update as one
// store flush. The sequence counter lives in the same document, so id
// assignment participates in the same commit.
func (r *transactionRepository) SavePosting(_ context.Context, txn domain.Transaction, newBalance int64) (*domain.Transaction, error) {
	committed := txn
	err := r.store.Update(func(tx *kvstore.Tx) error {
		var seq int64
		if _, err := tx.Get(keySequence, &seq); err != nil {
			return err
		}
		seq++
		committed.TransactionID = seq

		var all []domain.Transaction
		if _, err := tx.Get(keyTransactions, &all); err != nil {
			return err
		}
		all = append(all, committed)

		var accounts []domain.Account
		if _, err := tx.Get(keyUsers, &accounts); err != nil {
			return err
		}
		updated := false
		for i := range accounts {
			if accounts[i].AccountID == committed.AccountID {
				accounts[i].Balance = newBalance
				updated = true
				break
			}
		}
		if !updated {
			return apperrors.ErrAccountNotFound
		}

		if err := tx.Set(keySequence, seq); err != nil {
			return err
		}
		if err := tx.Set(keyTransactions, all); err != nil {
			return err
		}
		return tx.Set(keyUsers, accounts)
	})
	if err != nil {
		return nil, err
	}
	return &committed, nil
}
