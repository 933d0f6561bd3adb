package services_test

import (
	"context"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// Fn-field mocks for the repository and service ports. A nil Fn means the
// call succeeds with zero values.

type mockAccountRepo struct {
	SaveAccountFn           func(ctx context.Context, account domain.Account) error
	FindAccountByIDFn       func(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByDocumentFn func(ctx context.Context, docType domain.DocumentType, docNumber string) (*domain.Account, error)
	FindAccountByEmailFn    func(ctx context.Context, email string) (*domain.Account, error)
	AccountNumberExistsFn   func(ctx context.Context, accountNumber string) (bool, error)
	UpdateAccountFn         func(ctx context.Context, account domain.Account) error
}

func (m *mockAccountRepo) SaveAccount(ctx context.Context, account domain.Account) error {
	if m.SaveAccountFn != nil {
		return m.SaveAccountFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepo) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.FindAccountByIDFn != nil {
		return m.FindAccountByIDFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindAccountByDocument(ctx context.Context, docType domain.DocumentType, docNumber string) (*domain.Account, error) {
	if m.FindAccountByDocumentFn != nil {
		return m.FindAccountByDocumentFn(ctx, docType, docNumber)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindAccountByEmailFn != nil {
		return m.FindAccountByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepo) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	if m.AccountNumberExistsFn != nil {
		return m.AccountNumberExistsFn(ctx, accountNumber)
	}
	return false, nil
}

func (m *mockAccountRepo) UpdateAccount(ctx context.Context, account domain.Account) error {
	if m.UpdateAccountFn != nil {
		return m.UpdateAccountFn(ctx, account)
	}
	return nil
}

type mockTransactionRepo struct {
	FindTransactionsByAccountFn func(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ReferenceExistsFn           func(ctx context.Context, reference string) (bool, error)
	SavePostingFn               func(ctx context.Context, txn domain.Transaction, newBalance int64) (*domain.Transaction, error)
}

func (m *mockTransactionRepo) FindTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if m.FindTransactionsByAccountFn != nil {
		return m.FindTransactionsByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockTransactionRepo) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	if m.ReferenceExistsFn != nil {
		return m.ReferenceExistsFn(ctx, reference)
	}
	return false, nil
}

func (m *mockTransactionRepo) SavePosting(ctx context.Context, txn domain.Transaction, newBalance int64) (*domain.Transaction, error) {
	if m.SavePostingFn != nil {
		return m.SavePostingFn(ctx, txn, newBalance)
	}
	committed := txn
	committed.TransactionID = 1
	return &committed, nil
}

type mockSessionRepo struct {
	SaveCurrentFn      func(ctx context.Context, account domain.Account) error
	FindCurrentFn      func(ctx context.Context) (*domain.Account, error)
	ClearCurrentFn     func(ctx context.Context) error
	SaveResetTicketFn  func(ctx context.Context, ticket domain.ResetTicket) error
	FindResetTicketFn  func(ctx context.Context) (*domain.ResetTicket, error)
	ClearResetTicketFn func(ctx context.Context) error
}

func (m *mockSessionRepo) SaveCurrent(ctx context.Context, account domain.Account) error {
	if m.SaveCurrentFn != nil {
		return m.SaveCurrentFn(ctx, account)
	}
	return nil
}

func (m *mockSessionRepo) FindCurrent(ctx context.Context) (*domain.Account, error) {
	if m.FindCurrentFn != nil {
		return m.FindCurrentFn(ctx)
	}
	return nil, nil
}

func (m *mockSessionRepo) ClearCurrent(ctx context.Context) error {
	if m.ClearCurrentFn != nil {
		return m.ClearCurrentFn(ctx)
	}
	return nil
}

func (m *mockSessionRepo) SaveResetTicket(ctx context.Context, ticket domain.ResetTicket) error {
	if m.SaveResetTicketFn != nil {
		return m.SaveResetTicketFn(ctx, ticket)
	}
	return nil
}

func (m *mockSessionRepo) FindResetTicket(ctx context.Context) (*domain.ResetTicket, error) {
	if m.FindResetTicketFn != nil {
		return m.FindResetTicketFn(ctx)
	}
	return nil, nil
}

func (m *mockSessionRepo) ClearResetTicket(ctx context.Context) error {
	if m.ClearResetTicketFn != nil {
		return m.ClearResetTicketFn(ctx)
	}
	return nil
}

type mockRegistryReader struct {
	FindByIDFn               func(ctx context.Context, accountID string) (*domain.Account, error)
	FindByDocumentAndEmailFn func(ctx context.Context, docType domain.DocumentType, docNumber, email string) (*domain.Account, error)
	UpdatePasswordFn         func(ctx context.Context, accountID, newPassword string) error
}

func (m *mockRegistryReader) FindByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockRegistryReader) FindByDocumentAndEmail(ctx context.Context, docType domain.DocumentType, docNumber, email string) (*domain.Account, error) {
	if m.FindByDocumentAndEmailFn != nil {
		return m.FindByDocumentAndEmailFn(ctx, docType, docNumber, email)
	}
	return nil, nil
}

func (m *mockRegistryReader) UpdatePassword(ctx context.Context, accountID, newPassword string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, accountID, newPassword)
	}
	return nil
}

type mockSessionRefresher struct {
	CurrentFn func(ctx context.Context) (*domain.Account, error)
	RefreshFn func(ctx context.Context) (*domain.Account, error)
}

func (m *mockSessionRefresher) Current(ctx context.Context) (*domain.Account, error) {
	if m.CurrentFn != nil {
		return m.CurrentFn(ctx)
	}
	return nil, nil
}

func (m *mockSessionRefresher) Refresh(ctx context.Context) (*domain.Account, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx)
	}
	return nil, nil
}
