package dto

import (
	"time"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// AmountRequest carries a deposit or withdrawal amount in the smallest
// currency unit. The ledger owns positivity and ceiling checks, so no binding
// constraint beyond the JSON shape.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// PaymentRequest carries a bill payment. Service is constrained to the
// payable utilities at binding time.
type PaymentRequest struct {
	Amount           int64  `json:"amount"`
	Service          string `json:"service" binding:"required,utilityservice"`
	ServiceReference string `json:"serviceReference"`
}

// TransactionResponse is the public view of a committed ledger entry.
type TransactionResponse struct {
	TransactionID int64     `json:"transactionID"`
	AccountID     string    `json:"accountID"`
	Reference     string    `json:"reference"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Amount        int64     `json:"amount"`
	PostedAt      time.Time `json:"postedAt"`
	BalanceAfter  int64     `json:"balanceAfter"`
}

// ToTransactionResponse maps a domain transaction to its public view.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Reference:     t.Reference,
		Type:          t.Type.DisplayName(),
		Description:   t.Description,
		Amount:        t.Amount,
		PostedAt:      t.PostedAt,
		BalanceAfter:  t.BalanceAfter,
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
