package domain

import "time"

// TransactionType indicates the kind of ledger posting. Amounts are always
// positive; direction is carried by the type, not the sign.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
	Payment    TransactionType = "PAYMENT"
)

// DisplayName returns the transaction type label shown on statements.
func (t TransactionType) DisplayName() string {
	switch t {
	case Deposit:
		return "Deposit"
	case Withdrawal:
		return "Withdrawal"
	case Payment:
		return "Payment"
	}
	return string(t)
}

// UtilityService identifies the payee of a bill payment. It only influences
// the transaction description, never the limits.
type UtilityService string

const (
	Electricity UtilityService = "electricity"
	Water       UtilityService = "water"
	Gas         UtilityService = "gas"
	Internet    UtilityService = "internet"
)

// Valid reports whether u is one of the payable services.
func (u UtilityService) Valid() bool {
	switch u {
	case Electricity, Water, Gas, Internet:
		return true
	}
	return false
}

// DisplayName returns the service label embedded in payment descriptions.
func (u UtilityService) DisplayName() string {
	switch u {
	case Electricity:
		return "Electricity"
	case Water:
		return "Water"
	case Gas:
		return "Gas"
	case Internet:
		return "Internet"
	}
	return string(u)
}

// Transaction is an immutable posted ledger entry affecting one account.
// TransactionID is assigned from a monotonic sequence at commit time, so ids
// are creation-ordered by construction.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Reference     string          `json:"reference"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Amount        int64           `json:"amount"`
	PostedAt      time.Time       `json:"postedAt"`
	BalanceAfter  int64           `json:"balanceAfter"`
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for deposits, negative for withdrawals and payments.
func (t Transaction) SignedAmount() int64 {
	if t.Type == Deposit {
		return t.Amount
	}
	return -t.Amount
}
