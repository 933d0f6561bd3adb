package domain

import "time"

// TransactionSummary is a pure fold over a set of transactions: total count,
// plus per-type counts and amount totals.
type TransactionSummary struct {
	Total  int                       `json:"total"`
	Counts map[TransactionType]int   `json:"counts"`
	Totals map[TransactionType]int64 `json:"totals"`
}

// Statement is the projection backing a monthly account statement.
type Statement struct {
	Year         int                `json:"year"`
	Month        time.Month         `json:"month"`
	Period       string             `json:"period"`
	Transactions []Transaction      `json:"transactions"`
	Summary      TransactionSummary `json:"summary"`
}

// Certificate is the projection backing an account ownership certificate.
type Certificate struct {
	HolderName     string       `json:"holderName"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	AccountNumber  string       `json:"accountNumber"`
	OpenedAt       time.Time    `json:"openedAt"`
	IssuedAt       time.Time    `json:"issuedAt"`
}
