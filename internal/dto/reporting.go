package dto

import (
	"time"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// SummaryResponse is the public view of a transaction summary.
type SummaryResponse struct {
	Total  int              `json:"total"`
	Counts map[string]int   `json:"counts"`
	Totals map[string]int64 `json:"totals"`
}

// StatementResponse is the public view of a monthly statement.
type StatementResponse struct {
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Period       string                `json:"period"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// CertificateResponse is the public view of an account certificate.
type CertificateResponse struct {
	HolderName     string    `json:"holderName"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	AccountNumber  string    `json:"accountNumber"`
	OpenedAt       time.Time `json:"openedAt"`
	IssuedAt       time.Time `json:"issuedAt"`
}

// ToSummaryResponse maps a domain summary to its public view.
func ToSummaryResponse(s domain.TransactionSummary) SummaryResponse {
	out := SummaryResponse{
		Total:  s.Total,
		Counts: make(map[string]int, len(s.Counts)),
		Totals: make(map[string]int64, len(s.Totals)),
	}
	for typ, n := range s.Counts {
		out.Counts[typ.DisplayName()] = n
	}
	for typ, total := range s.Totals {
		out.Totals[typ.DisplayName()] = total
	}
	return out
}

// ToStatementResponse maps a domain statement to its public view.
func ToStatementResponse(s domain.Statement) StatementResponse {
	return StatementResponse{
		Year:         s.Year,
		Month:        int(s.Month),
		Period:       s.Period,
		Transactions: ToTransactionResponses(s.Transactions),
		Summary:      ToSummaryResponse(s.Summary),
	}
}

// ToCertificateResponse maps a domain certificate to its public view.
func ToCertificateResponse(c domain.Certificate) CertificateResponse {
	return CertificateResponse{
		HolderName:     c.HolderName,
		DocumentType:   c.DocumentType.DisplayName(),
		DocumentNumber: c.DocumentNumber,
		AccountNumber:  c.AccountNumber,
		OpenedAt:       c.OpenedAt,
		IssuedAt:       c.IssuedAt,
	}
}
