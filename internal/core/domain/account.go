package domain

import "time"

// DocumentType identifies the kind of identity document backing an account.
type DocumentType string

const (
	DocumentCitizenID DocumentType = "citizen-id"
	DocumentForeignID DocumentType = "foreign-id"
	DocumentPassport  DocumentType = "passport"
	DocumentMinorID   DocumentType = "minor-id"
)

// Valid reports whether d is one of the recognized document types.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentCitizenID, DocumentForeignID, DocumentPassport, DocumentMinorID:
		return true
	}
	return false
}

// DisplayName returns the document type label shown on statements and
// certificates.
func (d DocumentType) DisplayName() string {
	switch d {
	case DocumentCitizenID:
		return "Citizen ID"
	case DocumentForeignID:
		return "Foreign Resident ID"
	case DocumentPassport:
		return "Passport"
	case DocumentMinorID:
		return "Minor ID Card"
	}
	return string(d)
}

// Account represents a registered holder's identity plus their banking state.
// Balance is held in the smallest currency unit and is only ever written by a
// ledger posting; it always equals the sum of signed transaction amounts for
// this account in commit order.
type Account struct {
	AccountID      string       `json:"accountID"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Gender         string       `json:"gender"`
	City           string       `json:"city"`
	Address        string       `json:"address"`
	PasswordHash   string       `json:"passwordHash"`
	AccountNumber  string       `json:"accountNumber"`
	CreatedAt      time.Time    `json:"createdAt"`
	Balance        int64        `json:"balance"`
}

// FullName returns the holder's display name.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
