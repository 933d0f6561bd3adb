package dto

import (
	"time"

	"github.com/acmebank/acmebank/internal/core/domain"
)

// RegisterRequest carries the registration form. Field-level validation is
// done by the core validation engine so rejects accumulate per-field messages
// in form order; binding only checks the JSON shape.
type RegisterRequest struct {
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender"`
	City           string `json:"city"`
	Address        string `json:"address"`
	Password       string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	DocumentType   string `json:"documentType" binding:"required"`
	DocumentNumber string `json:"documentNumber" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

// LoginResponse returns the session token and the account snapshot.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// ForgotPasswordRequest carries step one of the reset flow: proving account
// ownership by document pair and email.
type ForgotPasswordRequest struct {
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	Email          string `json:"email"`
}

// ResetPasswordRequest carries step two of the reset flow.
type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AccountResponse is the public view of an account; the credential never
// leaves the core.
type AccountResponse struct {
	AccountID      string    `json:"accountID"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Gender         string    `json:"gender"`
	City           string    `json:"city"`
	Address        string    `json:"address"`
	AccountNumber  string    `json:"accountNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	Balance        int64     `json:"balance"`
}

// ToAccountResponse maps a domain account to its public view.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		DocumentType:   string(a.DocumentType),
		DocumentNumber: a.DocumentNumber,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		Gender:         a.Gender,
		City:           a.City,
		Address:        a.Address,
		AccountNumber:  a.AccountNumber,
		CreatedAt:      a.CreatedAt,
		Balance:        a.Balance,
	}
}
