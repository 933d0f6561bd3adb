package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAccountNotFound indicates that the referenced account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateDocument indicates an account already exists for the same
// document type and number pair.
var ErrDuplicateDocument = errors.New("an account with this identity document already exists")

// ErrDuplicateEmail indicates an account already exists with the same email.
var ErrDuplicateEmail = errors.New("an account with this email already exists")

// ErrInvalidCredentials indicates a failed login attempt. It deliberately does
// not disclose which of the submitted fields was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidAmount indicates an operation amount that is missing, unparseable,
// zero or negative.
var ErrInvalidAmount = errors.New("amount must be a positive integer")

// ErrExceedsLimit indicates an amount above the ceiling for its operation type.
var ErrExceedsLimit = errors.New("amount exceeds the allowed limit")

// ErrInsufficientFunds indicates a withdrawal or payment larger than the
// current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrSessionExpired indicates there is no active session (or no live password
// reset ticket) for the requested operation.
var ErrSessionExpired = errors.New("session expired")

// ErrStorageFailure indicates the persistent store could not be read or
// written. The operation is treated as not committed.
var ErrStorageFailure = errors.New("storage failure")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ValidationError carries the ordered list of human-readable messages produced
// by the validation engine. It unwraps to ErrValidation.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// LimitExceededError carries the operation type and the ceiling that was
// exceeded. It unwraps to ErrExceedsLimit.
type LimitExceededError struct {
	Type string
	Max  int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s amount exceeds the limit of %d", strings.ToLower(e.Type), e.Max)
}

func (e *LimitExceededError) Unwrap() error {
	return ErrExceedsLimit
}
