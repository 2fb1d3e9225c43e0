package ledger

import (
	"errors"
	"fmt"
)

// ErrorCode is a domain error code used by ledger validations.
type ErrorCode string

const (
	// ErrorUserAlreadyExists indicates a user with the given id already exists.
	ErrorUserAlreadyExists ErrorCode = "0001"
	// ErrorUserNotFound indicates no user exists with the given id.
	ErrorUserNotFound ErrorCode = "0002"
	// ErrorInvalidAmount indicates the transaction or loan amount is not positive.
	ErrorInvalidAmount ErrorCode = "0003"
	// ErrorInsufficientFunds indicates the balance cannot cover the debit amount.
	ErrorInsufficientFunds ErrorCode = "0018"
	// ErrorLoanAlreadyExists indicates the user already has an outstanding loan.
	ErrorLoanAlreadyExists ErrorCode = "0019"
	// ErrorInvalidInput indicates request input failed a shape validation.
	ErrorInvalidInput ErrorCode = "1001"
)

// DomainError represents a structured ledger domain validation error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error implements the error interface.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}

// CodeOf extracts the domain error code from err, if err is a DomainError.
func CodeOf(err error) (ErrorCode, bool) {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, true
	}

	return "", false
}
