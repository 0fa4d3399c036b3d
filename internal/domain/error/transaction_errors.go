// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when the amount is not a positive value.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotAuthorizedToModifyTransaction is returned when a user tries to
	// modify a transaction owned by somebody else.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidMonthRange is returned when a month value is outside 0..11.
	ErrInvalidMonthRange = errors.New("month out of range")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidAmount          TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-010003"
	ErrCodeNotAuthorizedTxn       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidMonthRange      TransactionErrorCode = "TXN-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
