// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Fixed-item (recurring template) domain errors.
var (
	// ErrFixedItemNotFound is returned when a template line is not found.
	ErrFixedItemNotFound = errors.New("fixed item not found")

	// ErrInvalidFixedItemType is returned when the item type is neither
	// expense nor income.
	ErrInvalidFixedItemType = errors.New("invalid fixed item type")

	// ErrFixedItemNameEmpty is returned when the item name is blank.
	ErrFixedItemNameEmpty = errors.New("fixed item name empty")

	// ErrInvalidMonth is returned when a month value is outside 0..11.
	ErrInvalidMonth = errors.New("month out of range")
)

// FixedErrorCode defines error codes for fixed-item errors.
// Format: FIX-XXYYYY where XX is category and YYYY is specific error.
type FixedErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFixedItemType FixedErrorCode = "FIX-010001"
	ErrCodeFixedItemNameEmpty   FixedErrorCode = "FIX-010002"
	ErrCodeFixedItemNotFound    FixedErrorCode = "FIX-010003"
	ErrCodeInvalidMonth         FixedErrorCode = "FIX-010004"
)

// FixedError represents a fixed-item error with code and message.
type FixedError struct {
	Code    FixedErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedError) Unwrap() error {
	return e.Err
}

// NewFixedError creates a new FixedError with the given code and message.
func NewFixedError(code FixedErrorCode, message string, err error) *FixedError {
	return &FixedError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
