// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Snapshot domain errors.
var (
	// ErrSnapshotAlreadyExists is returned when snapshot rows for a
	// (user, year, month) already exist and creation is attempted again.
	ErrSnapshotAlreadyExists = errors.New("snapshot already exists for month")
)

// SnapshotErrorCode defines error codes for snapshot errors.
// Format: SNAP-XXYYYY where XX is category and YYYY is specific error.
type SnapshotErrorCode string

const (
	ErrCodeSnapshotAlreadyExists SnapshotErrorCode = "SNAP-010001"
)

// SnapshotError represents a snapshot error with code and message.
type SnapshotError struct {
	Code    SnapshotErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// NewSnapshotError creates a new SnapshotError with the given code and message.
func NewSnapshotError(code SnapshotErrorCode, message string, err error) *SnapshotError {
	return &SnapshotError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
