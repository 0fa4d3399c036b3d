// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password too weak")

	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken is returned when no token is supplied.
	ErrMissingToken = errors.New("missing token")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrRateLimited is returned when too many attempts were made.
	ErrRateLimited = errors.New("rate limited")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010004"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010005"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
