package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("conflict")

	// Registration errors
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrInvalidEmail     = errors.New("not a valid college email address")
	ErrWeakPassword     = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingField     = errors.New("required field missing")
	ErrInvalidValue     = errors.New("invalid field value")
	ErrConsentRequired  = errors.New("privacy policy consent required")

	// Authentication and authorization errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("permission denied")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Capacity errors
	ErrClubFull  = errors.New("club is full")
	ErrEventFull = errors.New("event is full")

	// Content errors
	ErrTooShort = errors.New("content too short")
	ErrTooLong  = errors.New("content too long")

	// Marketplace errors
	ErrListingSold = errors.New("listing already sold")

	// Storage errors
	ErrPersistence = errors.New("persistence failure")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a new custom error for a missing resource
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewUnauthorizedError creates a new custom error for permission denied
func NewUnauthorizedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// NewMissingFieldError creates a new custom error naming the blank field
func NewMissingFieldError(field string) error {
	return &CustomError{
		Err:     ErrMissingField,
		Message: "please provide " + field,
	}
}

// NewPersistenceError wraps a storage error so callers can match ErrPersistence
func NewPersistenceError(err error) error {
	if err == nil {
		return nil
	}
	return &CustomError{
		Err:     ErrPersistence,
		Message: "persistence failure: " + err.Error(),
	}
}
