// models/errors.go
package models

import "errors"

// Error kinds shared by repositories and services. Controllers translate
// them to HTTP status codes; any other error is treated as a store failure.
var (
	// ErrNotFound: the target document does not exist. Deletes swallow it
	// (idempotent delete); reads and updates surface it to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate: a unique index was violated (sku, category/brand name,
	// user email).
	ErrDuplicate = errors.New("duplicate value")
)

// DuplicateError carries the violated field so the API can return a
// field-level message. Matches ErrDuplicate via errors.Is.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " already exists" }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// ValidationError rejects a request before any store write happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
