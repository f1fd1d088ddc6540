// Package apperrors defines the error taxonomy shared by services and the
// HTTP boundary. Handlers map these to status codes; anything unrecognized is
// logged and surfaced as a generic internal error.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing row and an ownership mismatch, so a
	// non-owner can never confirm that a resource exists.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike, never distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnauthorized = errors.New("unauthorized")
)

// DuplicateError reports a unique-constraint violation on a single field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s is already taken", e.Field)
}

// ValidationError carries a field -> message map for 422 responses.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// StorageError wraps an object-storage failure, keeping it distinguishable
// from metadata-store failures.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsDuplicate(err error) bool {
	var d *DuplicateError
	return errors.As(err, &d)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}
