// Package errors provides standardized domain errors that express business intent
// rather than storage details. Use cases return these errors (or domain errors wrapping
// them) and callers match on the category with Is.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate email).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates the supplied credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the authenticated user doesn't have permission.
	ErrForbidden = errors.New("forbidden")

	// ErrFailedPrecondition indicates the resource is in a state that forbids the operation.
	ErrFailedPrecondition = errors.New("failed precondition")

	// ErrPersistence indicates the backing store could not be written.
	ErrPersistence = errors.New("persistence failure")
)

// categories lists the sentinels in the order Category checks them.
var categories = []error{
	ErrNotFound,
	ErrConflict,
	ErrInvalidInput,
	ErrUnauthorized,
	ErrForbidden,
	ErrFailedPrecondition,
	ErrPersistence,
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Category returns the standard error err belongs to, or nil when it belongs to none.
func Category(err error) error {
	for _, category := range categories {
		if errors.Is(err, category) {
			return category
		}
	}
	return nil
}
