// Package errors provides centralized error definitions and error handling
// utilities for the fieldkit codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - StoreError: errors related to the shared state container
//   - FetchError: errors related to remote value fetches
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid composition or configuration input
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewFetchError("request failed", baseErr).WithURL(url)
//
//	// Semantic error
//	err := errors.NewValidationError("renderer", "must not be nil")
//
// Checking errors:
//
//	// Check for specific sentinel errors
//	if errors.Is(err, errors.ErrStoreClosed) { ... }
//
//	// Check for error types
//	var fetchErr *errors.FetchError
//	if errors.As(err, &fetchErr) { ... }
//
//	// Use classification helpers
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Composition-related sentinel errors
var (
	// ErrNilRenderer indicates a wrapper was applied to a nil renderer.
	ErrNilRenderer = New("renderer must not be nil")
	// ErrMissingOnChange indicates a change notification was delivered to a
	// renderer whose props carry no OnChange callback.
	ErrMissingOnChange = New("props missing OnChange callback")
)

// Store-related sentinel errors
var (
	// ErrStoreClosed indicates an operation on a closed state container.
	ErrStoreClosed = New("store is closed")
	// ErrUnknownFeature indicates a feature key with no registered reducer.
	ErrUnknownFeature = New("unknown feature key")
	// ErrNilReducer indicates a feature was registered without a reducer.
	ErrNilReducer = New("reducer must not be nil")
)

// Fetch-related sentinel errors
var (
	// ErrFetchFailed indicates a remote value fetch did not complete.
	ErrFetchFailed = New("remote fetch failed")
	// ErrBadPayload indicates a remote payload could not be parsed.
	ErrBadPayload = New("malformed remote payload")
)

// -----------------------------------------------------------------------------
// Domain-Specific Error Types
// -----------------------------------------------------------------------------

// StoreError represents an error from the shared state container.
type StoreError struct {
	// Message describes what went wrong
	Message string
	// Feature is the feature key involved, if any
	Feature string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Feature != "" {
		return fmt.Sprintf("store error [feature=%s]: %s: %v", e.Feature, e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, err error) *StoreError {
	return &StoreError{Message: message, Err: err}
}

// WithFeature adds the feature key to the error context.
func (e *StoreError) WithFeature(feature string) *StoreError {
	e.Feature = feature
	return e
}

// FetchError represents an error from a remote value fetch.
type FetchError struct {
	// Message describes what went wrong
	Message string
	// URL is the remote endpoint, if known
	URL string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("fetch error [url=%s]: %s: %v", e.URL, e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("fetch error: %s", e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(message string, err error) *FetchError {
	return &FetchError{Message: message, Err: err}
}

// WithURL adds the remote endpoint to the error context.
func (e *FetchError) WithURL(url string) *FetchError {
	e.URL = url
	return e
}

// -----------------------------------------------------------------------------
// Semantic Error Types
// -----------------------------------------------------------------------------

// ValidationError indicates invalid composition or configuration input.
type ValidationError struct {
	// Field is the name of the invalid field or argument
	Field string
	// Reason explains why the value is invalid
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable reports whether an error represents a transient condition that
// may succeed on retry. Remote fetch failures are retryable unless the payload
// itself was malformed; composition and store errors are not.
func IsRetryable(err error) bool {
	if Is(err, ErrBadPayload) {
		return false
	}
	var fetchErr *FetchError
	if As(err, &fetchErr) {
		return true
	}
	return Is(err, ErrFetchFailed)
}

// IsValidation reports whether an error is a validation error.
func IsValidation(err error) bool {
	var valErr *ValidationError
	return As(err, &valErr)
}
