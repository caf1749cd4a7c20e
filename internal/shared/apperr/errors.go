// Package apperr defines the error kinds the restaurant core reports to callers.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports missing, empty or malformed input.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a reference that does not resolve.
type NotFoundError struct {
	Entity string
	ID     any
	Err    error
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s '%v' not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Field string
	Value any
	Err   error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%v' is already taken", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// Validation builds a ValidationError.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidationFrom builds a ValidationError that wraps cause.
func ValidationFrom(field, reason string, cause error) error {
	return &ValidationError{Field: field, Reason: reason, Err: cause}
}

// NotFound builds a NotFoundError wrapping cause.
func NotFound(entity string, id any, cause error) error {
	return &NotFoundError{Entity: entity, ID: id, Err: cause}
}

// Conflict builds a ConflictError wrapping cause.
func Conflict(field string, value any, cause error) error {
	return &ConflictError{Field: field, Value: value, Err: cause}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err carries a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
