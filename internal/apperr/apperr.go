// Package apperr defines the error categories used across the pea-protein
// analysis CLI and engine.
//
// Error taxonomy
//
//	UserError  – caused by missing or invalid user input (wrong flag, bad value, …).
//	             The CLI prints only the message; usage help is NOT repeated.
//	             Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive flow (scenario
//	               form, overwrite confirmation, …).
//	               Exit code: 0 (not a failure).
//
//	InvalidInputError / InvalidAllocationError – typed engine errors raised when
//	               a calculation precondition fails (non-positive volume or
//	               duration, zero allocation basis, …). They identify the
//	               offending field so callers can point the user at it.
//
// Everything else is a plain Go error (file I/O, YAML parsing, …) and is
// propagated with fmt.Errorf("context: %w", err) wrapping.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation.  The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output and format the message
// in a user-friendly way.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}

// InvalidInputError reports a calculation input that violates a precondition,
// e.g. a non-positive production volume where a ratio requires a positive
// denominator. The engine fails fast with this error instead of computing
// with defaulted or sentinel values.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// InvalidInput creates an InvalidInputError for the given field.
func InvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is (or wraps) an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// InvalidAllocationError reports an allocation request whose basis sums to
// zero (total mass, or total economic value for the economic and hybrid
// methods), making allocation factors undefined.
type InvalidAllocationError struct {
	Method string
	Reason string
}

func (e *InvalidAllocationError) Error() string {
	return fmt.Sprintf("invalid %s allocation: %s", e.Method, e.Reason)
}

// IsInvalidAllocation reports whether err is (or wraps) an *InvalidAllocationError.
func IsInvalidAllocation(err error) bool {
	var ae *InvalidAllocationError
	return errors.As(err, &ae)
}
