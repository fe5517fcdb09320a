package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the sluice library

var (
	// ErrInvalidConfiguration indicates invalid configuration parameters.
	// Every configuration failure in the library unwraps to this sentinel,
	// so callers can check for it with errors.Is.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a configuration value that failed validation.
// It carries enough context to tell the caller which component rejected
// which field, and why.
type ValidationError struct {
	Module string      // component reporting the error, e.g. "limiter"
	Field  string      // configuration field, e.g. "capacity"
	Value  interface{} // the offending value
	Reason string      // why the value was rejected
	Hint   string      // optional guidance for fixing the value
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches guidance to the error and returns the same instance
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes every ValidationError match ErrInvalidConfiguration
// under errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
