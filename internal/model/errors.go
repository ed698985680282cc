package model

import (
	"errors"
	"strings"
)

// ErrInvalidInput is matched by every *ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ErrZeroCapacityLayout is returned when a cost is requested for a layout that
// fits no parts.
var ErrZeroCapacityLayout = errors.New("layout fits zero parts")

// ValidationError carries every violated input rule, not just the first.
type ValidationError struct {
	Errors []string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Errors, "; ")
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValidationResult is the structured outcome of a pre-flight validation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Err returns nil for a valid result or a *ValidationError with the messages.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}
