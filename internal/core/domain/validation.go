package domain

import "strings"

// ValidationError carries the full ordered list of rule violations for one
// input record. Rules never short-circuit, so callers can report every
// problem at once.
type ValidationError struct {
	Errors []string
}

func NewValidationError(errs []string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}
