// Package domain holds the pure booking rules: cross-field validators
// and remaining-capacity arithmetic.  Nothing here touches the database,
// so the API layer and the repositories can both gate writes with the
// same functions.
package domain

import "fmt"

// ValidationError reports a rejected value with the field it belongs
// to, so callers can attribute the failure in their responses.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
