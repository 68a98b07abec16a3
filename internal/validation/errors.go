package validation

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all failed rules for one operation.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

// HasErrors reports whether any rule failed
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// AddRequiredError records a missing required field
func (ve *ValidationError) AddRequiredError(field string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Message: "is required"})
}

// AddInvalidLengthError records a field whose length is out of bounds
func (ve *ValidationError) AddInvalidLengthError(field string, min, max int) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d characters", min, max),
	})
}

// AddInvalidValueError records a field with an unacceptable value
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Message: fmt.Sprintf("%v %s", value, reason),
	})
}
