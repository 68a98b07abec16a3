package validation

import (
	"strings"
)

// Validator provides generic validation helpers shared by the concrete
// validators.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// TrimAndValidateString trims surrounding whitespace from a string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString checks that a string is not empty after trimming
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks that a string length is within [min, max]
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(s)
	return length >= min && length <= max
}

// IsValidID checks that an identifier is a positive integer
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsInRange checks that an integer is within [min, max]
func (v *Validator) IsInRange(value, min, max int) bool {
	return value >= min && value <= max
}
