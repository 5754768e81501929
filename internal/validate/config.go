// Package validate provides input validation for spraygen options.
//
// All checks go through a shared go-playground/validator instance so flag,
// environment and command validation produce consistent messages. Field-level
// helpers live here; option-specific rules (years, domains, limits) are in
// input.go.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: number, hostname_rfc1123, min, max
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("2024", "number,len=4")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
