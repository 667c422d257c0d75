// Package validator adapts the input validator to echo.
package validator

import (
	"petcare/internal/validation"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validator *validation.Validator
}

// New returns an echo validator backed by v.
func New(v *validation.Validator) *EchoValidator {
	return &EchoValidator{validator: v}
}

// Validate checks i and reports failures as a ValidationError.
func (v *EchoValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
