// Package validation checks typed inputs before they reach any collaborator.
package validation

import (
	"regexp"
	"unicode"

	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegex  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s]+$`)
	mobilePhoneRegex = regexp.MustCompile(`^\+569\d{8}$`)
)

// Validator wraps go-playground/validator with the project's custom tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the custom tags registered:
//
//	personname     letters and spaces only
//	mobilephone    Chilean mobile number, +569 followed by eight digits
//	strongpassword at least 8 characters with lower, upper, digit and symbol
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mobilephone", func(fl validator.FieldLevel) bool {
		return mobilePhoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s and reports failures as a ValidationError naming the fields.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" "+fe.Tag())
	}

	return domainerrors.NewValidationError(fields...)
}

// Var validates a single value against tag.
func (v *Validator) Var(field string, value any, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		return domainerrors.NewValidationError(field + " " + tag)
	}

	return nil
}

// StrongPassword reports whether p has at least 8 characters including a lower
// case letter, an upper case letter, a digit and a symbol.
func StrongPassword(p string) bool {
	if len([]rune(p)) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	return lower && upper && digit && symbol
}
