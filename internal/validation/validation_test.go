package validation

import (
	"testing"

	domainerrors "petcare/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name     string `validate:"required,personname"`
	Phone    string `validate:"required,mobilephone"`
	Password string `validate:"required,strongpassword"`
	Confirm  string `validate:"required,eqfield=Password"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   signup
		wantErr string
	}{
		{
			name:  "valid",
			input: signup{Name: "María José", Phone: "+56912345678", Password: "Secr3t!x", Confirm: "Secr3t!x"},
		},
		{
			name:    "digits in name",
			input:   signup{Name: "R2D2", Phone: "+56912345678", Password: "Secr3t!x", Confirm: "Secr3t!x"},
			wantErr: "Name personname",
		},
		{
			name:    "landline phone",
			input:   signup{Name: "Ana", Phone: "+56221234567", Password: "Secr3t!x", Confirm: "Secr3t!x"},
			wantErr: "Phone mobilephone",
		},
		{
			name:    "password mismatch",
			input:   signup{Name: "Ana", Phone: "+56912345678", Password: "Secr3t!x", Confirm: "Secr3t!y"},
			wantErr: "Confirm eqfield",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("Abcdef1!"))
	assert.True(t, StrongPassword("Abcdef1_"))
	assert.False(t, StrongPassword("Abcde1!"))
	assert.False(t, StrongPassword("abcdef1!"))
	assert.False(t, StrongPassword("ABCDEF1!"))
	assert.False(t, StrongPassword("Abcdefg!"))
	assert.False(t, StrongPassword("Abcdefg1"))
}

func TestValidator_Var(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("email", "ana@gmail.com", "email"))
	assert.ErrorIs(t, v.Var("email", "ana", "email"), domainerrors.ErrValidationFailed)
}
