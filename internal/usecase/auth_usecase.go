package usecase

import (
	"context"

	"petcare/internal/domain/entity"
)

// AuthUsecase defines the stateless identity operations behind the HTTP API.
type AuthUsecase interface {
	// Register creates the account and its profile document.
	Register(ctx context.Context, input *RegisterInput) (*entity.Identity, error)
	Login(ctx context.Context, input *LoginInput) (*entity.Identity, error)
	LoginWithGoogle(ctx context.Context, input *GoogleLoginInput) (*entity.Identity, error)
	SendPasswordReset(ctx context.Context, input *PasswordResetInput) error

	// Authenticate validates a session token.
	Authenticate(ctx context.Context, idToken string) (*entity.Identity, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=3,max=60,personname"`
	Surname         string `json:"surname" validate:"required,min=3,max=60,personname"`
	Phone           string `json:"phone" validate:"required,mobilephone"`
	Address         string `json:"address" validate:"required,min=10,max=200"`
	Region          string `json:"region" validate:"required,max=60"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,max=128,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginInput defines the e-mail/password credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput carries the Google ID token obtained by the client.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// PasswordResetInput defines the address to send the reset link to.
type PasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}
