package service

import (
	"context"

	"petcare/internal/domain/entity"
)

// IdentityProvider performs authentication against the managed identity service.
// Provider failures are reported as the fixed AuthError values of domain/errors.
type IdentityProvider interface {
	// SignUp creates an e-mail/password account and signs it in.
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignIn signs in with e-mail and password.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignInWithGoogle exchanges a Google ID token for a session.
	SignInWithGoogle(ctx context.Context, googleIDToken string) (*entity.Identity, error)

	// SendPasswordReset e-mails a password reset link.
	SendPasswordReset(ctx context.Context, email string) error

	// VerifyIDToken validates a session ID token and returns its identity.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)
}

// Navigator moves the client to another route, e.g. the sign-in screen.
type Navigator interface {
	Navigate(ctx context.Context, route string) error
}
