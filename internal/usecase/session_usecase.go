package usecase

import (
	"context"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// LoginRoute is where the guard sends unauthenticated navigation.
const LoginRoute = "/login"

// SessionUsecase holds the signed-in identity of one client.
type SessionUsecase interface {
	SignIn(ctx context.Context, input *LoginInput) (*entity.Identity, error)
	SignInWithGoogle(ctx context.Context, input *GoogleLoginInput) (*entity.Identity, error)
	SignOut(ctx context.Context) error

	// AuthState emits the current identity, nil when signed out, now and on
	// every change.
	AuthState() *stream.Stream[*entity.Identity]

	// CurrentIdentity returns the signed-in identity or nil.
	CurrentIdentity() *entity.Identity
}

// AuthGuard decides whether a protected route may be entered.
type AuthGuard interface {
	// CanEnter consumes one emission of authState and stops it. It returns true
	// for a signed-in identity; otherwise it navigates to LoginRoute and
	// returns false.
	CanEnter(ctx context.Context, authState *stream.Stream[*entity.Identity]) (bool, error)
}
