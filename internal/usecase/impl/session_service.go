package impl

import (
	"context"
	"log/slog"
	"sync"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// sessionService implements the SessionUsecase interface. It keeps the
// signed-in identity of one client and fans changes out to AuthState streams.
type sessionService struct {
	identity  service.IdentityProvider
	validator *validation.Validator
	logger    *slog.Logger

	mu      sync.Mutex
	current *entity.Identity
	subs    map[int]*stream.Stream[*entity.Identity]
	nextSub int
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProvider,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity:  identity,
		validator: validator,
		logger:    logger,
		subs:      make(map[int]*stream.Stream[*entity.Identity]),
	}
}

// SignIn signs in with e-mail and password and publishes the new identity.
func (srv *sessionService) SignIn(ctx context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("credentials required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	ident, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	srv.publish(ident)

	return ident, nil
}

// SignInWithGoogle signs in with a Google ID token and publishes the new identity.
func (srv *sessionService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("id_token required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	ident, err := srv.identity.SignInWithGoogle(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}
	srv.publish(ident)

	return ident, nil
}

// SignOut forgets the identity and publishes nil.
func (srv *sessionService) SignOut(_ context.Context) error {
	srv.logger.Info("Signing out")
	srv.publish(nil)

	return nil
}

// AuthState opens a stream that emits the current identity immediately and
// again after every sign-in or sign-out.
func (srv *sessionService) AuthState() *stream.Stream[*entity.Identity] {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := srv.nextSub
	srv.nextSub++

	s := stream.New[*entity.Identity](func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()

		delete(srv.subs, id)
	})
	srv.subs[id] = s
	s.Emit(srv.current)

	return s
}

// CurrentIdentity returns the signed-in identity or nil.
func (srv *sessionService) CurrentIdentity() *entity.Identity {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.current
}

func (srv *sessionService) publish(ident *entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.current = ident
	for id, s := range srv.subs {
		if !s.Emit(ident) {
			delete(srv.subs, id)
		}
	}
}

// authGuard implements the AuthGuard interface.
type authGuard struct {
	navigator service.Navigator
	logger    *slog.Logger
}

// NewAuthGuard is the constructor for authGuard.
func NewAuthGuard(navigator service.Navigator, logger *slog.Logger) usecase.AuthGuard {
	return &authGuard{
		navigator: navigator,
		logger:    logger,
	}
}

// CanEnter takes the first emission of authState. Anything other than a
// signed-in identity sends the client to the login route.
func (g *authGuard) CanEnter(ctx context.Context, authState *stream.Stream[*entity.Identity]) (bool, error) {
	ident, err := stream.First(ctx, authState)
	if err != nil && !errors.Is(err, stream.ErrClosed) {
		return false, errors.Wrap(err, "failed to read auth state")
	}
	if ident != nil {
		return true, nil
	}

	g.logger.Debug("Redirecting unauthenticated navigation", slog.String("route", usecase.LoginRoute))
	if err := g.navigator.Navigate(ctx, usecase.LoginRoute); err != nil {
		return false, errors.Wrap(err, "failed to redirect to login")
	}

	return false, nil
}
