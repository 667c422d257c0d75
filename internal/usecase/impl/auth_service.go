package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "petcare/internal/delivery/context"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity    service.IdentityProvider
	profileRepo repository.UserProfileRepository
	validator   *validation.Validator
	logger      *slog.Logger
	now         Clock
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	identity service.IdentityProvider,
	profileRepo repository.UserProfileRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		identity:    identity,
		profileRepo: profileRepo,
		validator:   validator,
		logger:      logger,
		now:         defaultClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and stores its profile under the new UID.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("registration required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registering new account", slog.String("email", input.Email))

	ident, err := srv.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	profile := &entity.UserProfile{
		ID:        ident.UID,
		Name:      strings.TrimSpace(input.Name),
		Surname:   strings.TrimSpace(input.Surname),
		Phone:     input.Phone,
		Address:   strings.TrimSpace(input.Address),
		Region:    input.Region,
		Email:     input.Email,
		CreatedAt: srv.now(),
	}
	if err := srv.profileRepo.SaveProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Account created without profile",
			slog.String("uid", ident.UID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewPartialFailure("register", []string{ident.UID}, storeError(err, "failed to save profile"))
	}

	return ident, nil
}

// Login signs in with e-mail and password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("credentials required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	ident, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Debug("Sign-in rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return ident, nil
}

// LoginWithGoogle exchanges a Google ID token for a session. A first-time
// Google user gets a profile seeded from the account's e-mail and display name.
func (srv *authService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*entity.Identity, error) {
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

	existing, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*entity.UserProfile], error) {
		return srv.profileRepo.WatchProfile(ctx, ident.UID)
	})
	if err != nil {
		return nil, storeError(err, "failed to load profile")
	}
	if existing != nil {
		return ident, nil
	}

	name, surname, _ := strings.Cut(strings.TrimSpace(ident.DisplayName), " ")
	profile := &entity.UserProfile{
		ID:        ident.UID,
		Name:      name,
		Surname:   strings.TrimSpace(surname),
		Email:     ident.Email,
		CreatedAt: srv.now(),
	}
	if err := srv.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, domainerrors.NewPartialFailure("google login", []string{ident.UID}, storeError(err, "failed to save profile"))
	}

	srv.log(ctx).Info("Seeded profile for Google account", slog.String("uid", ident.UID))

	return ident, nil
}

// SendPasswordReset e-mails a reset link.
func (srv *authService) SendPasswordReset(ctx context.Context, input *usecase.PasswordResetInput) error {
	if input == nil {
		return domainerrors.NewValidationError("email required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	return srv.identity.SendPasswordReset(ctx, input.Email)
}

// Authenticate validates a session ID token.
func (srv *authService) Authenticate(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	ident, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	return ident, nil
}
