// Package auth provides the identity provider backed by Firebase Authentication.
package auth

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"petcare/config"
	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/service"
	"petcare/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const (
	googleProviderID = "google.com"
	// assertionRequestURI is required by verifyAssertion even for ID-token exchanges.
	assertionRequestURI = "http://localhost"
	passwordResetType   = "PASSWORD_RESET"
)

// tokenVerifier is the part of the Firebase auth client used to check ID tokens.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseIdentity signs users in through the Identity Toolkit REST API and
// verifies session tokens with the Admin SDK.
type firebaseIdentity struct {
	verifier tokenVerifier
	toolkit  *identitytoolkit.RelyingpartyService
	logger   *slog.Logger
}

// NewFirebaseIdentity builds the identity provider from the shared Firebase app.
func NewFirebaseIdentity(ctx context.Context, app *firebase.App, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityProvider, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("firebase api key is required for the identity provider")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newFirebaseIdentity(ctx, client, logger, option.WithAPIKey(cfg.APIKey))
}

func newFirebaseIdentity(ctx context.Context, verifier tokenVerifier, logger *slog.Logger, opts ...option.ClientOption) (*firebaseIdentity, error) {
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseIdentity{
		verifier: verifier,
		toolkit:  svc.Relyingparty,
		logger:   logger,
	}, nil
}

func (p *firebaseIdentity) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := p.toolkit.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, p.mapError(err, "sign up")
	}

	return &entity.Identity{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *firebaseIdentity) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	resp, err := p.toolkit.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, p.mapError(err, "sign in")
	}

	return &entity.Identity{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *firebaseIdentity) SignInWithGoogle(ctx context.Context, googleIDToken string) (*entity.Identity, error) {
	body := url.Values{}
	body.Set("id_token", googleIDToken)
	body.Set("providerId", googleProviderID)

	resp, err := p.toolkit.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        assertionRequestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, p.mapError(err, "google sign in")
	}

	return &entity.Identity{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

func (p *firebaseIdentity) SendPasswordReset(ctx context.Context, email string) error {
	_, err := p.toolkit.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: passwordResetType,
	}).Context(ctx).Do()
	if err != nil {
		return p.mapError(err, "password reset")
	}

	return nil
}

func (p *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	ident := &entity.Identity{UID: token.UID, IDToken: idToken}
	if email, ok := token.Claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		ident.DisplayName = name
	}

	return ident, nil
}

// mapError converts Identity Toolkit error codes to the fixed auth errors.
// The raw provider message is kept in the log only.
func (p *firebaseIdentity) mapError(err error, op string) error {
	code := providerCode(err)
	p.logger.Debug("Identity provider rejected request", slog.String("op", op), slog.String("code", code))

	switch code {
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return errors.WithStack(domainerrors.ErrInvalidEmail)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_IDP_RESPONSE":
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	case "EMAIL_NOT_FOUND", "USER_DISABLED":
		return errors.WithStack(domainerrors.ErrUserNotFound)
	case "EMAIL_EXISTS":
		return errors.WithStack(domainerrors.ErrEmailInUse)
	case "WEAK_PASSWORD":
		return errors.WithStack(domainerrors.ErrWeakPassword)
	default:
		return errors.Wrap(domainerrors.ErrAuthFailed, err.Error())
	}
}

// providerCode extracts the leading error code, e.g. "WEAK_PASSWORD : Password
// should be at least 6 characters" yields WEAK_PASSWORD.
func providerCode(err error) string {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return ""
	}

	msg := gerr.Message
	if msg == "" && len(gerr.Errors) > 0 {
		msg = gerr.Errors[0].Message
	}
	code, _, _ := strings.Cut(msg, " ")

	return strings.TrimSpace(code)
}
