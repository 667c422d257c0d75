package impl

import (
	"context"
	"testing"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	mockSvc "petcare/internal/mocks/service"
	"petcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (*authService, *fixtures, *mockSvc.MockIdentityProvider) {
	f := newFixtures(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	srv := NewAuthService(identity, f.profiles, f.validator, f.logger).(*authService)
	srv.now = fixedClock

	return srv, f, identity
}

func validRegistration() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:            "Ana",
		Surname:         "Pérez",
		Phone:           "+56912345678",
		Address:         "Av. Siempre Viva 742",
		Region:          "Biobío",
		Email:           "ana@example.com",
		Password:        "Secreta#2024",
		ConfirmPassword: "Secreta#2024",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, f, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SignUp(ctx, "ana@example.com", "Secreta#2024").
		Return(&entity.Identity{UID: "uid-1", Email: "ana@example.com", IDToken: "tok"}, nil)

	ident, err := srv.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "uid-1", ident.UID)

	profile := firstOf(t, mustWatchProfile(t, f, "uid-1"))
	require.NotNil(t, profile)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "Pérez", profile.Surname)
	assert.Equal(t, "ana@example.com", profile.Email)
}

func TestAuthService_Register_ValidationNeverReachesProvider(t *testing.T) {
	srv, _, _ := createTestAuthService(t)

	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
	}{
		{"weak password", func(in *usecase.RegisterInput) { in.Password, in.ConfirmPassword = "password", "password" }},
		{"passwords differ", func(in *usecase.RegisterInput) { in.ConfirmPassword = "Otra#2024x" }},
		{"bad phone", func(in *usecase.RegisterInput) { in.Phone = "912345678" }},
		{"bad email", func(in *usecase.RegisterInput) { in.Email = "ana@" }},
		{"name with digits", func(in *usecase.RegisterInput) { in.Name = "Ana2" }},
		{"short address", func(in *usecase.RegisterInput) { in.Address = "Calle 1" }},
		{"missing region", func(in *usecase.RegisterInput) { in.Region = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.mutate(in)

			_, err := srv.Register(context.Background(), in)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_ProviderRejects(t *testing.T) {
	srv, _, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SignUp(ctx, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailInUse)

	_, err := srv.Register(ctx, validRegistration())

	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestAuthService_Register_ProfileFailureIsPartial(t *testing.T) {
	srv, f, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SignUp(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string) (*entity.Identity, error) {
			f.store.SetOffline(true)

			return &entity.Identity{UID: "uid-1"}, nil
		})

	_, err := srv.Register(ctx, validRegistration())

	var partial *domainerrors.PartialFailureError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []string{"uid-1"}, partial.Completed())
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestAuthService_Login(t *testing.T) {
	srv, _, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SignIn(ctx, "ana@example.com", "bad").Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = srv.Login(ctx, &usecase.LoginInput{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_LoginWithGoogle_SeedsProfileOnce(t *testing.T) {
	srv, f, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SignInWithGoogle(ctx, "google-token").
		Return(&entity.Identity{UID: "g-1", Email: "ana@gmail.com", DisplayName: "Ana María Pérez"}, nil).
		Twice()

	_, err := srv.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "google-token"})
	require.NoError(t, err)

	profile := firstOf(t, mustWatchProfile(t, f, "g-1"))
	require.NotNil(t, profile)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "María Pérez", profile.Surname)

	require.NoError(t, f.profiles.UpdateProfile(ctx, "g-1", entity.UserProfilePatch{Phone: ptr("+56912345678")}))

	_, err = srv.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "google-token"})
	require.NoError(t, err)

	profile = firstOf(t, mustWatchProfile(t, f, "g-1"))
	assert.Equal(t, "+56912345678", profile.Phone)
}

func TestAuthService_SendPasswordReset(t *testing.T) {
	srv, _, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().SendPasswordReset(ctx, "ana@example.com").Return(nil)

	require.NoError(t, srv.SendPasswordReset(ctx, &usecase.PasswordResetInput{Email: "ana@example.com"}))
}

func TestAuthService_Authenticate(t *testing.T) {
	srv, _, identity := createTestAuthService(t)
	ctx := context.Background()

	identity.EXPECT().VerifyIDToken(ctx, "good").Return(&entity.Identity{UID: "u1"}, nil)
	identity.EXPECT().VerifyIDToken(ctx, "expired").Return(nil, errors.New("token expired"))

	ident, err := srv.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.UID)

	_, err = srv.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = srv.Authenticate(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
