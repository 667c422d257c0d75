package impl

import (
	"context"
	"testing"
	"time"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	mockSvc "petcare/internal/mocks/service"
	"petcare/internal/stream"
	"petcare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (*sessionService, *mockSvc.MockIdentityProvider) {
	identity := mockSvc.NewMockIdentityProvider(t)
	srv := NewSessionService(identity, newFixtures(t).validator, testLogger()).(*sessionService)

	return srv, identity
}

func TestSessionService_AuthState_EmitsCurrentThenChanges(t *testing.T) {
	srv, identity := createTestSessionService(t)
	ctx := context.Background()
	ana := &entity.Identity{UID: "u1", Email: "ana@example.com"}

	state := srv.AuthState()
	defer state.Stop()

	assert.Nil(t, nextOf(t, state, func(*entity.Identity) bool { return true }))

	identity.EXPECT().SignIn(ctx, "ana@example.com", "Secreta#2024").Return(ana, nil)
	_, err := srv.SignIn(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "Secreta#2024"})
	require.NoError(t, err)

	got := nextOf(t, state, func(i *entity.Identity) bool { return i != nil })
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, ana, srv.CurrentIdentity())

	require.NoError(t, srv.SignOut(ctx))
	assert.Nil(t, nextOf(t, state, func(i *entity.Identity) bool { return i == nil }))
	assert.Nil(t, srv.CurrentIdentity())
}

func TestSessionService_AuthState_StopUnsubscribes(t *testing.T) {
	srv, _ := createTestSessionService(t)

	a := srv.AuthState()
	b := srv.AuthState()
	assert.Len(t, srv.subs, 2)

	a.Stop()
	assert.Len(t, srv.subs, 1)

	_, err := stream.First(context.Background(), b)
	require.NoError(t, err)
	assert.Empty(t, srv.subs)
}

func TestSessionService_SignInFailureKeepsState(t *testing.T) {
	srv, identity := createTestSessionService(t)
	ctx := context.Background()

	identity.EXPECT().SignInWithGoogle(ctx, "bad").Return(nil, domainerrors.ErrAuthFailed)

	_, err := srv.SignInWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
	assert.Nil(t, srv.CurrentIdentity())

	_, err = srv.SignIn(ctx, &usecase.LoginInput{Email: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthGuard_CanEnter_SignedIn(t *testing.T) {
	navigator := mockSvc.NewMockNavigator(t)
	guard := NewAuthGuard(navigator, testLogger())

	state := stream.Of(&entity.Identity{UID: "u1"})
	ok, err := guard.CanEnter(context.Background(), state)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthGuard_CanEnter_SignedOutRedirects(t *testing.T) {
	navigator := mockSvc.NewMockNavigator(t)
	guard := NewAuthGuard(navigator, testLogger())
	ctx := context.Background()

	navigator.EXPECT().Navigate(ctx, usecase.LoginRoute).Return(nil).Twice()

	ok, err := guard.CanEnter(ctx, stream.Of[*entity.Identity](nil))
	require.NoError(t, err)
	assert.False(t, ok)

	// A stream that ends without emitting counts as signed out.
	ok, err = guard.CanEnter(ctx, stream.Of[*entity.Identity]())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthGuard_CanEnter_ReleasesSubscription(t *testing.T) {
	srv, _ := createTestSessionService(t)
	navigator := mockSvc.NewMockNavigator(t)
	guard := NewAuthGuard(navigator, testLogger())
	ctx := context.Background()

	navigator.EXPECT().Navigate(ctx, usecase.LoginRoute).Return(nil)

	ok, err := guard.CanEnter(ctx, srv.AuthState())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, srv.subs)
}

func TestAuthGuard_CanEnter_StreamFailure(t *testing.T) {
	navigator := mockSvc.NewMockNavigator(t)
	guard := NewAuthGuard(navigator, testLogger())

	state := stream.New[*entity.Identity](nil)
	state.Fail(errors.New("auth backend down"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ok, err := guard.CanEnter(ctx, state)
	assert.Error(t, err)
	assert.False(t, ok)
}
