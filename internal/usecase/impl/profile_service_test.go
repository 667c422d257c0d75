package impl

import (
	"context"
	"strings"
	"testing"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	mockSvc "petcare/internal/mocks/service"
	"petcare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *fixtures, *mockSvc.MockQRCodeService) {
	f := newFixtures(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return NewProfileService(f.profiles, qr, f.validator, f.logger), f, qr
}

func TestProfileService_GetProfile(t *testing.T) {
	srv, f, _ := createTestProfileService(t)
	f.seedProfile(t, &entity.UserProfile{ID: "u1", Name: "Ana", Phone: "+56912345678"})

	profile, err := srv.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)

	_, err = srv.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	srv, f, _ := createTestProfileService(t)
	ctx := context.Background()
	f.seedProfile(t, &entity.UserProfile{ID: "u1", Name: "Ana", Region: "Biobío"})

	require.NoError(t, srv.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Phone: ptr("+56912345678")}))

	profile, err := srv.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "+56912345678", profile.Phone)
	assert.Equal(t, "Biobío", profile.Region)

	err = srv.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Phone: ptr("12345")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = srv.UpdateProfile(ctx, "missing", &usecase.UpdateProfileInput{Name: ptr("Ana")})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_RegisterDevice_Idempotent(t *testing.T) {
	srv, f, _ := createTestProfileService(t)
	ctx := context.Background()
	f.seedProfile(t, &entity.UserProfile{ID: "u1", Name: "Ana"})

	require.NoError(t, srv.RegisterDevice(ctx, "u1", &usecase.RegisterDeviceInput{FCMToken: "tok"}))
	require.NoError(t, srv.RegisterDevice(ctx, "u1", &usecase.RegisterDeviceInput{FCMToken: "tok"}))

	profile, err := srv.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok"}, profile.DeviceTokens)

	err = srv.RegisterDevice(ctx, "u1", &usecase.RegisterDeviceInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_ContactCard(t *testing.T) {
	srv, f, _ := createTestProfileService(t)
	f.seedProfile(t, &entity.UserProfile{ID: "u1", Name: "Ana", Surname: "Pérez", Phone: "+56912345678"})
	f.seedProfile(t, &entity.UserProfile{ID: "u2", Name: "Sin teléfono"})

	card, ok, err := srv.ContactCard(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, card, "TEL;TYPE=CELL:+56912345678")

	_, ok, err = srv.ContactCard(context.Background(), "u2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileService_ContactCardQR(t *testing.T) {
	srv, f, qr := createTestProfileService(t)
	f.seedProfile(t, &entity.UserProfile{ID: "u1", Name: "Ana", Phone: "+56912345678"})
	f.seedProfile(t, &entity.UserProfile{ID: "u2", Name: "Sin teléfono"})

	qr.EXPECT().Encode(mock.MatchedBy(func(card string) bool {
		return strings.HasPrefix(card, "BEGIN:VCARD") && strings.Contains(card, "FN:Ana")
	})).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.ContactCardQR(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)

	_, err = srv.ContactCardQR(context.Background(), "u2")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
