package impl

import (
	"context"
	"log/slog"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/domain/view"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.UserProfileRepository
	qrCode      service.QRCodeService
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.UserProfileRepository,
	qrCode service.QRCodeService,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		qrCode:      qrCode,
		validator:   validator,
		logger:      logger,
	}
}

// GetProfile retrieves the owner's profile.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	srv.logger.Debug("Getting user profile", slog.String("uid", uid))

	profile, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*entity.UserProfile], error) {
		return srv.profileRepo.WatchProfile(ctx, uid)
	})
	if err != nil {
		return nil, storeError(err, "failed to get profile")
	}
	if profile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
	}

	return profile, nil
}

// WatchProfile streams the owner's profile.
func (srv *profileService) WatchProfile(ctx context.Context, uid string) (*stream.Stream[*entity.UserProfile], error) {
	s, err := srv.profileRepo.WatchProfile(ctx, uid)
	if err != nil {
		return nil, storeError(err, "failed to watch profile")
	}

	return s, nil
}

// UpdateProfile updates the owner's personal data.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) error {
	if input == nil {
		return domainerrors.NewValidationError("profile required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	srv.logger.Info("Updating user profile", slog.String("uid", uid))

	patch := entity.UserProfilePatch{
		Name:    input.Name,
		Surname: input.Surname,
		Phone:   input.Phone,
		Address: input.Address,
		Region:  input.Region,
	}

	return storeError(srv.profileRepo.UpdateProfile(ctx, uid, patch), "failed to update profile")
}

// RegisterDevice adds a push token to the owner's profile.
func (srv *profileService) RegisterDevice(ctx context.Context, uid string, input *usecase.RegisterDeviceInput) error {
	if input == nil {
		return domainerrors.NewValidationError("fcm_token required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	return storeError(srv.profileRepo.AddDeviceToken(ctx, uid, input.FCMToken), "failed to register device")
}

// ContactCard builds the lost-pet vCard from the profile.
func (srv *profileService) ContactCard(ctx context.Context, uid string) (string, bool, error) {
	profile, err := srv.GetProfile(ctx, uid)
	if err != nil {
		return "", false, err
	}

	card, ok := view.ContactCard(profile)

	return card, ok, nil
}

// ContactCardQR renders the vCard as a PNG QR code.
func (srv *profileService) ContactCardQR(ctx context.Context, uid string) ([]byte, error) {
	card, ok, err := srv.ContactCard(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "profile lacks name or phone")
	}

	png, err := srv.qrCode.Encode(card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contact card")
	}

	return png, nil
}
