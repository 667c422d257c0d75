package usecase

import (
	"context"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// ProfileUsecase defines the owner profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)
	WatchProfile(ctx context.Context, uid string) (*stream.Stream[*entity.UserProfile], error)
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) error

	// RegisterDevice adds a push notification token to the profile.
	RegisterDevice(ctx context.Context, uid string, input *RegisterDeviceInput) error

	// ContactCard returns the owner's vCard; ok is false when the profile lacks
	// a name or a phone.
	ContactCard(ctx context.Context, uid string) (card string, ok bool, err error)

	// ContactCardQR renders the vCard as a PNG QR code.
	ContactCardQR(ctx context.Context, uid string) ([]byte, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the profile fields to change.
type UpdateProfileInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=60"`
	Surname *string `json:"surname,omitempty" validate:"omitempty,min=2,max=60"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,mobilephone"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Region  *string `json:"region,omitempty" validate:"omitempty,max=60"`
}

// RegisterDeviceInput carries a push notification token.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}
