package repository

import (
	"context"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// PetRepository manages pets and their photo gallery.
type PetRepository interface {
	// CreatePet stores a new pet and returns its ID.
	CreatePet(ctx context.Context, pet *entity.Pet) (string, error)

	// WatchPetsByOwner streams the owner's pets, newest registration first.
	WatchPetsByOwner(ctx context.Context, ownerID string) (*stream.Stream[[]*entity.Pet], error)

	// WatchPet streams a single pet; nil while it does not exist.
	WatchPet(ctx context.Context, petID string) (*stream.Stream[*entity.Pet], error)

	// UpdatePet applies a partial update.
	UpdatePet(ctx context.Context, petID string, patch entity.PetPatch) error

	// UploadGalleryPhotos uploads all files concurrently and returns their
	// download URLs in input order. Files uploaded before a failure are left in place.
	UploadGalleryPhotos(ctx context.Context, ownerID, petID string, files []entity.Upload) ([]string, error)

	// AppendGalleryURLs adds urls to the gallery with set-union semantics.
	AppendGalleryURLs(ctx context.Context, petID string, urls []string) error

	// RemoveGalleryURL removes url from the gallery with set-difference semantics.
	RemoveGalleryURL(ctx context.Context, petID, url string) error

	// DeleteBlobByURL deletes the stored object behind a download URL.
	DeleteBlobByURL(ctx context.Context, url string) error
}

// UserProfileRepository manages owner profiles keyed by UID.
type UserProfileRepository interface {
	// SaveProfile creates or replaces the profile at the profile's ID.
	SaveProfile(ctx context.Context, profile *entity.UserProfile) error

	// WatchProfile streams the profile; nil while it does not exist.
	WatchProfile(ctx context.Context, uid string) (*stream.Stream[*entity.UserProfile], error)

	// UpdateProfile applies a partial update.
	UpdateProfile(ctx context.Context, uid string, patch entity.UserProfilePatch) error

	// AddDeviceToken registers a push token with set-union semantics.
	AddDeviceToken(ctx context.Context, uid, token string) error

	// RemoveDeviceTokens drops tokens the push service no longer accepts.
	RemoveDeviceTokens(ctx context.Context, uid string, tokens []string) error
}
