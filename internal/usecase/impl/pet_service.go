package impl

import (
	"context"
	"log/slog"
	"slices"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/stream"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// maxGalleryBatch limits the files of one gallery upload.
const maxGalleryBatch = 10

// petService implements the PetUsecase interface.
type petService struct {
	petRepo   repository.PetRepository
	access    *petAccess
	validator *validation.Validator
	logger    *slog.Logger
	now       Clock
}

// NewPetService is the constructor for petService.
func NewPetService(
	petRepo repository.PetRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.PetUsecase {
	return &petService{
		petRepo:   petRepo,
		access:    &petAccess{petRepo: petRepo},
		validator: validator,
		logger:    logger,
		now:       defaultClock,
	}
}

// CreatePet validates the input and registers the pet for ownerID.
func (srv *petService) CreatePet(ctx context.Context, ownerID string, input *usecase.CreatePetInput) (*entity.Pet, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("pet required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.BirthDate != nil && input.BirthDate.After(srv.now()) {
		return nil, domainerrors.NewValidationError("BirthDate future")
	}

	pet := &entity.Pet{
		OwnerID:      ownerID,
		Name:         input.Name,
		Species:      input.Species,
		Breed:        input.Breed,
		Sex:          input.Sex,
		Color:        input.Color,
		ChipNumber:   input.ChipNumber,
		BirthDate:    input.BirthDate,
		Neutered:     input.Neutered,
		PhotoURL:     input.PhotoURL,
		BehaviorTags: input.BehaviorTags,
		Notes:        input.Notes,
	}

	id, err := srv.petRepo.CreatePet(ctx, pet)
	if err != nil {
		return nil, storeError(err, "failed to create pet")
	}
	pet.ID = id

	srv.logger.Info("Pet registered", slog.String("petID", id), slog.String("ownerID", ownerID))

	return pet, nil
}

// ListPets returns the owner's pets at this moment.
func (srv *petService) ListPets(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	pets, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[[]*entity.Pet], error) {
		return srv.petRepo.WatchPetsByOwner(ctx, ownerID)
	})
	if err != nil {
		return nil, storeError(err, "failed to list pets")
	}

	return pets, nil
}

// WatchPets streams the owner's pets, newest first.
func (srv *petService) WatchPets(ctx context.Context, ownerID string) (*stream.Stream[[]*entity.Pet], error) {
	s, err := srv.petRepo.WatchPetsByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(err, "failed to watch pets")
	}

	return s, nil
}

// GetPet returns one of the owner's pets.
func (srv *petService) GetPet(ctx context.Context, ownerID, petID string) (*entity.Pet, error) {
	return srv.access.ownedPet(ctx, ownerID, petID)
}

// WatchPet streams one of the owner's pets after checking ownership once.
func (srv *petService) WatchPet(ctx context.Context, ownerID, petID string) (*stream.Stream[*entity.Pet], error) {
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	s, err := srv.petRepo.WatchPet(ctx, petID)
	if err != nil {
		return nil, storeError(err, "failed to watch pet")
	}

	return s, nil
}

// UpdatePet applies a partial update to one of the owner's pets.
func (srv *petService) UpdatePet(ctx context.Context, ownerID, petID string, input *usecase.UpdatePetInput) error {
	if input == nil {
		return domainerrors.NewValidationError("pet required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}
	if input.BirthDate != nil && input.BirthDate.After(srv.now()) {
		return domainerrors.NewValidationError("BirthDate future")
	}
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return err
	}

	patch := entity.PetPatch{
		Name:         input.Name,
		Species:      input.Species,
		Breed:        input.Breed,
		Sex:          input.Sex,
		Color:        input.Color,
		ChipNumber:   input.ChipNumber,
		BirthDate:    input.BirthDate,
		Neutered:     input.Neutered,
		PhotoURL:     input.PhotoURL,
		BehaviorTags: input.BehaviorTags,
		Notes:        input.Notes,
	}

	return storeError(srv.petRepo.UpdatePet(ctx, petID, patch), "failed to update pet")
}

// AddGalleryPhotos uploads the files, then appends their URLs to the gallery.
// Nothing is rolled back when a later step fails.
func (srv *petService) AddGalleryPhotos(ctx context.Context, ownerID, petID string, files []entity.Upload) ([]string, error) {
	if len(files) == 0 || len(files) > maxGalleryBatch {
		return nil, domainerrors.NewValidationError("files between 1 and 10")
	}
	for _, f := range files {
		if len(f.Data) == 0 {
			return nil, domainerrors.NewValidationError("file " + f.Name + " empty")
		}
	}
	if _, err := srv.access.ownedPet(ctx, ownerID, petID); err != nil {
		return nil, err
	}

	urls, err := srv.petRepo.UploadGalleryPhotos(ctx, ownerID, petID, files)
	if err != nil {
		srv.logger.Warn("Gallery upload failed", slog.String("petID", petID), slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	if err := srv.petRepo.AppendGalleryURLs(ctx, petID, urls); err != nil {
		srv.logger.Warn("Uploaded photos left out of the gallery", slog.String("petID", petID), slog.Int("count", len(urls)))

		return nil, domainerrors.NewPartialFailure("add gallery photos", urls, storeError(err, "failed to append gallery urls"))
	}

	return urls, nil
}

// RemoveGalleryPhoto removes url from the gallery, then deletes the file. Only
// a url listed in the pet's gallery is touched. A failed file deletion does not
// restore the gallery entry.
func (srv *petService) RemoveGalleryPhoto(ctx context.Context, ownerID, petID, url string) error {
	if url == "" {
		return domainerrors.NewValidationError("url required")
	}
	pet, err := srv.access.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return err
	}
	if !slices.Contains(pet.Gallery, url) {
		return errors.Wrap(domainerrors.ErrNotFound, "photo not in gallery")
	}

	if err := srv.petRepo.RemoveGalleryURL(ctx, petID, url); err != nil {
		return storeError(err, "failed to remove gallery url")
	}

	if err := srv.petRepo.DeleteBlobByURL(ctx, url); err != nil {
		srv.logger.Warn("Gallery file left in storage", slog.String("url", url), slog.Any("error", err))

		return domainerrors.NewPartialFailure("remove gallery photo", []string{url}, err)
	}

	return nil
}
