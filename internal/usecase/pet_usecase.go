// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"petcare/internal/domain/entity"
	"petcare/internal/stream"
)

// PetUsecase defines the pet registration and gallery operations. Every
// operation is scoped to the pet's owner.
type PetUsecase interface {
	CreatePet(ctx context.Context, ownerID string, input *CreatePetInput) (*entity.Pet, error)
	ListPets(ctx context.Context, ownerID string) ([]*entity.Pet, error)
	WatchPets(ctx context.Context, ownerID string) (*stream.Stream[[]*entity.Pet], error)
	GetPet(ctx context.Context, ownerID, petID string) (*entity.Pet, error)
	WatchPet(ctx context.Context, ownerID, petID string) (*stream.Stream[*entity.Pet], error)
	UpdatePet(ctx context.Context, ownerID, petID string, input *UpdatePetInput) error

	// AddGalleryPhotos uploads files and appends their URLs to the gallery.
	AddGalleryPhotos(ctx context.Context, ownerID, petID string, files []entity.Upload) ([]string, error)

	// RemoveGalleryPhoto removes url from the gallery, then deletes the file.
	RemoveGalleryPhoto(ctx context.Context, ownerID, petID, url string) error
}

// --- Input DTOs ---

// CreatePetInput defines the data required to register a pet.
type CreatePetInput struct {
	Name         string     `json:"name" validate:"required,max=60"`
	Species      string     `json:"species" validate:"required,max=40"`
	Breed        string     `json:"breed" validate:"max=60"`
	Sex          string     `json:"sex" validate:"omitempty,oneof=macho hembra"`
	Color        string     `json:"color" validate:"max=40"`
	ChipNumber   string     `json:"chipNumber" validate:"omitempty,numeric,max=20"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Neutered     bool       `json:"neutered"`
	PhotoURL     string     `json:"photoUrl" validate:"omitempty,url"`
	BehaviorTags []string   `json:"behaviorTags" validate:"max=20,dive,required,max=40"`
	Notes        string     `json:"notes" validate:"max=2000"`
}

// UpdatePetInput defines the pet fields to change; nil fields are kept.
type UpdatePetInput struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Species      *string    `json:"species,omitempty" validate:"omitempty,min=1,max=40"`
	Breed        *string    `json:"breed,omitempty" validate:"omitempty,max=60"`
	Sex          *string    `json:"sex,omitempty" validate:"omitempty,oneof=macho hembra"`
	Color        *string    `json:"color,omitempty" validate:"omitempty,max=40"`
	ChipNumber   *string    `json:"chipNumber,omitempty" validate:"omitempty,numeric,max=20"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Neutered     *bool      `json:"neutered,omitempty"`
	PhotoURL     *string    `json:"photoUrl,omitempty" validate:"omitempty,url"`
	BehaviorTags *[]string  `json:"behaviorTags,omitempty" validate:"omitempty,max=20,dive,required,max=40"`
	Notes        *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
