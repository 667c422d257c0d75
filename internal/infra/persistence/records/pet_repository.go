package records

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/infra/persistence/model"
	"petcare/internal/stream"

	"golang.org/x/sync/errgroup"
)

// petRepository implements repository.PetRepository.
type petRepository struct {
	store repository.DocumentStore
	blobs service.BlobStorage
	now   func() time.Time
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(store repository.DocumentStore, blobs service.BlobStorage) repository.PetRepository {
	return &petRepository{store: store, blobs: blobs, now: time.Now}
}

// CreatePet stores a new pet under the pets collection.
func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) (string, error) {
	id, err := repo.store.CreateDocument(ctx, model.CollectionPets, model.PetFields(pet), "")
	if err != nil {
		return "", errors.Wrap(err, "failed to create pet")
	}

	return id, nil
}

// WatchPetsByOwner streams the owner's pets, newest first.
func (repo *petRepository) WatchPetsByOwner(ctx context.Context, ownerID string) (*stream.Stream[[]*entity.Pet], error) {
	src, err := repo.store.StreamCollection(ctx, repository.Query{
		Collection: model.CollectionPets,
		Where:      []repository.Filter{{Field: model.PetOwnerID, Value: ownerID}},
		OrderBy:    repository.FieldCreatedAt,
		Descending: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch pets by owner")
	}

	return stream.Map(src, func(docs []repository.Document) ([]*entity.Pet, error) {
		pets := make([]*entity.Pet, 0, len(docs))
		for _, d := range docs {
			pets = append(pets, model.PetFromDocument(d))
		}

		return pets, nil
	}), nil
}

// WatchPet streams a single pet.
func (repo *petRepository) WatchPet(ctx context.Context, petID string) (*stream.Stream[*entity.Pet], error) {
	src, err := repo.store.StreamDocument(ctx, model.PetPath(petID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch pet")
	}

	return stream.Map(src, func(doc *repository.Document) (*entity.Pet, error) {
		if doc == nil {
			return nil, nil
		}

		return model.PetFromDocument(*doc), nil
	}), nil
}

// UpdatePet applies a partial update.
func (repo *petRepository) UpdatePet(ctx context.Context, petID string, patch entity.PetPatch) error {
	updates := model.PetUpdates(patch)
	if len(updates) == 0 {
		return nil
	}

	if err := repo.store.UpdateDocument(ctx, model.PetPath(petID), updates...); err != nil {
		return errors.Wrap(err, "failed to update pet")
	}

	return nil
}

// UploadGalleryPhotos starts every upload at once and waits for all of them.
// On failure the URLs of the files that did upload are carried by a
// PartialFailureError; those files are not removed.
func (repo *petRepository) UploadGalleryPhotos(ctx context.Context, ownerID, petID string, files []entity.Upload) ([]string, error) {
	urls := make([]string, len(files))
	stamp := repo.now().UnixMilli()

	var g errgroup.Group
	for i, f := range files {
		key := GalleryKey(ownerID, petID, stamp, i, f.Name)
		g.Go(func() error {
			u, err := repo.blobs.Upload(ctx, key, bytes.NewReader(f.Data), f.ContentType)
			if err != nil {
				return err
			}
			urls[i] = u

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		completed := make([]string, 0, len(urls))
		for _, u := range urls {
			if u != "" {
				completed = append(completed, u)
			}
		}

		return nil, domainerrors.NewPartialFailure("upload gallery photos", completed, err)
	}

	return urls, nil
}

// GalleryKey builds the object key of a gallery photo. The timestamp and batch
// index keep names from colliding.
func GalleryKey(ownerID, petID string, unixMilli int64, index int, name string) string {
	return fmt.Sprintf("pets/%s/%s/gallery/%d-%d-%s", ownerID, petID, unixMilli, index, path.Base("/"+name))
}

// AppendGalleryURLs adds urls with set-union semantics.
func (repo *petRepository) AppendGalleryURLs(ctx context.Context, petID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	values := make([]any, len(urls))
	for i, u := range urls {
		values[i] = u
	}

	if err := repo.store.UpdateDocument(ctx, model.PetPath(petID), repository.ArrayUnion(model.PetGallery, values...)); err != nil {
		return errors.Wrap(err, "failed to append gallery urls")
	}

	return nil
}

// RemoveGalleryURL removes url with set-difference semantics.
func (repo *petRepository) RemoveGalleryURL(ctx context.Context, petID, url string) error {
	if err := repo.store.UpdateDocument(ctx, model.PetPath(petID), repository.ArrayRemove(model.PetGallery, url)); err != nil {
		return errors.Wrap(err, "failed to remove gallery url")
	}

	return nil
}

// DeleteBlobByURL deletes the object behind url.
func (repo *petRepository) DeleteBlobByURL(ctx context.Context, url string) error {
	if err := repo.blobs.DeleteByURL(ctx, url); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
