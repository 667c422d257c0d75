// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"time"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/stream"
)

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

func defaultClock() time.Time { return time.Now() }

// storeError translates document store failures into domain errors.
func storeError(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDocumentNotFound):
		return errors.Wrap(domainerrors.ErrNotFound, message)
	case errors.Is(err, repository.ErrStoreUnavailable):
		return errors.Wrap(domainerrors.ErrStoreUnavailable, message)
	default:
		return errors.Wrap(err, message)
	}
}

// snapshot opens a live stream and returns its first emission.
func snapshot[T any](ctx context.Context, open func(context.Context) (*stream.Stream[T], error)) (T, error) {
	var zero T

	s, err := open(ctx)
	if err != nil {
		return zero, err
	}

	v, err := stream.First(ctx, s)
	if err != nil {
		return zero, errors.Wrap(err, "failed to read snapshot")
	}

	return v, nil
}

// petAccess resolves pets on behalf of their owner.
type petAccess struct {
	petRepo repository.PetRepository
}

// ownedPet returns the pet when it exists and belongs to ownerID.
func (a *petAccess) ownedPet(ctx context.Context, ownerID, petID string) (*entity.Pet, error) {
	if petID == "" {
		return nil, domainerrors.NewValidationError("petID required")
	}

	pet, err := snapshot(ctx, func(ctx context.Context) (*stream.Stream[*entity.Pet], error) {
		return a.petRepo.WatchPet(ctx, petID)
	})
	if err != nil {
		return nil, storeError(err, "failed to load pet")
	}
	if pet == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "pet not found")
	}
	if pet.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "pet belongs to another owner")
	}

	return pet, nil
}
