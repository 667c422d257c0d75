package records

import (
	"context"

	"petcare/internal/domain/entity"
	"petcare/internal/domain/repository"
	"petcare/internal/errors"
	"petcare/internal/infra/persistence/model"
	"petcare/internal/stream"
)

// userProfileRepository implements repository.UserProfileRepository.
type userProfileRepository struct {
	store repository.DocumentStore
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(store repository.DocumentStore) repository.UserProfileRepository {
	return &userProfileRepository{store: store}
}

func (repo *userProfileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile.ID == "" {
		return errors.New("profile id is required")
	}

	if _, err := repo.store.CreateDocument(ctx, model.CollectionUsers, model.ProfileFields(profile), profile.ID); err != nil {
		return errors.Wrap(err, "failed to save profile")
	}

	return nil
}

func (repo *userProfileRepository) WatchProfile(ctx context.Context, uid string) (*stream.Stream[*entity.UserProfile], error) {
	src, err := repo.store.StreamDocument(ctx, model.UserPath(uid))
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch profile")
	}

	return stream.Map(src, func(doc *repository.Document) (*entity.UserProfile, error) {
		if doc == nil {
			return nil, nil
		}

		return model.ProfileFromDocument(*doc), nil
	}), nil
}

func (repo *userProfileRepository) UpdateProfile(ctx context.Context, uid string, patch entity.UserProfilePatch) error {
	updates := model.ProfileUpdates(patch)
	if len(updates) == 0 {
		return nil
	}

	if err := repo.store.UpdateDocument(ctx, model.UserPath(uid), updates...); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

func (repo *userProfileRepository) AddDeviceToken(ctx context.Context, uid, token string) error {
	if err := repo.store.UpdateDocument(ctx, model.UserPath(uid), repository.ArrayUnion(model.UserDeviceTokens, token)); err != nil {
		return errors.Wrap(err, "failed to add device token")
	}

	return nil
}

func (repo *userProfileRepository) RemoveDeviceTokens(ctx context.Context, uid string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	values := make([]any, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t)
	}

	if err := repo.store.UpdateDocument(ctx, model.UserPath(uid), repository.ArrayRemove(model.UserDeviceTokens, values...)); err != nil {
		return errors.Wrap(err, "failed to remove device tokens")
	}

	return nil
}
