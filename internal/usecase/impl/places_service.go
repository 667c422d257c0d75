package impl

import (
	"context"
	"log/slog"

	"petcare/internal/domain/entity"
	domainerrors "petcare/internal/domain/errors"
	"petcare/internal/domain/service"
	"petcare/internal/errors"
	"petcare/internal/usecase"
	"petcare/internal/validation"
)

// placesService implements the PlacesUsecase interface.
type placesService struct {
	places    service.PlacesService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewPlacesService is the constructor for placesService.
func NewPlacesService(places service.PlacesService, validator *validation.Validator, logger *slog.Logger) usecase.PlacesUsecase {
	return &placesService{
		places:    places,
		validator: validator,
		logger:    logger,
	}
}

// Nearby returns places around the coordinate, nearest first. The category
// defaults to veterinary care.
func (srv *placesService) Nearby(ctx context.Context, input *usecase.NearbyInput) ([]entity.Place, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("coordinates required")
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	category := entity.PlaceCategory(input.Category)
	if category == "" {
		category = entity.PlaceVeterinary
	}

	places, err := srv.places.Nearby(ctx, input.Latitude, input.Longitude, category)
	if err != nil {
		srv.logger.Error("Places lookup failed",
			slog.String("category", string(category)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed, err.Error())
	}

	return places, nil
}
