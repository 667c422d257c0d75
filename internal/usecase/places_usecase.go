package usecase

import (
	"context"

	"petcare/internal/domain/entity"
)

// PlacesUsecase finds pet services near the user.
type PlacesUsecase interface {
	Nearby(ctx context.Context, input *NearbyInput) ([]entity.Place, error)
}

// NearbyInput defines a nearby search.
type NearbyInput struct {
	Latitude  float64 `query:"lat" json:"lat" validate:"latitude"`
	Longitude float64 `query:"lng" json:"lng" validate:"longitude"`
	Category  string  `query:"category" json:"category" validate:"omitempty,oneof=veterinary_care pet_store park"`
}
