package service

import (
	"context"

	"petcare/internal/domain/entity"
)

// PlacesService looks up points of interest around a coordinate.
type PlacesService interface {
	// Nearby returns places of category around (lat, lng), nearest first.
	Nearby(ctx context.Context, lat, lng float64, category entity.PlaceCategory) ([]entity.Place, error)
}
