package repository

import (
	"context"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
)

// PlaceRepository executes the catalogue queries against the relational store.
type PlaceRepository interface {
	// List returns the filtered, paginated catalogue page. Only places
	// with at least one image are listed.
	List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error)

	// GetByID looks up a single place by (id, language).
	// Returns errors.ErrPlaceNotFound on a miss.
	GetByID(ctx context.Context, id int64, language string) (*domain.Place, error)

	// ImagesByPlaceID returns a place's images in display order.
	ImagesByPlaceID(ctx context.Context, id int64) ([]*domain.Image, error)

	// Search returns one page of matches plus the total match count
	// independent of pagination.
	Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error)

	// Map returns coordinate-bearing places, optionally bounded, capped
	// at domain.MapRowCap rows.
	Map(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error)
}
