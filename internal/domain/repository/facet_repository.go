package repository

import (
	"context"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
)

// FacetRepository produces grouped counts for filter option lists.
type FacetRepository interface {
	Provinces(ctx context.Context, language string) ([]domain.FacetCount, error)
	RecognitionTypes(ctx context.Context, language string) ([]domain.FacetCount, error)
	Jurisdictions(ctx context.Context, language string) ([]domain.FacetCount, error)

	// Themes splits the comma-delimited themes column into trimmed tokens
	// before grouping. The denormalized storage is fixed upstream, so the
	// normalization happens at query time.
	Themes(ctx context.Context, language string) ([]domain.FacetCount, error)
}

// StatsRepository computes the catalogue summary.
type StatsRepository interface {
	GetStatistics(ctx context.Context, language string) (*domain.Statistics, error)
}
