package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/errors"
)

type facetRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFacetRepository(db *DB) repository.FacetRepository {
	return &facetRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *facetRepository) Provinces(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return r.groupedCounts(ctx, "province", language)
}

func (r *facetRepository) RecognitionTypes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return r.groupedCounts(ctx, "recognition_type", language)
}

func (r *facetRepository) Jurisdictions(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return r.groupedCounts(ctx, "jurisdiction", language)
}

// groupedCounts runs the shared single-column facet query. The column name
// comes from the fixed set of callers above, never from user input.
func (r *facetRepository) groupedCounts(ctx context.Context, column, language string) ([]domain.FacetCount, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s AS value, COUNT(*) AS count
		FROM places
		WHERE language = $1 AND %[1]s IS NOT NULL
		GROUP BY %[1]s
		ORDER BY %[1]s`, column)

	var counts []domain.FacetCount
	if err := r.db.SelectContext(ctx, &counts, query, language); err != nil {
		r.logger.Error("Failed to load facet counts", zap.String("column", column), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}

// Themes normalizes the comma-delimited themes column into trimmed tokens at
// query time. The denormalized storage shape is fixed upstream.
func (r *facetRepository) Themes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	query := `
		SELECT btrim(t.theme) AS value, COUNT(*) AS count
		FROM places p,
		     LATERAL unnest(string_to_array(p.themes, ',')) AS t(theme)
		WHERE p.language = $1
		  AND p.themes IS NOT NULL AND p.themes <> ''
		  AND btrim(t.theme) <> ''
		GROUP BY btrim(t.theme)
		ORDER BY count DESC, value`

	var counts []domain.FacetCount
	if err := r.db.SelectContext(ctx, &counts, query, language); err != nil {
		r.logger.Error("Failed to load theme facet", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return counts, nil
}
