package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetStatistics runs each aggregate independently. A failed aggregate is
// reported as zero instead of failing the whole summary.
func (r *statsRepository) GetStatistics(ctx context.Context, language string) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	stats.TotalPlaces = r.scalar(ctx,
		`SELECT COUNT(*) FROM places WHERE language = $1`, language)

	stats.PlacesWithCoordinates = r.scalar(ctx,
		`SELECT COUNT(*) FROM places WHERE language = $1 AND latitude IS NOT NULL`, language)

	stats.Provinces = r.scalar(ctx,
		`SELECT COUNT(DISTINCT province) FROM places WHERE language = $1`, language)

	// Image count deliberately ignores language: images hang off the place
	// identifier, which both language rows share.
	stats.TotalImages = r.scalar(ctx,
		`SELECT COUNT(*) FROM images`)

	stats.Themes = r.scalar(ctx, `
		SELECT COUNT(DISTINCT btrim(t.theme))
		FROM places p,
		     LATERAL unnest(string_to_array(p.themes, ',')) AS t(theme)
		WHERE p.language = $1
		  AND p.themes IS NOT NULL AND p.themes <> ''
		  AND btrim(t.theme) <> ''`, language)

	return stats, nil
}

func (r *statsRepository) scalar(ctx context.Context, query string, args ...interface{}) int64 {
	var n int64
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		r.logger.Warn("Statistics aggregate failed, defaulting to zero",
			zap.String("query", query), zap.Error(err))
		return 0
	}
	return n
}
