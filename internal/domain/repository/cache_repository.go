package repository

import (
	"context"
	"time"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
)

// CacheRepository is the response cache for facet and stats payloads.
// A nil result with nil error is a cache miss.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetFacets(ctx context.Context, language string) (*domain.Facets, error)
	SetFacets(ctx context.Context, language string, facets *domain.Facets, ttl time.Duration) error

	GetStats(ctx context.Context, language string) (*domain.Statistics, error)
	SetStats(ctx context.Context, language string, stats *domain.Statistics, ttl time.Duration) error
}
