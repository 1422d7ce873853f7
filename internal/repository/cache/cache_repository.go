package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/metrics"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	metrics.CacheHitsTotal.Inc()
	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) GetFacets(ctx context.Context, language string) (*domain.Facets, error) {
	data, err := r.Get(ctx, facetsKey(language))
	if err != nil || data == nil {
		return nil, err
	}

	var facets domain.Facets
	if err := json.Unmarshal(data, &facets); err != nil {
		r.logger.Error("Failed to unmarshal cached facets", zap.Error(err))
		return nil, fmt.Errorf("unmarshal facets: %w", err)
	}

	return &facets, nil
}

func (r *cacheRepository) SetFacets(ctx context.Context, language string, facets *domain.Facets, ttl time.Duration) error {
	data, err := json.Marshal(facets)
	if err != nil {
		return fmt.Errorf("marshal facets: %w", err)
	}
	return r.Set(ctx, facetsKey(language), data, ttl)
}

func (r *cacheRepository) GetStats(ctx context.Context, language string) (*domain.Statistics, error) {
	data, err := r.Get(ctx, statsKey(language))
	if err != nil || data == nil {
		return nil, err
	}

	var stats domain.Statistics
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal cached stats", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, language string, stats *domain.Statistics, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	return r.Set(ctx, statsKey(language), data, ttl)
}

func facetsKey(language string) string { return "facets:" + language }
func statsKey(language string) string  { return "stats:" + language }
