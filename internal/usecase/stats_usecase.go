package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
)

// StatsUseCase serves the catalogue summary with a cache-aside layer.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context, language string) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx, language)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache", zap.String("language", language))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	stats, err := uc.statsRepo.GetStatistics(ctx, language)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, language, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
	}

	return stats, nil
}
