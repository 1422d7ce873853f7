package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
)

// FacetUseCase serves filter option lists, caching them per language since
// the catalogue only changes on re-ingestion.
type FacetUseCase struct {
	facetRepo repository.FacetRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewFacetUseCase(
	facetRepo repository.FacetRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *FacetUseCase {
	return &FacetUseCase{
		facetRepo: facetRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetFacets returns all four facet dimensions for one language.
func (uc *FacetUseCase) GetFacets(ctx context.Context, language string) (*domain.Facets, error) {
	cached, err := uc.cacheRepo.GetFacets(ctx, language)
	if err == nil && cached != nil {
		uc.logger.Debug("Facets fetched from cache", zap.String("language", language))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get facets from cache", zap.Error(err))
	}

	facets := &domain.Facets{}
	if facets.Provinces, err = uc.facetRepo.Provinces(ctx, language); err != nil {
		return nil, err
	}
	if facets.Types, err = uc.facetRepo.RecognitionTypes(ctx, language); err != nil {
		return nil, err
	}
	if facets.Jurisdictions, err = uc.facetRepo.Jurisdictions(ctx, language); err != nil {
		return nil, err
	}
	if facets.Themes, err = uc.facetRepo.Themes(ctx, language); err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetFacets(ctx, language, facets, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache facets", zap.Error(err))
		// Data is already loaded, a cold cache is not an error.
	}

	return facets, nil
}

// GetProvinces returns the province breakdown alone.
func (uc *FacetUseCase) GetProvinces(ctx context.Context, language string) ([]domain.FacetCount, error) {
	provinces, err := uc.facetRepo.Provinces(ctx, language)
	if err != nil {
		return nil, err
	}
	if provinces == nil {
		provinces = []domain.FacetCount{}
	}
	return provinces, nil
}
