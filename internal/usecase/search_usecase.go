package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
)

// SearchUseCase handles the unified search endpoint.
type SearchUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewSearchUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *SearchUseCase {
	return &SearchUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// Search returns one page of results plus the total match count. The filter
// arrives already normalized; an empty filter set is valid and returns the
// whole (paginated) population for the language.
func (uc *SearchUseCase) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error) {
	results, total, err := uc.placeRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if results == nil {
		results = []*domain.PlaceSummary{}
	}

	uc.logger.Debug("Search executed",
		zap.String("query", filter.Query),
		zap.String("language", filter.Language),
		zap.Int64("total", total),
		zap.Int("page_size", len(results)),
	)

	return results, total, nil
}
