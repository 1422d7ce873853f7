package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain/repository"
)

// PlaceUseCase handles the catalogue list, single-record, and map reads.
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	logger    *zap.Logger
}

func NewPlaceUseCase(placeRepo repository.PlaceRepository, logger *zap.Logger) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (uc *PlaceUseCase) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
	places, err := uc.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []*domain.PlaceSummary{}
	}
	return places, nil
}

// Get returns a place with its images in display order. The not-found error
// from the repository passes through for the handler to map to a 404.
func (uc *PlaceUseCase) Get(ctx context.Context, id int64, language string) (*domain.Place, []*domain.Image, error) {
	place, err := uc.placeRepo.GetByID(ctx, id, language)
	if err != nil {
		return nil, nil, err
	}

	images, err := uc.placeRepo.ImagesByPlaceID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if images == nil {
		images = []*domain.Image{}
	}

	return place, images, nil
}

func (uc *PlaceUseCase) Map(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error) {
	places, err := uc.placeRepo.Map(ctx, filter)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []*domain.MapPlace{}
	}
	return places, nil
}
