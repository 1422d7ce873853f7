package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
)

// MockPlaceRepository is a mock of repository.PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlaceSummary), args.Error(1)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64, language string) (*domain.Place, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) ImagesByPlaceID(ctx context.Context, id int64) ([]*domain.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Image), args.Error(1)
}

func (m *MockPlaceRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.PlaceSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaceRepository) Map(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MapPlace), args.Error(1)
}

// MockFacetRepository is a mock of repository.FacetRepository
type MockFacetRepository struct {
	mock.Mock
}

func (m *MockFacetRepository) Provinces(ctx context.Context, language string) ([]domain.FacetCount, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FacetCount), args.Error(1)
}

func (m *MockFacetRepository) RecognitionTypes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FacetCount), args.Error(1)
}

func (m *MockFacetRepository) Jurisdictions(ctx context.Context, language string) ([]domain.FacetCount, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FacetCount), args.Error(1)
}

func (m *MockFacetRepository) Themes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FacetCount), args.Error(1)
}

// MockStatsRepository is a mock of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context, language string) (*domain.Statistics, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockCacheRepository is a mock of repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetFacets(ctx context.Context, language string) (*domain.Facets, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Facets), args.Error(1)
}

func (m *MockCacheRepository) SetFacets(ctx context.Context, language string, facets *domain.Facets, ttl time.Duration) error {
	args := m.Called(ctx, language, facets, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context, language string) (*domain.Statistics, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, language string, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, language, stats, ttl)
	return args.Error(0)
}
