package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/config"
	httpDelivery "github.com/Gorskiz/historic-places-canada-2/internal/delivery/http"
	"github.com/Gorskiz/historic-places-canada-2/internal/delivery/http/handler"
	"github.com/Gorskiz/historic-places-canada-2/internal/delivery/http/middleware"
	"github.com/Gorskiz/historic-places-canada-2/internal/domain"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/errors"
	"github.com/Gorskiz/historic-places-canada-2/internal/ratelimit"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
)

// Function-field stubs stand in for the real Postgres repositories so the
// router, parameter coercion, and envelopes are tested end to end.

type stubPlaceRepo struct {
	listFn   func(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error)
	getFn    func(ctx context.Context, id int64, language string) (*domain.Place, error)
	imagesFn func(ctx context.Context, id int64) ([]*domain.Image, error)
	searchFn func(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error)
	mapFn    func(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error)
}

func (s *stubPlaceRepo) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s *stubPlaceRepo) GetByID(ctx context.Context, id int64, language string) (*domain.Place, error) {
	if s.getFn == nil {
		return nil, errors.ErrPlaceNotFound
	}
	return s.getFn(ctx, id, language)
}

func (s *stubPlaceRepo) ImagesByPlaceID(ctx context.Context, id int64) ([]*domain.Image, error) {
	if s.imagesFn == nil {
		return nil, nil
	}
	return s.imagesFn(ctx, id)
}

func (s *stubPlaceRepo) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error) {
	if s.searchFn == nil {
		return nil, 0, nil
	}
	return s.searchFn(ctx, filter)
}

func (s *stubPlaceRepo) Map(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error) {
	if s.mapFn == nil {
		return nil, nil
	}
	return s.mapFn(ctx, filter)
}

type stubFacetRepo struct {
	counts []domain.FacetCount
}

func (s *stubFacetRepo) Provinces(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return s.counts, nil
}

func (s *stubFacetRepo) RecognitionTypes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return s.counts, nil
}

func (s *stubFacetRepo) Jurisdictions(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return s.counts, nil
}

func (s *stubFacetRepo) Themes(ctx context.Context, language string) ([]domain.FacetCount, error) {
	return s.counts, nil
}

type stubStatsRepo struct {
	stats *domain.Statistics
}

func (s *stubStatsRepo) GetStatistics(ctx context.Context, language string) (*domain.Statistics, error) {
	return s.stats, nil
}

// stubCache always misses so every request reaches the repositories.
type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (stubCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (stubCache) Delete(ctx context.Context, key string) error { return nil }
func (stubCache) GetFacets(ctx context.Context, language string) (*domain.Facets, error) {
	return nil, nil
}
func (stubCache) SetFacets(ctx context.Context, language string, facets *domain.Facets, ttl time.Duration) error {
	return nil
}
func (stubCache) GetStats(ctx context.Context, language string) (*domain.Statistics, error) {
	return nil, nil
}
func (stubCache) SetStats(ctx context.Context, language string, stats *domain.Statistics, ttl time.Duration) error {
	return nil
}

func newTestApp(t *testing.T, placeRepo *stubPlaceRepo) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			StaticDir: t.TempDir(),
		},
		Cache: config.CacheConfig{
			FacetsCacheTTL: time.Hour,
			StatsCacheTTL:  time.Hour,
		},
		RateLimit: config.RateLimitConfig{
			GlobalPerWindow: 30,
			DataPerWindow:   10,
			Window:          time.Minute,
			Backend:         "memory",
		},
	}
	logger := zap.NewNop()
	cache := stubCache{}
	facetRepo := &stubFacetRepo{counts: []domain.FacetCount{{Value: "Ontario", Count: 3}}}
	statsRepo := &stubStatsRepo{stats: &domain.Statistics{TotalPlaces: 12000, Provinces: 13}}

	placeUC := usecase.NewPlaceUseCase(placeRepo, logger)
	searchUC := usecase.NewSearchUseCase(placeRepo, logger)
	facetUC := usecase.NewFacetUseCase(facetRepo, cache, logger, cfg.Cache.FacetsCacheTTL)
	statsUC := usecase.NewStatsUseCase(statsRepo, cache, logger, cfg.Cache.StatsCacheTTL)

	srv := httpDelivery.NewServer(
		cfg,
		logger,
		ratelimit.NewMemoryLimiter(),
		handler.NewPlaceHandler(placeUC, logger),
		handler.NewSearchHandler(searchUC, logger),
		handler.NewFacetHandler(facetUC, logger),
		handler.NewStatsHandler(statsUC, logger),
	)
	return srv.App()
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestServer_ListPlaces(t *testing.T) {
	province := "Ontario"
	repo := &stubPlaceRepo{
		listFn: func(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
			assert.Equal(t, "en", filter.Language)
			assert.Equal(t, "Ontario", filter.Province)
			return []*domain.PlaceSummary{
				{ID: 1, Name: "Casa Loma", Province: &province},
				{ID: 2, Name: "Fort York", Province: &province},
			}, nil
		},
	}
	app := newTestApp(t, repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/places?province=Ontario", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "10", resp.Header.Get(middleware.HeaderLimit))
	assert.Equal(t, "9", resp.Header.Get(middleware.HeaderRemaining))

	var body struct {
		Places []map[string]any `json:"places"`
		Count  int              `json:"count"`
	}
	decodeBody(t, resp, &body)
	assert.Len(t, body.Places, 2)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "Casa Loma", body.Places[0]["name"])
}

func TestServer_GetPlace_NotFound(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/places/9999", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "PLACE_NOT_FOUND", body.Error.Code)
}

func TestServer_GetPlace_NonNumericIDServesIndex(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/places/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message   string   `json:"message"`
		Endpoints []string `json:"endpoints"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Historic Places Canada API", body.Message)
	assert.NotEmpty(t, body.Endpoints)
}

func TestServer_UnknownAPIPathServesIndex(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Version string `json:"version"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "1.0.0", body.Version)
}

func TestServer_SearchCoercesParameters(t *testing.T) {
	var got domain.SearchFilter
	repo := &stubPlaceRepo{
		searchFn: func(ctx context.Context, filter domain.SearchFilter) ([]*domain.PlaceSummary, int64, error) {
			got = filter
			return []*domain.PlaceSummary{{ID: 3, Name: "Citadelle"}}, 42, nil
		},
	}
	app := newTestApp(t, repo)

	// A one-character query is ignored, an oversized limit is clamped, and a
	// negative offset resets to zero.
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=a&limit=1000&offset=-2&sort=bogus&lang=de", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", got.Query)
	assert.Equal(t, domain.MaxPageSize, got.Limit)
	assert.Equal(t, 0, got.Offset)
	assert.Equal(t, domain.SortNameAsc, got.Sort)
	assert.Equal(t, "en", got.Language)

	var body struct {
		Results []map[string]any `json:"results"`
		Count   int              `json:"count"`
		Total   int64            `json:"total"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, int64(42), body.Total)
}

func TestServer_MapPassesBounds(t *testing.T) {
	var got domain.MapFilter
	repo := &stubPlaceRepo{
		mapFn: func(ctx context.Context, filter domain.MapFilter) ([]*domain.MapPlace, error) {
			got = filter
			return []*domain.MapPlace{{ID: 9, Name: "Signal Hill", Latitude: 47.57, Longitude: -52.68}}, nil
		},
	}
	app := newTestApp(t, repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/map?bounds=45,-80,50,-70", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, got.Bounds)
	assert.Equal(t, 45.0, got.Bounds.MinLat)
	assert.Equal(t, -70.0, got.Bounds.MaxLng)

	var body struct {
		Places []map[string]any `json:"places"`
		Count  int              `json:"count"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Count)
}

func TestServer_Stats(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// Stats is not a bulk-data endpoint, so the global tier reports.
	assert.Equal(t, "30", resp.Header.Get(middleware.HeaderLimit))

	var body struct {
		TotalPlaces int64 `json:"totalPlaces"`
		Provinces   int64 `json:"provinces"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(12000), body.TotalPlaces)
	assert.Equal(t, int64(13), body.Provinces)
}

func TestServer_Filters(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/filters", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.Facets
	decodeBody(t, resp, &body)
	assert.Len(t, body.Provinces, 1)
	assert.Equal(t, "Ontario", body.Provinces[0].Value)
	assert.Len(t, body.Themes, 1)
}

func TestServer_PreflightBypassesRateLimit(t *testing.T) {
	app := newTestApp(t, &stubPlaceRepo{})

	req := httptest.NewRequest(http.MethodOptions, "/api/places", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get(middleware.HeaderLimit))
}

func TestServer_DataTierExhaustion(t *testing.T) {
	repo := &stubPlaceRepo{
		listFn: func(ctx context.Context, filter domain.PlaceFilter) ([]*domain.PlaceSummary, error) {
			return []*domain.PlaceSummary{}, nil
		},
	}
	app := newTestApp(t, repo)

	var last *http.Response
	for i := 0; i < 11; i++ {
		if last != nil {
			last.Body.Close()
		}
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/places", nil))
		require.NoError(t, err)
		last = resp
	}
	defer last.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, last.StatusCode)
	assert.Equal(t, "0", last.Header.Get(middleware.HeaderRemaining))
	assert.Equal(t, "60", last.Header.Get(middleware.HeaderRetryAfter))

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	decodeBody(t, last, &body)
	assert.Equal(t, "Rate limit exceeded", body.Error)
	assert.Equal(t, 60, body.RetryAfter)
}
