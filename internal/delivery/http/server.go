package http

import (
	"context"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Gorskiz/historic-places-canada-2/internal/config"
	"github.com/Gorskiz/historic-places-canada-2/internal/delivery/http/handler"
	"github.com/Gorskiz/historic-places-canada-2/internal/delivery/http/middleware"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/metrics"
	"github.com/Gorskiz/historic-places-canada-2/internal/ratelimit"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase/dto"
)

const apiVersion = "1.0.0"

// Server is the Fiber HTTP server fronting the catalogue.
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	limiter ratelimit.Limiter

	placeHandler  *handler.PlaceHandler
	searchHandler *handler.SearchHandler
	facetHandler  *handler.FacetHandler
	statsHandler  *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	limiter ratelimit.Limiter,
	placeHandler *handler.PlaceHandler,
	searchHandler *handler.SearchHandler,
	facetHandler *handler.FacetHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Historic Places Canada API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		limiter:       limiter,
		placeHandler:  placeHandler,
		searchHandler: searchHandler,
		facetHandler:  facetHandler,
		statsHandler:  statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	// CORS answers OPTIONS preflight before the rate limiter runs.
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus metrics
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Every API route sits behind the two-tier rate limiter.
	api := s.app.Group("/api", middleware.RateLimit(s.limiter, s.config.RateLimit, s.logger))

	api.Get("/places", s.placeHandler.List)
	api.Get("/places/:id", s.placeHandler.GetByID)
	api.Get("/search", s.searchHandler.Search)
	api.Get("/filters", s.facetHandler.GetFilters)
	api.Get("/map", s.placeHandler.Map)
	api.Get("/provinces", s.facetHandler.GetProvinces)
	api.Get("/stats", s.statsHandler.GetStatistics)

	// The API base path is itself a resource: any unmatched /api path gets
	// the endpoint index, not a 404.
	api.Get("/*", s.apiIndex)

	// Static frontend with SPA fallback: a missing asset serves the root
	// document so client-side routes survive a reload.
	s.app.Static("/", s.config.Server.StaticDir)
	s.app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return fiber.ErrNotFound
		}
		return c.SendFile(filepath.Join(s.config.Server.StaticDir, "index.html"))
	})
}

func (s *Server) apiIndex(c *fiber.Ctx) error {
	return c.JSON(dto.APIIndexResponse{
		Message: "Historic Places Canada API",
		Version: apiVersion,
		Endpoints: []string{
			"GET /api/places?lang=en&province=Ontario&limit=50&offset=0",
			"GET /api/places/:id?lang=en",
			"GET /api/search?q=term&lang=en&limit=50",
			"GET /api/filters?lang=en",
			"GET /api/map?lang=en&bounds=minLat,minLng,maxLat,maxLng",
			"GET /api/provinces?lang=en",
			"GET /api/stats?lang=en",
		},
	})
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for transport-level tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
