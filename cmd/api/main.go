package main

// @title Historic Places Canada API
// @version 1.0.0
// @description Read-only catalogue of Canadian historic places with bilingual
// @description content (en/fr), faceted search, map extracts and catalogue
// @description statistics. All endpoints are anonymous GETs under /api and
// @description sit behind a two-tier rate limit (global + data endpoints).

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Gorskiz/historic-places-canada-2/docs"
	"github.com/Gorskiz/historic-places-canada-2/internal/config"
	httpDelivery "github.com/Gorskiz/historic-places-canada-2/internal/delivery/http"
	"github.com/Gorskiz/historic-places-canada-2/internal/delivery/http/handler"
	"github.com/Gorskiz/historic-places-canada-2/internal/pkg/logger"
	"github.com/Gorskiz/historic-places-canada-2/internal/ratelimit"
	"github.com/Gorskiz/historic-places-canada-2/internal/repository/cache"
	"github.com/Gorskiz/historic-places-canada-2/internal/repository/postgres"
	"github.com/Gorskiz/historic-places-canada-2/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Historic Places Canada API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	placeRepo := postgres.NewPlaceRepository(db)
	facetRepo := postgres.NewFacetRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 7. Rate limiter backend. Redis shares counters across instances;
	// memory is for single-instance deployments.
	var limiter ratelimit.Limiter
	switch cfg.RateLimit.Backend {
	case "memory":
		limiter = ratelimit.NewMemoryLimiter()
	default:
		limiter = ratelimit.NewRedisLimiter(redisClient.Client(), log)
	}

	log.Info("Repositories initialized",
		zap.String("rate_limit_backend", cfg.RateLimit.Backend),
	)

	// 8. Initialize use cases
	placeUC := usecase.NewPlaceUseCase(placeRepo, log)
	searchUC := usecase.NewSearchUseCase(placeRepo, log)
	facetUC := usecase.NewFacetUseCase(facetRepo, cacheRepo, log, cfg.Cache.FacetsCacheTTL)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	// 9. Initialize HTTP handlers
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	facetHandler := handler.NewFacetHandler(facetUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		limiter,
		placeHandler,
		searchHandler,
		facetHandler,
		statsHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
