package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/isabitech/branchbooks/internal/adapter/corebank"
	httpAdapter "github.com/isabitech/branchbooks/internal/adapter/http"
	"github.com/isabitech/branchbooks/internal/adapter/http/handler"
	"github.com/isabitech/branchbooks/internal/adapter/http/middleware"
	"github.com/isabitech/branchbooks/internal/adapter/idgen"
	redisRepo "github.com/isabitech/branchbooks/internal/adapter/repository/redis"
	"github.com/isabitech/branchbooks/internal/infrastructure/auth"
	"github.com/isabitech/branchbooks/internal/infrastructure/config"
	"github.com/isabitech/branchbooks/internal/infrastructure/format"
	"github.com/isabitech/branchbooks/internal/infrastructure/logger"
	"github.com/isabitech/branchbooks/internal/infrastructure/metrics"
	"github.com/isabitech/branchbooks/internal/infrastructure/redis"
	"github.com/isabitech/branchbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "server",
	})

	ctx := context.Background()

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Upstream core-banking client
	upstream := corebank.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamToken, cfg.UpstreamTimeout)

	// Shared infrastructure
	m := metrics.New()
	cache := redisRepo.NewResourceCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := idgen.NewULIDGenerator()
	clock := usecase.SystemClock{}
	formatter := format.NewCurrencyFormatter(cfg.CurrencySymbol, cfg.CurrencyCode)

	fetcher := usecase.NewFetcher(cache, usecase.FetcherConfig{
		VolatileTTL:   cfg.CacheVolatileTTL,
		BranchListTTL: cfg.CacheBranchListTTL,
		MonthlyTTL:    cfg.CacheMonthlyTTL,
	}, m)

	// Initialize use cases
	summaryUC := usecase.NewDailySummaryUseCase(upstream, fetcher, clock)
	registerUC := usecase.NewRegisterUseCase(upstream, fetcher, clock)
	disbursementUC := usecase.NewDisbursementUseCase(upstream, fetcher, clock)
	complianceUC := usecase.NewComplianceUseCase(upstream, fetcher, clock)
	operationUC := usecase.NewOperationUseCase(upstream, fetcher, cache, idGen, clock)
	branchUC := usecase.NewBranchUseCase(upstream, fetcher)
	dashboardUC := usecase.NewDashboardUseCase(upstream, fetcher, branchUC, clock)

	// Optional JWT auth
	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTokenDuration)
		log.Info().Msg("authentication enabled")
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SummaryHandler:      handler.NewSummaryHandler(summaryUC, formatter),
		RegisterHandler:     handler.NewRegisterHandler(registerUC, formatter),
		DisbursementHandler: handler.NewDisbursementHandler(disbursementUC, formatter),
		ComplianceHandler:   handler.NewComplianceHandler(complianceUC, formatter),
		OperationHandler:    handler.NewOperationHandler(operationUC),
		BranchHandler:       handler.NewBranchHandler(branchUC),
		DashboardHandler:    handler.NewDashboardHandler(dashboardUC, formatter),
		HealthHandler:       handler.NewHealthHandler(redisClient, upstream),
		IdempotencyStore:    idempotencyStore,
		RateLimiter:         middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		JWTManager:          jwtManager,
		Logger:              log,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
