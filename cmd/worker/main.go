package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/isabitech/branchbooks/internal/adapter/corebank"
	redisRepo "github.com/isabitech/branchbooks/internal/adapter/repository/redis"
	"github.com/isabitech/branchbooks/internal/infrastructure/config"
	"github.com/isabitech/branchbooks/internal/infrastructure/logger"
	"github.com/isabitech/branchbooks/internal/infrastructure/metrics"
	"github.com/isabitech/branchbooks/internal/infrastructure/redis"
	"github.com/isabitech/branchbooks/internal/jobs"
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
		Service: "worker",
	})

	ctx := context.Background()

	// Connect to Redis for the resource cache
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	// Upstream core-banking client
	upstream := corebank.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamToken, cfg.UpstreamTimeout)

	m := metrics.New()
	cache := redisRepo.NewResourceCache(redisClient)
	clock := usecase.SystemClock{}

	fetcher := usecase.NewFetcher(cache, usecase.FetcherConfig{
		VolatileTTL:   cfg.CacheVolatileTTL,
		BranchListTTL: cfg.CacheBranchListTTL,
		MonthlyTTL:    cfg.CacheMonthlyTTL,
	}, m)

	summaryUC := usecase.NewDailySummaryUseCase(upstream, fetcher, clock)
	branchUC := usecase.NewBranchUseCase(upstream, fetcher)

	warmup := jobs.NewWarmupJob(summaryUC, branchUC, log, m)

	// Asynq queue connection
	redisOpts, err := parseRedisOpts(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid redis URL for job queue")
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   redisOpts,
		Concurrency: cfg.WarmupConcurrency,
		Queue:       cfg.WarmupQueue,
		CronSpec:    "0 7 * * 1-6",
		Warmup:      warmup,
		Logger:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build worker")
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("queue", cfg.WarmupQueue).Int("concurrency", cfg.WarmupConcurrency).Msg("starting worker")
	if err := worker.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("worker failed")
	}
	log.Info().Msg("worker stopped")
}

func parseRedisOpts(redisURL string) (asynq.RedisClientOpt, error) {
	opts, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}
	clientOpts, ok := opts.(asynq.RedisClientOpt)
	if !ok {
		return asynq.RedisClientOpt{}, errors.New("unsupported redis configuration")
	}
	return clientOpts, nil
}
