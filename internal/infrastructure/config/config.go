package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Upstream core-banking API
	UpstreamBaseURL string        `env:"UPSTREAM_BASE_URL" envDefault:"http://localhost:9000/api"`
	UpstreamToken   string        `env:"UPSTREAM_TOKEN"    envDefault:""`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT"  envDefault:"15s"`

	// Redis
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// Cache staleness windows per resource class
	CacheVolatileTTL   time.Duration `env:"CACHE_VOLATILE_TTL"    envDefault:"1m"`
	CacheBranchListTTL time.Duration `env:"CACHE_BRANCH_LIST_TTL" envDefault:"5m"`
	CacheMonthlyTTL    time.Duration `env:"CACHE_MONTHLY_TTL"     envDefault:"10m"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting
	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"25"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST"      envDefault:"50"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Authentication (optional - leave empty to disable)
	JWTSecret        string        `env:"JWT_SECRET"         envDefault:""`
	JWTTokenDuration time.Duration `env:"JWT_TOKEN_DURATION" envDefault:"24h"`
	AuthEnabled      bool          `env:"AUTH_ENABLED"       envDefault:"false"`

	// Currency display
	CurrencyCode   string `env:"CURRENCY_CODE"   envDefault:"NGN"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"₦"`

	// Cache warmup worker
	WarmupQueue       string `env:"WARMUP_QUEUE"       envDefault:"warmup"`
	WarmupConcurrency int    `env:"WARMUP_CONCURRENCY" envDefault:"4"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
