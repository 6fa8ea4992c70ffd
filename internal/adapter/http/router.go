package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/isabitech/branchbooks/internal/adapter/http/handler"
	"github.com/isabitech/branchbooks/internal/adapter/http/middleware"
	"github.com/isabitech/branchbooks/internal/infrastructure/auth"
	"github.com/isabitech/branchbooks/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SummaryHandler      *handler.SummaryHandler
	RegisterHandler     *handler.RegisterHandler
	DisbursementHandler *handler.DisbursementHandler
	ComplianceHandler   *handler.ComplianceHandler
	OperationHandler    *handler.OperationHandler
	BranchHandler       *handler.BranchHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
	IdempotencyStore    usecase.IdempotencyStore
	RateLimiter         *middleware.RateLimiter
	JWTManager          *auth.JWTManager
	Logger              zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))
		}

		// Idempotency middleware for the submit mutation
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Summaries
		r.Route("/summaries", func(r chi.Router) {
			r.Get("/daily", cfg.SummaryHandler.Daily)
		})

		// Registers
		r.Route("/registers", func(r chi.Router) {
			r.Get("/loan", cfg.RegisterHandler.Loan)
			r.Get("/savings", cfg.RegisterHandler.Savings)
		})

		// Monthly disbursement roll
		r.Get("/disbursement-roll", cfg.DisbursementHandler.Roll)

		// Compliance and planning
		r.Route("/compliance", func(r chi.Router) {
			r.Get("/efcc", cfg.ComplianceHandler.EFCC)
			r.Get("/amount-need-tomorrow", cfg.ComplianceHandler.AmountNeedTomorrow)
		})

		// Daily operations
		r.Route("/operations", func(r chi.Router) {
			r.Get("/daily", cfg.OperationHandler.Get)
			r.Patch("/daily/{operationId}/submit", cfg.OperationHandler.Submit)
		})

		// Branch directory
		r.Get("/branches", cfg.BranchHandler.List)

		// Head-office dashboard
		r.Get("/dashboard/consolidated", cfg.DashboardHandler.Consolidated)
	})

	return r
}
