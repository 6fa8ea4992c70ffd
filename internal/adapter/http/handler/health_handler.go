package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// UpstreamPinger probes the core-banking API.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	redisClient *redis.Client
	upstream    UpstreamPinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(redisClient *redis.Client, upstream UpstreamPinger) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		upstream:    upstream,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Check Redis
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "redis unhealthy")
		return
	}

	// Check upstream core-banking API
	if err := h.upstream.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "upstream unhealthy")
		return
	}

	writeData(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"redis":    "ok",
		"upstream": "ok",
	})
}
