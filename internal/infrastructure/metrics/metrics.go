package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Upstream fetch metrics
	UpstreamFetches *prometheus.CounterVec
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec

	// Submit metrics
	SubmitActions *prometheus.CounterVec

	// Warmup metrics
	WarmupRuns *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default
// registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates and registers all Prometheus metrics on reg.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpstreamFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "branchbooks_upstream_fetches_total",
				Help: "Total number of upstream resource fetches by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "branchbooks_cache_hits_total",
				Help: "Total number of resource cache hits by resource",
			},
			[]string{"resource"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "branchbooks_cache_misses_total",
				Help: "Total number of resource cache misses by resource",
			},
			[]string{"resource"},
		),
		SubmitActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "branchbooks_submit_actions_total",
				Help: "Total number of daily operation submits by outcome",
			},
			[]string{"outcome"},
		),
		WarmupRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "branchbooks_warmup_runs_total",
				Help: "Total number of cache warmup runs by outcome",
			},
			[]string{"outcome"},
		),
	}
}
