package usecase

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/isabitech/branchbooks/internal/infrastructure/metrics"
)

// FetchState is the terminal state of one resource read.
type FetchState string

const (
	// StateReady means the resource exists and was decoded.
	StateReady FetchState = "ready"

	// StateEmpty means the upstream system affirmatively reported no
	// record for the key. It is a success, not a failure, and is cached
	// like one so known-absent data does not hammer the upstream API.
	StateEmpty FetchState = "empty"

	// StateError means the read failed after bounded retries.
	StateError FetchState = "error"
)

// Result is the tri-state outcome of one resource fetch.
type Result[T any] struct {
	State FetchState
	Data  *T
	Err   error
}

// Ready reports whether the resource exists.
func (r Result[T]) Ready() bool { return r.State == StateReady }

// Empty reports whether the upstream system has no record for the key.
func (r Result[T]) Empty() bool { return r.State == StateEmpty }

// Failed reports whether the read errored.
func (r Result[T]) Failed() bool { return r.State == StateError }

// FetcherConfig holds the per-resource-class staleness windows.
type FetcherConfig struct {
	// VolatileTTL covers per-day financial records that staff edit
	// throughout the working day.
	VolatileTTL time.Duration

	// BranchListTTL covers the branch directory.
	BranchListTTL time.Duration

	// MonthlyTTL covers monthly aggregates such as disbursement rolls.
	MonthlyTTL time.Duration
}

// Fetcher is the shared read-through machinery behind every resource
// fetch: cache lookup keyed by resource type + full natural key, collapse
// of concurrent identical reads, and whole-value cache replacement on
// completion. It never fabricates data: a still-loading or absent value
// stays distinguishable from a true zero.
type Fetcher struct {
	cache   Cache
	cfg     FetcherConfig
	metrics *metrics.Metrics
	group   singleflight.Group
}

// NewFetcher creates a new Fetcher.
func NewFetcher(cache Cache, cfg FetcherConfig, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		cache:   cache,
		cfg:     cfg,
		metrics: m,
	}
}

// emptyMarker is the cached representation of the empty state.
const emptyMarker = "null"

// fetchResource runs one cached tri-state read. The key must carry the
// resource type and the full natural key, so a response for one key can
// never be observed under another; refresh bypasses the cache read and is
// the "retry on user action" path.
func fetchResource[T any](ctx context.Context, f *Fetcher, class, key string, ttl time.Duration, refresh bool, load func(ctx context.Context) (*T, error)) Result[T] {
	if !refresh {
		if cached, hit, err := f.cache.Get(ctx, key); err == nil && hit {
			f.countCache(class, true)
			return decodeCached[T](cached)
		}
		f.countCache(class, false)
	}

	val, err, _ := f.group.Do(key, func() (any, error) {
		data, err := load(ctx)
		if err != nil {
			return nil, err
		}

		// Cache failures must not fail the fetch; the next read simply
		// goes upstream again.
		if data == nil {
			_ = f.cache.Set(ctx, key, []byte(emptyMarker), ttl)
		} else if encoded, err := json.Marshal(data); err == nil {
			_ = f.cache.Set(ctx, key, encoded, ttl)
		}
		return data, nil
	})
	if err != nil {
		f.countFetch(class, string(StateError))
		return Result[T]{State: StateError, Err: err}
	}

	data, _ := val.(*T)
	if data == nil {
		f.countFetch(class, string(StateEmpty))
		return Result[T]{State: StateEmpty}
	}
	f.countFetch(class, string(StateReady))
	return Result[T]{State: StateReady, Data: data}
}

func decodeCached[T any](cached []byte) Result[T] {
	if string(cached) == emptyMarker {
		return Result[T]{State: StateEmpty}
	}
	var data T
	if err := json.Unmarshal(cached, &data); err != nil {
		return Result[T]{State: StateError, Err: err}
	}
	return Result[T]{State: StateReady, Data: &data}
}

func (f *Fetcher) countCache(class string, hit bool) {
	if f.metrics == nil {
		return
	}
	if hit {
		f.metrics.CacheHits.WithLabelValues(class).Inc()
	} else {
		f.metrics.CacheMisses.WithLabelValues(class).Inc()
	}
}

func (f *Fetcher) countFetch(class, outcome string) {
	if f.metrics == nil {
		return
	}
	f.metrics.UpstreamFetches.WithLabelValues(class, outcome).Inc()
}
