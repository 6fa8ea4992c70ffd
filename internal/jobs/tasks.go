// Package jobs holds the background cache warmup machinery. Warming runs
// the same read path the HTTP handlers use, so the first screen load of
// the morning hits a populated cache.
package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/isabitech/branchbooks/internal/domain"
	"github.com/isabitech/branchbooks/internal/infrastructure/metrics"
	"github.com/isabitech/branchbooks/internal/usecase"
)

const (
	// QueueWarmup is the queue name for warmup jobs.
	QueueWarmup = "warmup"

	// TaskWarmDailySummaries pre-populates the daily summary cache for
	// every active branch.
	TaskWarmDailySummaries = "cache:warm-daily"
)

// WarmDailyPayload identifies the date to warm. An empty date means today.
type WarmDailyPayload struct {
	Date string `json:"date"`
}

// NewWarmDailyTask constructs an Asynq task.
func NewWarmDailyTask(payload WarmDailyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWarmDailySummaries, data), nil
}

// SummaryBuilder builds daily summaries, filling the resource cache as a
// side effect.
type SummaryBuilder interface {
	Build(ctx context.Context, branchID, date string, refresh bool) (*usecase.DailySummary, error)
}

// BranchLister lists the branches to warm.
type BranchLister interface {
	ListActive(ctx context.Context, refresh bool) ([]domain.Branch, error)
}

// WarmupJob pre-populates per-branch daily summary caches.
type WarmupJob struct {
	summaries SummaryBuilder
	branches  BranchLister
	logger    zerolog.Logger
	metrics   *metrics.Metrics
	clock     func() time.Time
}

// NewWarmupJob wires dependencies for the warmup handler.
func NewWarmupJob(summaries SummaryBuilder, branches BranchLister, logger zerolog.Logger, m *metrics.Metrics) *WarmupJob {
	return &WarmupJob{
		summaries: summaries,
		branches:  branches,
		logger:    logger,
		metrics:   m,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes warmup tasks. A branch whose records fail to load is
// logged and skipped; the remaining branches still get warmed.
func (j *WarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload WarmDailyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if payload.Date == "" {
		payload.Date = j.clock().Format(domain.DateLayout)
	}

	logger := j.logger.With().Str("task", TaskWarmDailySummaries).Str("date", payload.Date).Logger()
	start := j.clock()

	branches, err := j.branches.ListActive(ctx, false)
	if err != nil {
		j.countRun("error")
		logger.Error().Err(err).Msg("failed to list branches for warmup")
		return err
	}
	if len(branches) == 0 {
		logger.Info().Msg("no active branches to warm")
		return nil
	}

	warmed := 0
	for _, branch := range branches {
		branchCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		_, err := j.summaries.Build(branchCtx, branch.ID, payload.Date, false)
		cancel()

		if err != nil {
			logger.Warn().Err(err).Str("branch_id", branch.ID).Msg("failed to warm branch")
			continue
		}
		warmed++
	}

	j.countRun("success")
	logger.Info().
		Int("branches", len(branches)).
		Int("warmed", warmed).
		Dur("duration", time.Since(start)).
		Msg("completed daily summary warmup")
	return nil
}

func (j *WarmupJob) countRun(outcome string) {
	if j.metrics == nil {
		return
	}
	j.metrics.WarmupRuns.WithLabelValues(outcome).Inc()
}
