package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// WorkerConfig collects dependencies required to bootstrap the worker.
type WorkerConfig struct {
	RedisOpts   asynq.RedisClientOpt
	Concurrency int
	Queue       string
	CronSpec    string
	Warmup      *WarmupJob
	Logger      zerolog.Logger
}

// Worker wraps the Asynq server and optional scheduler.
type Worker struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
	logger    zerolog.Logger
}

// NewWorker constructs a Worker instance. When CronSpec is set the warmup
// task is also scheduled on that cadence.
func NewWorker(cfg WorkerConfig) (*Worker, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = QueueWarmup
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	srv := asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWarmDailySummaries, cfg.Warmup.Handle)

	var scheduler *asynq.Scheduler
	if cfg.CronSpec != "" {
		task, err := NewWarmDailyTask(WarmDailyPayload{})
		if err != nil {
			return nil, err
		}
		scheduler = asynq.NewScheduler(cfg.RedisOpts, &asynq.SchedulerOpts{Location: time.UTC})
		if _, err := scheduler.Register(cfg.CronSpec, task, asynq.Queue(queue)); err != nil {
			return nil, err
		}
	}

	return &Worker{server: srv, mux: mux, scheduler: scheduler, logger: cfg.Logger}, nil
}

// Run starts processing jobs until context cancellation.
func (w *Worker) Run(ctx context.Context) error {
	if w.scheduler != nil {
		if err := w.scheduler.Start(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.server.Run(w.mux)
	}()

	select {
	case <-ctx.Done():
		if w.scheduler != nil {
			w.scheduler.Shutdown()
		}
		w.server.Shutdown()
		return ctx.Err()
	case err := <-errCh:
		if w.scheduler != nil {
			w.scheduler.Shutdown()
		}
		return err
	}
}

// Client submits warmup jobs to the queue.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient constructs an Asynq client.
func NewClient(redisOpts asynq.RedisClientOpt, queue string) *Client {
	if queue == "" {
		queue = QueueWarmup
	}
	return &Client{client: asynq.NewClient(redisOpts), queue: queue}
}

// EnqueueWarmDaily enqueues a daily summary warmup task.
func (c *Client) EnqueueWarmDaily(ctx context.Context, payload WarmDailyPayload) (*asynq.TaskInfo, error) {
	task, err := NewWarmDailyTask(payload)
	if err != nil {
		return nil, err
	}
	return c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue))
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
