// Package scheduler implements prioritized, rate-limited batch dispatch for
// the ingestion service.
//
// SCHEDULING ARCHITECTURE:
// Submissions are split into batches by the ingestion store and represented
// in a priority queue by a single entry each. One background dispatch loop
// drains the queue, advancing one batch per iteration:
//   - HIGH submissions are served before MEDIUM, MEDIUM before LOW
//   - Within a tier, earlier submissions are served first
//   - Consecutive batch dispatches are spaced by at least the rate limit
//   - A submission with remaining batches re-enters the queue at its original
//     position, keeping precedence over later submissions of its tier
//
// The loop starts on demand when a submission arrives and goes idle when the
// queue drains. Status queries read the store directly and are never blocked
// by the rate limit hold.
package scheduler

import (
	"context"
	"fmt"

	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Info is a point-in-time summary of the scheduler, served by the API.
type Info struct {
	LoopState      string                   `json:"loop_state"`
	QueueDepth     int                      `json:"queue_depth"`
	Submissions    int                      `json:"submissions"`
	ByStatus       map[ingestion.Status]int `json:"by_status"`
	BatchSize      int                      `json:"batch_size"`
	RateLimitMs    int64                    `json:"rate_limit_ms"`
	ProcessDelayMs int64                    `json:"process_delay_ms"`
}

// Scheduler ties together the submission store, the priority queue and the
// dispatch loop.
type Scheduler struct {
	config     *Config
	store      *ingestion.Store
	queue      *Queue
	dispatcher *Dispatcher
	metrics    *Metrics
}

// New creates a scheduler with an idle dispatch loop. Metrics are registered
// with reg; pass nil to leave them unregistered.
func New(cfg *Config, processor Processor, reg prometheus.Registerer) (*Scheduler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler config: %w", err)
	}
	if processor == nil {
		return nil, fmt.Errorf("processor cannot be nil")
	}

	store := ingestion.NewStore(cfg.BatchSize)
	queue := NewQueue()
	metrics := NewMetrics(reg)

	logging.Info("Scheduler: Batch size %d, rate limit %v", cfg.BatchSize, cfg.RateLimit)

	return &Scheduler{
		config:     cfg,
		store:      store,
		queue:      queue,
		dispatcher: NewDispatcher(store, queue, processor, cfg.RateLimit, metrics),
		metrics:    metrics,
	}, nil
}

// Submit records a new submission, queues it and makes sure the dispatch
// loop is running. Returns the submission token.
func (s *Scheduler) Submit(ids []int, priority ingestion.Priority) (string, error) {
	sub, err := s.store.Create(ids, priority)
	if err != nil {
		return "", fmt.Errorf("failed to create ingestion: %w", err)
	}

	s.queue.Push(Entry{
		Token:     sub.ID,
		Rank:      sub.Priority.Rank(),
		CreatedAt: sub.CreatedAt,
		Seq:       sub.Seq,
	})
	s.metrics.RecordSubmission(string(priority))
	s.metrics.SetQueueDepth(s.queue.Len())

	logging.Info("Scheduler: Accepted ingestion %s (%d ids, %d batches, priority %s)",
		logging.FormatIngestionID(sub.ID), len(ids), len(sub.Batches), priority)

	s.dispatcher.Kick()
	return sub.ID, nil
}

// Status returns the derived status of a submission, or an error wrapping
// ingestion.ErrNotFound.
func (s *Scheduler) Status(token string) (*ingestion.StatusReport, error) {
	return s.store.Report(token)
}

// Info returns a summary of the scheduler's configuration and state.
func (s *Scheduler) Info() Info {
	return Info{
		LoopState:      s.dispatcher.State().String(),
		QueueDepth:     s.queue.Len(),
		Submissions:    s.store.Count(),
		ByStatus:       s.store.StatusCounts(),
		BatchSize:      s.config.BatchSize,
		RateLimitMs:    s.config.RateLimit.Milliseconds(),
		ProcessDelayMs: s.config.ProcessDelay.Milliseconds(),
	}
}

// Stop halts the dispatch loop and waits for it to exit or ctx to expire.
// Submissions accepted after Stop are recorded but never dispatched.
func (s *Scheduler) Stop(ctx context.Context) error {
	return s.dispatcher.Stop(ctx)
}
