package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/logging"
	"golang.org/x/sync/errgroup"
)

// LoopState is the lifecycle state of the dispatch loop.
type LoopState int

const (
	StateIdle LoopState = iota
	StateRunning
	StateStopping
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Fault kinds recorded when a dispatch iteration goes wrong.
const (
	faultVanished   = "vanished_submission"
	faultTransition = "invalid_transition"
	faultPanic      = "panic"
)

// Dispatcher runs the single background dispatch loop. Each iteration pops
// the best queued submission, advances exactly one of its batches and
// re-queues the submission while it still has unstarted batches.
//
// DISPATCH ITERATION:
//  1. Pop the next entry; an empty queue sends the loop idle
//  2. Move the submission's first yet_to_start batch to triggered
//  3. Hold for the rate limit interval
//  4. Run the processor for every identifier concurrently and wait for all
//  5. Move the batch to completed
//  6. Re-queue the entry if unstarted batches remain
//
// At most one loop goroutine exists at a time. Kick starts it when idle and
// is a no-op while running. Faults inside an iteration are logged and never
// stop the loop.
type Dispatcher struct {
	store     *ingestion.Store
	queue     *Queue
	processor Processor
	rateLimit time.Duration
	metrics   *Metrics

	// mu guards state transitions; the running -> idle transition happens
	// under it together with the final empty Pop
	mu     sync.Mutex
	state  LoopState
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDispatcher creates an idle dispatcher over the given store and queue.
func NewDispatcher(store *ingestion.Store, queue *Queue, processor Processor, rateLimit time.Duration, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		store:     store,
		queue:     queue,
		processor: processor,
		rateLimit: rateLimit,
		metrics:   metrics,
		state:     StateIdle,
	}
}

// State returns the current loop state.
func (d *Dispatcher) State() LoopState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Kick starts the dispatch loop if it is idle. Safe to call from any
// goroutine; calls while the loop runs, or after Stop, do nothing.
func (d *Dispatcher) Kick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || d.state != StateIdle {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.state = StateRunning
	d.cancel = cancel
	d.done = make(chan struct{})
	d.metrics.SetLoopRunning(true)

	logging.Debug("Dispatcher: Starting dispatch loop")
	go d.run(ctx, d.done)
}

// Stop prevents further starts, cancels a running loop and waits for it to
// exit or for ctx to expire. A batch interrupted mid-hold stays triggered.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	if d.state == StateIdle {
		d.mu.Unlock()
		return nil
	}
	d.state = StateStopping
	d.cancel()
	done := d.done
	d.mu.Unlock()

	select {
	case <-done:
		logging.Info("Dispatcher: Dispatch loop stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for dispatch loop: %w", ctx.Err())
	}
}

func (d *Dispatcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		entry, ok := d.next(ctx)
		if !ok {
			return
		}
		d.dispatch(ctx, entry)
	}
}

// next pops the next entry. When the queue is empty or the loop is being
// stopped it moves the loop to idle under the same lock Kick takes, so a
// concurrent submission either lands in this Pop or starts a fresh loop.
func (d *Dispatcher) next(ctx context.Context) (Entry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var entry Entry
	ok := false
	if ctx.Err() == nil {
		entry, ok = d.queue.Pop()
	}
	d.metrics.SetQueueDepth(d.queue.Len())

	if !ok {
		d.state = StateIdle
		d.cancel()
		d.metrics.SetLoopRunning(false)
		logging.Debug("Dispatcher: Queue drained, dispatch loop idle")
	}
	return entry, ok
}

// dispatch advances one batch of the entry's submission.
func (d *Dispatcher) dispatch(ctx context.Context, entry Entry) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.RecordFault(faultPanic)
			logging.Error("Dispatcher: Recovered from panic dispatching ingestion %s: %v",
				logging.FormatIngestionID(entry.Token), r)
		}
	}()

	batch, err := d.store.StartBatch(entry.Token)
	if err != nil {
		d.metrics.RecordFault(faultVanished)
		logging.Warn("Dispatcher: Skipping queued ingestion %s: %v", logging.FormatIngestionID(entry.Token), err)
		return
	}
	if batch == nil {
		logging.Debug("Dispatcher: Ingestion %s has no unstarted batches", logging.FormatIngestionID(entry.Token))
		return
	}
	d.metrics.RecordBatchStarted()
	logging.Info("Dispatcher: Triggered batch %s of ingestion %s (%d ids)",
		logging.FormatBatchID(batch.ID), logging.FormatIngestionID(entry.Token), len(batch.IDs))

	if !d.hold(ctx) {
		logging.Warn("Dispatcher: Stopped while holding batch %s", logging.FormatBatchID(batch.ID))
		return
	}

	started := time.Now()
	if failed := d.execute(ctx, batch); failed > 0 {
		d.metrics.RecordProcessorErrors(failed)
	}

	if err := d.store.CompleteBatch(entry.Token, batch.ID); err != nil {
		d.metrics.RecordFault(faultTransition)
		logging.Error("Dispatcher: Failed to complete batch %s: %v", logging.FormatBatchID(batch.ID), err)
		return
	}
	d.metrics.RecordBatchCompleted(time.Since(started).Seconds())
	logging.Info("Dispatcher: Completed batch %s of ingestion %s",
		logging.FormatBatchID(batch.ID), logging.FormatIngestionID(entry.Token))

	if d.store.HasPending(entry.Token) {
		d.queue.Push(entry)
		d.metrics.SetQueueDepth(d.queue.Len())
	}
}

// hold waits out the rate limit. Returns false if the loop was stopped first.
func (d *Dispatcher) hold(ctx context.Context) bool {
	if d.rateLimit <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d.rateLimit)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// execute runs the processor for every identifier of the batch concurrently
// and waits for all of them. Errors and panics are counted and logged; they
// do not cancel sibling calls. Returns the number of failed identifiers.
func (d *Dispatcher) execute(ctx context.Context, batch *ingestion.Batch) int {
	var (
		g      errgroup.Group
		failed atomic.Int32
	)

	results := make([]Result, len(batch.IDs))
	for i, id := range batch.IDs {
		i, id := i, id // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("processor panicked on id %d: %v", id, r)
				}
				if err != nil {
					failed.Add(1)
				}
			}()

			res, err := d.processor.Process(ctx, id)
			if err != nil {
				return fmt.Errorf("processing id %d: %w", id, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.Error("Dispatcher: Batch %s finished with %d failed ids, first error: %v",
			logging.FormatBatchID(batch.ID), failed.Load(), err)
	}
	logging.Debug("Dispatcher: Batch %s produced %d results", logging.FormatBatchID(batch.ID), len(results)-int(failed.Load()))

	return int(failed.Load())
}
