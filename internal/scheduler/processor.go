package scheduler

import (
	"context"
	"time"
)

// Result is the outcome of processing a single identifier.
type Result struct {
	ID   int    `json:"id"`
	Data string `json:"data"`
}

// Processor performs the work for one identifier. The dispatcher calls it
// concurrently for every identifier in a batch, so implementations must be
// safe for concurrent use.
type Processor interface {
	Process(ctx context.Context, id int) (Result, error)
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx context.Context, id int) (Result, error)

// Process calls f(ctx, id).
func (f ProcessorFunc) Process(ctx context.Context, id int) (Result, error) {
	return f(ctx, id)
}

// SimulatedProcessor stands in for an external data source: each identifier
// takes Delay to fetch and yields {id, "processed"}.
type SimulatedProcessor struct {
	Delay time.Duration
}

// NewSimulatedProcessor creates a simulated processor with the given delay.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{Delay: delay}
}

// Process waits out the delay, returning early with ctx.Err() if cancelled.
func (p *SimulatedProcessor) Process(ctx context.Context, id int) (Result, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Result{ID: id, Data: "processed"}, nil
}
