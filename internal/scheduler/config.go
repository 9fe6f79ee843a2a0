package scheduler

import (
	"fmt"
	"time"

	"github.com/concave-dev/ingest/internal/config"
	"github.com/concave-dev/ingest/internal/validate"
)

const (
	// MaxBatchSize bounds the configurable batch size
	MaxBatchSize = 10000

	// MaxRateLimit bounds the configurable spacing between batch dispatches
	MaxRateLimit = 10 * time.Minute

	// MaxProcessDelay bounds the simulated per-identifier processing time
	MaxProcessDelay = time.Minute
)

// Config holds the tuning parameters of the ingestion scheduler: how
// submissions are split and how fast batches are dispatched.
type Config struct {
	BatchSize    int           `json:"batch_size"`    // Maximum identifiers per batch
	RateLimit    time.Duration `json:"rate_limit"`    // Minimum spacing between batch dispatches
	ProcessDelay time.Duration `json:"process_delay"` // Simulated processing time per identifier
}

// DefaultConfig returns a Config with the service defaults: batches of 3 and
// one batch every 5 seconds.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:    config.DefaultBatchSize,
		RateLimit:    config.DefaultRateLimit,
		ProcessDelay: config.DefaultProcessDelay,
	}
}

// Validate checks that every parameter is within operational bounds. A zero
// rate limit is allowed and disables spacing.
func (c *Config) Validate() error {
	if err := validate.ValidateIntRange(c.BatchSize, 1, MaxBatchSize, "batch size"); err != nil {
		return err
	}
	if err := validate.ValidateDurationRange(c.RateLimit, 0, MaxRateLimit, "rate limit"); err != nil {
		return err
	}
	if err := validate.ValidateDurationRange(c.ProcessDelay, 0, MaxProcessDelay, "process delay"); err != nil {
		return fmt.Errorf("invalid processor config: %w", err)
	}
	return nil
}
