// Package config provides default configuration values shared by the
// ingestion daemon components (HTTP API, scheduler, processor) and the CLI.
// Keeping them here lets flags, environment overrides and component configs
// agree on one set of defaults.
package config

import "time"

const (
	// DefaultBindAddr is the default bind address for the HTTP API
	// Using 0.0.0.0 allows binding to all available network interfaces
	DefaultBindAddr = "0.0.0.0"

	// DefaultAPIPort is the default HTTP API port
	DefaultAPIPort = 8000

	// DefaultLogLevel is the default log level for all components
	DefaultLogLevel = "INFO"

	// DefaultBatchSize is the maximum number of identifiers per batch
	DefaultBatchSize = 3

	// DefaultRateLimit is the minimum spacing between consecutive batch dispatches
	DefaultRateLimit = 5000 * time.Millisecond

	// DefaultProcessDelay is how long the simulated processor spends on each identifier
	DefaultProcessDelay = 1000 * time.Millisecond

	// DefaultShutdownTimeout bounds graceful shutdown of the HTTP server and dispatch loop
	DefaultShutdownTimeout = 10 * time.Second
)
