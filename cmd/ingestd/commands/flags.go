// Package commands contains Cobra CLI command definitions for ingestd.
package commands

import (
	"github.com/concave-dev/ingest/cmd/ingestd/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command) {
	// API flags
	cmd.Flags().StringVar(&config.Global.APIAddr, "api", config.DefaultAPI,
		"Address and port for the HTTP API server (e.g., "+config.DefaultAPI+")")

	// Scheduler flags
	cmd.Flags().IntVar(&config.Global.BatchSize, "batch-size", config.DefaultBatchSize,
		"Maximum number of identifiers per batch (env: BATCH_SIZE)")
	cmd.Flags().IntVar(&config.Global.RateLimitMs, "rate-limit-ms", config.DefaultRateLimitMs,
		"Minimum milliseconds between consecutive batch dispatches, 0 disables spacing (env: RATE_LIMIT_MS)")
	cmd.Flags().IntVar(&config.Global.ProcessDelayMs, "process-delay-ms", config.DefaultProcessDelayMs,
		"Simulated processing time per identifier in milliseconds (env: PROCESS_DELAY_MS)")

	// Operational flags
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Write all logs to this file instead of stdout/stderr")
}

// CheckExplicitFlags checks if flags were explicitly set by the user
func CheckExplicitFlags(cmd *cobra.Command) {
	config.Global.SetExplicitlySet(config.APIAddrField, cmd.Flags().Changed("api"))
	config.Global.SetExplicitlySet(config.BatchSizeField, cmd.Flags().Changed("batch-size"))
	config.Global.SetExplicitlySet(config.RateLimitField, cmd.Flags().Changed("rate-limit-ms"))
	config.Global.SetExplicitlySet(config.ProcessDelayField, cmd.Flags().Changed("process-delay-ms"))
	config.Global.SetExplicitlySet(config.LogFileField, cmd.Flags().Changed("log-file"))
}
