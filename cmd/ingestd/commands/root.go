// Package commands provides the CLI command structure for the ingestion daemon.
//
// The daemon is a single root command. PreRunE wires the log file, applies the
// log level, loads environment overrides and validates the configuration;
// RunE hands off to the daemon lifecycle.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/ingest/cmd/ingestd/config"
	"github.com/concave-dev/ingest/cmd/ingestd/daemon"
	"github.com/concave-dev/ingest/cmd/ingestd/utils"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/version"
	"github.com/spf13/cobra"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Logging may point at the file being closed
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the ingestion daemon
var RootCmd = &cobra.Command{
	Use:   "ingestd",
	Short: "Prioritized, rate-limited batch ingestion service",
	Long: `Ingest daemon (ingestd) accepts identifier lists over HTTP and processes them
asynchronously in fixed-size batches.

Batches from HIGH priority submissions run before MEDIUM and LOW ones, and
consecutive batches are spaced by a global rate limit. Each submission gets a
token that can be polled for per-batch status.`,
	Version:      version.IngestdVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start with defaults (0.0.0.0:8000, batches of 3, one batch every 5s)
  ingestd

  # Bind the API to loopback on a custom port
  ingestd --api=127.0.0.1:9000

  # Faster dispatch for local testing
  ingestd --batch-size=5 --rate-limit-ms=500 --process-delay-ms=50

  # Write logs to a file at debug level
  ingestd --log-level=DEBUG --log-file=/var/log/ingestd.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.DisplayLogo(version.IngestdVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		CheckExplicitFlags(cmd)

		if config.Global.IsExplicitlySet(config.LogFileField) && config.Global.LogFile != "" {
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			logging.SetOutput(logFileHandle)
		}

		// Apply the flag level first so --log-level=ERROR silences config
		// initialization, then again for a DEBUG env override
		logging.SetLevel(config.Global.LogLevel)
		config.InitializeConfig()
		logging.SetLevel(config.Global.LogLevel)

		if err := config.ValidateConfig(); err != nil {
			CleanupLogFile()
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}
