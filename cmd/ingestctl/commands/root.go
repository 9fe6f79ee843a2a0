// Package commands provides the command tree for ingestctl.
//
// COMMAND STRUCTURE:
//   - ingest: Submit identifiers with a priority
//   - status: Show the status of a submission and its batches
//   - info:   Show daemon health and scheduler state
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "ingestctl",
	Short: "CLI tool for the prioritized batch ingestion service",
	Long: `Ingest CLI (ingestctl) is a command-line tool for submitting identifiers
to an ingestd daemon and tracking how their batches progress.`,
	SilenceUsage: true,
	Example: `  # Submit identifiers at high priority
  ingestctl ingest --ids=1,2,3,4,5 --priority=HIGH

  # Check a submission
  ingestctl status 0f8fad5b-d9cb-469f-a165-70867728950e

  # Follow a submission until interrupted
  ingestctl status 0f8fad5b-d9cb-469f-a165-70867728950e --watch

  # Show scheduler state from a remote daemon
  ingestctl --api=192.168.1.100:8000 info

  # Output in JSON format
  ingestctl -o json status 0f8fad5b-d9cb-469f-a165-70867728950e`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(ingestCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(infoCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, apiAddrPtr *string, logLevelPtr *string,
	timeoutPtr *int, verbosePtr *bool, outputPtr *string, defaultAPIAddr string) {
	rootCmd.PersistentFlags().StringVar(apiAddrPtr, "api", defaultAPIAddr,
		"API server address")
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Connection timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
