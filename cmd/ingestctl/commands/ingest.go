// Package commands contains all CLI command definitions for ingestctl.
//
// This file defines the submission commands: ingest sends identifiers to the
// daemon and status polls the result by ingestion ID.
package commands

import (
	"fmt"

	"github.com/concave-dev/ingest/internal/logging"
	"github.com/spf13/cobra"
)

// Ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest --ids=ID[,ID...] [--priority=PRIORITY]",
	Short: "Submit identifiers for batch processing",
	Long: `Submit a list of identifiers to the ingestion daemon.

The daemon splits the list into batches and processes them asynchronously.
HIGH priority submissions are served before MEDIUM and LOW ones. The returned
ingestion ID is used to poll status.

Identifiers must be integers between 1 and 10^9 + 7.`,
	Example: `  # Submit at default (MEDIUM) priority
  ingestctl ingest --ids=1,2,3

  # Submit at high priority
  ingestctl ingest --ids=10,20,30,40 --priority=HIGH

  # Print only the JSON response
  ingestctl -o json ingest --ids=5 --priority=LOW`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Status command
var statusCmd = &cobra.Command{
	Use:   "status INGESTION_ID",
	Short: "Show the status of a submission",
	Long: `Show the overall status of a submission and each of its batches.

A submission is yet_to_start until any batch is picked up, triggered while
batches are running or waiting, and completed once every batch is done.`,
	Example: `  # Show status once
  ingestctl status 0f8fad5b-d9cb-469f-a165-70867728950e

  # Refresh every 2 seconds until interrupted
  ingestctl status 0f8fad5b-d9cb-469f-a165-70867728950e --watch`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 ingestion ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (ingestion ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupIngestFlags configures flags for the ingest and status commands
func SetupIngestFlags(ingestCmd, statusCmd *cobra.Command,
	idsPtr *[]int, priorityPtr *string, watchPtr *bool) {
	ingestCmd.Flags().IntSliceVar(idsPtr, "ids", nil,
		"Comma-separated identifiers to ingest (e.g., 1,2,3)")
	ingestCmd.Flags().StringVar(priorityPtr, "priority", "MEDIUM",
		"Submission priority: HIGH, MEDIUM, LOW")
	ingestCmd.MarkFlagRequired("ids")

	statusCmd.Flags().BoolVarP(watchPtr, "watch", "w", false,
		"Watch for live updates")
}

// GetIngestCommands returns the ingest and status commands for handler assignment
func GetIngestCommands() (*cobra.Command, *cobra.Command) {
	return ingestCmd, statusCmd
}
