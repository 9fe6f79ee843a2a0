// Package commands provides the info command definition for ingestctl.

package commands

import (
	"github.com/spf13/cobra"
)

// Info command (daemon and scheduler information)
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show daemon health and scheduler state",
	Long: `Show daemon health, uptime and version together with the scheduler's
dispatch loop state, queue depth, submission counts and scheduling parameters.`,
	Example: `  # Show info
  ingestctl info

  # Output in JSON format
  ingestctl -o json info`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetInfoCommand returns the info command for handler assignment
func GetInfoCommand() *cobra.Command {
	return infoCmd
}
