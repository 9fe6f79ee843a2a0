// Package main provides the entry point for the ingestion CLI tool (ingestctl).
//
// ingestctl submits identifier lists to a running ingestd, polls submission
// status and shows scheduler state. Commands are defined in the commands
// package and their handlers are assigned here so command definitions stay
// free of API client dependencies.
package main

import (
	"os"

	"github.com/concave-dev/ingest/cmd/ingestctl/commands"
	"github.com/concave-dev/ingest/cmd/ingestctl/config"
	"github.com/concave-dev/ingest/cmd/ingestctl/handlers"
)

func init() {
	rootCmd := commands.RootCmd

	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupCommands()

	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output, config.DefaultAPIAddr)

	ingestCmd, statusCmd := commands.GetIngestCommands()
	commands.SetupIngestFlags(ingestCmd, statusCmd,
		&config.Ingest.IDs, &config.Ingest.Priority, &config.Status.Watch)

	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	ingestCmd, statusCmd := commands.GetIngestCommands()
	infoCmd := commands.GetInfoCommand()

	ingestCmd.RunE = handlers.HandleIngest
	statusCmd.RunE = handlers.HandleStatus
	infoCmd.RunE = handlers.HandleInfo
}

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
