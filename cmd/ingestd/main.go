// Package main implements the ingestion daemon (ingestd).
//
// ingestd accepts lists of identifiers over HTTP, splits them into fixed-size
// batches and processes the batches in priority order under a global rate
// limit. Clients poll submission status by the token returned at ingest time.
package main

import (
	"os"

	"github.com/concave-dev/ingest/cmd/ingestd/commands"
)

func main() {
	commands.SetupCommands()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
