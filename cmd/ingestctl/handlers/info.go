package handlers

import (
	"github.com/concave-dev/ingest/cmd/ingestctl/client"
	"github.com/concave-dev/ingest/cmd/ingestctl/config"
	"github.com/concave-dev/ingest/cmd/ingestctl/display"
	"github.com/concave-dev/ingest/cmd/ingestctl/utils"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/spf13/cobra"
)

// HandleInfo handles the info command
func HandleInfo(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	logging.Info("Fetching daemon info from API server: %s", config.Global.APIAddr)

	apiClient := client.CreateAPIClient()

	health, err := apiClient.GetHealth()
	if err != nil {
		return err
	}

	info, err := apiClient.GetSchedulerInfo()
	if err != nil {
		return err
	}

	// Resources are supplementary; an older daemon without the endpoint
	// still gets a useful info view
	snapshot, err := apiClient.GetResources()
	if err != nil {
		logging.Warn("Failed to fetch resources: %v", err)
	}

	display.DisplayInfo(health, info, snapshot)
	return nil
}
