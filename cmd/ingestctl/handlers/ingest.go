package handlers

import (
	"fmt"
	"strings"

	"github.com/concave-dev/ingest/cmd/ingestctl/client"
	"github.com/concave-dev/ingest/cmd/ingestctl/config"
	"github.com/concave-dev/ingest/cmd/ingestctl/display"
	"github.com/concave-dev/ingest/cmd/ingestctl/utils"
	"github.com/concave-dev/ingest/internal/logging"
	internalutils "github.com/concave-dev/ingest/internal/utils"
	"github.com/concave-dev/ingest/internal/validate"
	"github.com/spf13/cobra"
)

// HandleIngest handles the ingest command. Input is checked locally with the
// same rules the daemon applies so obvious mistakes never reach the network.
func HandleIngest(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	priority := strings.ToUpper(strings.TrimSpace(config.Ingest.Priority))

	if err := validate.IdentifierList(config.Ingest.IDs); err != nil {
		logging.Error("Invalid identifiers: %v", err)
		return err
	}
	if err := validate.PriorityName(priority); err != nil {
		logging.Error("Invalid priority '%s': %v", config.Ingest.Priority, err)
		return err
	}

	logging.Info("Submitting %d identifiers at %s priority to API server: %s",
		len(config.Ingest.IDs), priority, config.Global.APIAddr)

	apiClient := client.CreateAPIClient()
	response, err := apiClient.Ingest(config.Ingest.IDs, priority)
	if err != nil {
		return err
	}

	display.DisplayIngestResult(response, config.Ingest.IDs, priority)

	logging.Success("Submission accepted with ingestion ID: %s", response.IngestionID)
	return nil
}

// HandleStatus handles the status command, once or in watch mode.
func HandleStatus(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	ingestionID := strings.TrimSpace(args[0])
	if ingestionID == "" {
		return fmt.Errorf("ingestion ID cannot be empty")
	}

	if !internalutils.IsValidID(ingestionID) {
		logging.Warn("'%s' does not look like an ingestion ID", ingestionID)
	}

	apiClient := client.CreateAPIClient()

	fetchAndDisplay := func() error {
		report, err := apiClient.GetStatus(ingestionID)
		if err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("ingestion '%s' not found", ingestionID)
			}
			return err
		}

		display.DisplayStatus(report)
		return nil
	}

	return utils.RunWithWatch(fetchAndDisplay, config.Status.Watch)
}
