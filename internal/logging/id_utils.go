// Package logging provides ID formatting utilities so submission and batch
// tokens display consistently in every log line.
//
// Debug logs carry full tokens for traceability; every other level shows the
// truncated 12-character form to keep operational logs readable.
package logging

import (
	"github.com/charmbracelet/log"
	"github.com/concave-dev/ingest/internal/utils"
)

// FormatID formats an ID for logging based on the current log level.
func FormatID(id string) string {
	// Debug messages go to stderr, so its level decides
	if stderrLogger.GetLevel() <= log.DebugLevel {
		return id
	}
	return utils.TruncateIDSafe(id)
}

// FormatIngestionID formats a submission token for logging.
//
// Usage: logging.Info("Accepted ingestion %s", logging.FormatIngestionID(id))
func FormatIngestionID(ingestionID string) string {
	return FormatID(ingestionID)
}

// FormatBatchID formats a batch token for logging.
func FormatBatchID(batchID string) string {
	return FormatID(batchID)
}
