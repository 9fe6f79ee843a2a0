// Package display provides output formatting for ingestctl.
//
// Every function honors the global --output flag: table output uses
// text/tabwriter with go-humanize for counts and times, JSON output is the
// API payload re-encoded with indentation.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/concave-dev/ingest/cmd/ingestctl/client"
	"github.com/concave-dev/ingest/cmd/ingestctl/config"
	"github.com/concave-dev/ingest/cmd/ingestctl/utils"
	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/resources"
	"github.com/concave-dev/ingest/internal/scheduler"
	internalutils "github.com/concave-dev/ingest/internal/utils"
	"github.com/dustin/go-humanize"
)

// out is where display functions write; tests swap it for a buffer
var out io.Writer = os.Stdout

// encodeJSON writes v as indented JSON
func encodeJSON(v any) {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Fprintln(out, "Error encoding JSON output")
	}
}

// DisplayIngestResult shows the ingestion ID of an accepted submission.
func DisplayIngestResult(resp *client.IngestResponse, ids []int, priority string) {
	if config.Global.Output == "json" {
		encodeJSON(resp)
		return
	}

	fmt.Fprintf(out, "Submission accepted:\n")
	fmt.Fprintf(out, "  Ingestion ID: %s\n", resp.IngestionID)
	fmt.Fprintf(out, "  Priority:     %s\n", priority)
	fmt.Fprintf(out, "  Identifiers:  %s\n", humanize.Comma(int64(len(ids))))
	fmt.Fprintf(out, "\nCheck progress with: ingestctl status %s\n", resp.IngestionID)
}

// DisplayStatus shows the overall status of a submission and a row per
// batch. Batch IDs are truncated unless --verbose is set.
func DisplayStatus(report *ingestion.StatusReport) {
	if config.Global.Output == "json" {
		encodeJSON(report)
		return
	}

	completed := 0
	for _, b := range report.Batches {
		if b.Status == ingestion.StatusCompleted {
			completed++
		}
	}

	fmt.Fprintf(out, "Ingestion: %s\n", report.IngestionID)
	fmt.Fprintf(out, "Status:    %s (%d/%d batches completed)\n\n",
		report.Status, completed, len(report.Batches))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "BATCH ID\tIDS\tSTATUS")
	for _, b := range report.Batches {
		batchID := internalutils.TruncateIDSafe(b.ID)
		ids := utils.FormatIDs(b.IDs, utils.MaxDisplayedIDs)
		if config.Global.Verbose {
			batchID = b.ID
			ids = utils.FormatIDs(b.IDs, 0)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", batchID, ids, b.Status)
	}
}

// infoOutput is the combined JSON document of the info command
type infoOutput struct {
	Health    *client.HealthInfo  `json:"health"`
	Scheduler *scheduler.Info     `json:"scheduler"`
	Resources *resources.Snapshot `json:"resources,omitempty"`
}

// DisplayInfo shows daemon health together with scheduler state. snapshot
// may be nil, in which case the resources section is omitted.
func DisplayInfo(health *client.HealthInfo, info *scheduler.Info, snapshot *resources.Snapshot) {
	if config.Global.Output == "json" {
		encodeJSON(infoOutput{Health: health, Scheduler: info, Resources: snapshot})
		return
	}

	fmt.Fprintf(out, "Daemon:\n")
	fmt.Fprintf(out, "  Status:  %s\n", health.Status)
	fmt.Fprintf(out, "  Version: %s\n", health.Version)
	if uptime, err := time.ParseDuration(health.Uptime); err == nil {
		started := health.Timestamp.Add(-uptime)
		fmt.Fprintf(out, "  Uptime:  %s (started %s)\n", utils.FormatDuration(uptime), humanize.Time(started))
	} else {
		fmt.Fprintf(out, "  Uptime:  %s\n", health.Uptime)
	}

	if snapshot != nil {
		fmt.Fprintf(out, "\nResources:\n")
		fmt.Fprintf(out, "  CPU cores:  %d\n", snapshot.CPUCores)
		fmt.Fprintf(out, "  Memory:     %s / %s (%.1f%%)\n",
			humanize.IBytes(snapshot.MemoryUsed), humanize.IBytes(snapshot.MemoryTotal), snapshot.MemoryUsage)
		fmt.Fprintf(out, "  Goroutines: %d\n", snapshot.GoRoutines)
		if config.Global.Verbose {
			fmt.Fprintf(out, "  Go heap:    %s (sys %s)\n", humanize.IBytes(snapshot.GoMemAlloc), humanize.IBytes(snapshot.GoMemSys))
			fmt.Fprintf(out, "  GC cycles:  %d (last pause %.2fms)\n", snapshot.GoGCCycles, snapshot.GoGCPause)
		}
	}

	fmt.Fprintf(out, "\nScheduler:\n")
	fmt.Fprintf(out, "  Dispatch loop: %s\n", info.LoopState)
	fmt.Fprintf(out, "  Queue depth:   %s\n", humanize.Comma(int64(info.QueueDepth)))
	fmt.Fprintf(out, "  Submissions:   %s\n", humanize.Comma(int64(info.Submissions)))
	fmt.Fprintf(out, "  Batch size:    %d\n", info.BatchSize)
	fmt.Fprintf(out, "  Rate limit:    %v\n", time.Duration(info.RateLimitMs)*time.Millisecond)
	fmt.Fprintf(out, "  Process delay: %v per id\n", time.Duration(info.ProcessDelayMs)*time.Millisecond)

	if len(info.ByStatus) == 0 {
		return
	}

	statuses := make([]string, 0, len(info.ByStatus))
	for s := range info.ByStatus {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "STATUS\tSUBMISSIONS")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\n", s, humanize.Comma(int64(info.ByStatus[ingestion.Status(s)])))
	}
}
