package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/concave-dev/ingest/internal/api"
	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

// newTestClient starts an HTTP server with handler and returns a client for it
func newTestClient(t *testing.T, handler http.Handler) *IngestAPIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewIngestAPIClient(strings.TrimPrefix(server.URL, "http://"), 2)
}

// writeJSON writes v with the given status code
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func TestIngest_Success(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody struct {
		IDs      []int  `json:"ids"`
		Priority string `json:"priority"`
	}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, map[string]string{"ingestion_id": "abc-123"})
	}))

	resp, err := c.Ingest([]int{1, 2, 3}, "HIGH")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if resp.IngestionID != "abc-123" {
		t.Errorf("IngestionID = %q, want %q", resp.IngestionID, "abc-123")
	}
	if gotMethod != http.MethodPost || gotPath != "/api/v1/ingest" {
		t.Errorf("request = %s %s, want POST /api/v1/ingest", gotMethod, gotPath)
	}
	if len(gotBody.IDs) != 3 || gotBody.Priority != "HIGH" {
		t.Errorf("body = %+v, want ids [1 2 3] priority HIGH", gotBody)
	}
}

func TestIngest_ValidationError(t *testing.T) {
	const msg = "'priority' must be one of HIGH, MEDIUM, or LOW."
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
	}))

	_, err := c.Ingest([]int{1}, "URGENT")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != msg {
		t.Errorf("Message = %q, want %q", apiErr.Message, msg)
	}
}

func TestGetStatus(t *testing.T) {
	report := ingestion.StatusReport{
		IngestionID: "abc",
		Status:      ingestion.StatusInProgress,
		Batches: []ingestion.Batch{
			{ID: "b1", IDs: []int{1, 2}, Status: ingestion.StatusCompleted},
			{ID: "b2", IDs: []int{3}, Status: ingestion.StatusNotStarted},
		},
	}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/status/abc" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Ingestion ID not found"})
			return
		}
		writeJSON(w, http.StatusOK, report)
	}))

	got, err := c.GetStatus("abc")
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if got.Status != ingestion.StatusInProgress || len(got.Batches) != 2 {
		t.Errorf("GetStatus() = %+v, want triggered with 2 batches", got)
	}
	if got.Batches[0].ID != "b1" || got.Batches[1].Status != ingestion.StatusNotStarted {
		t.Errorf("batches decoded incorrectly: %+v", got.Batches)
	}

	_, err = c.GetStatus("missing")
	if !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestGetHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthInfo{Status: "healthy", Version: "1.2.3", Uptime: "1m0s"})
	}))

	health, err := c.GetHealth()
	if err != nil {
		t.Fatalf("GetHealth() error = %v", err)
	}
	if health.Status != "healthy" || health.Version != "1.2.3" {
		t.Errorf("GetHealth() = %+v", health)
	}
}

func TestIsNotFound(t *testing.T) {
	if IsNotFound(errors.New("boom")) {
		t.Error("plain error should not be not found")
	}
	if IsNotFound(&APIError{StatusCode: http.StatusInternalServerError}) {
		t.Error("500 should not be not found")
	}
	if !IsNotFound(&APIError{StatusCode: http.StatusNotFound}) {
		t.Error("404 should be not found")
	}
}

// TestClientAgainstDaemonAPI exercises the client against the real HTTP API
// backed by a scheduler with no rate limit.
func TestClientAgainstDaemonAPI(t *testing.T) {
	sched, err := scheduler.New(&scheduler.Config{BatchSize: 2},
		scheduler.ProcessorFunc(func(ctx context.Context, id int) (scheduler.Result, error) {
			return scheduler.Result{ID: id, Data: "processed"}, nil
		}), nil)
	if err != nil {
		t.Fatalf("scheduler.New() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		sched.Stop(ctx)
	})

	apiConfig := api.DefaultConfig()
	apiConfig.Scheduler = sched
	apiConfig.Gatherer = prometheus.NewRegistry()
	c := newTestClient(t, api.NewServer(apiConfig).Router())

	resp, err := c.Ingest([]int{1, 2, 3}, "HIGH")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		report, err := c.GetStatus(resp.IngestionID)
		if err != nil {
			t.Fatalf("GetStatus() error = %v", err)
		}
		if len(report.Batches) != 2 {
			t.Fatalf("expected 2 batches, got %d", len(report.Batches))
		}
		if report.Status == ingestion.StatusCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("submission did not complete, last status %s", report.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	info, err := c.GetSchedulerInfo()
	if err != nil {
		t.Fatalf("GetSchedulerInfo() error = %v", err)
	}
	if info.Submissions != 1 || info.BatchSize != 2 {
		t.Errorf("GetSchedulerInfo() = %+v, want 1 submission with batch size 2", info)
	}

	_, err = c.Ingest([]int{0}, "HIGH")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Each ID must be an integer between 1 and 10^9 + 7." {
		t.Errorf("expected range error from daemon, got %v", err)
	}
}
