package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/gin-gonic/gin"
)

// stubService records submissions and serves canned status reports
type stubService struct {
	submitErr error
	statusErr error
	reports   map[string]*ingestion.StatusReport

	gotIDs      []int
	gotPriority ingestion.Priority
}

func (s *stubService) Submit(ids []int, priority ingestion.Priority) (string, error) {
	if s.submitErr != nil {
		return "", s.submitErr
	}
	s.gotIDs = ids
	s.gotPriority = priority
	return "token-1", nil
}

func (s *stubService) Status(token string) (*ingestion.StatusReport, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	report, ok := s.reports[token]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ingestion.ErrNotFound, token)
	}
	return report, nil
}

func newIngestRouter(svc IngestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/ingest", HandleIngest(svc))
	router.GET("/status/:ingestionId", HandleStatus(svc))
	return router
}

// TestHandleIngest tests submission validation and responses
func TestHandleIngest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		submitErr      error
		expectedStatus int
		expectedError  string
	}{
		{"valid request", `{"ids":[1,2,3,4,5],"priority":"HIGH"}`, nil, http.StatusOK, ""},
		{"empty body", ``, nil, http.StatusBadRequest, "'ids' must be a non-empty array of integers."},
		{"empty ids", `{"ids":[],"priority":"HIGH"}`, nil, http.StatusBadRequest, "'ids' must be a non-empty array of integers."},
		{"ids not array", `{"ids":"1,2","priority":"HIGH"}`, nil, http.StatusBadRequest, "'ids' must be a non-empty array of integers."},
		{"id too large", `{"ids":[1,1000000008],"priority":"LOW"}`, nil, http.StatusBadRequest, "Each ID must be an integer between 1 and 10^9 + 7."},
		{"fractional id", `{"ids":[2.5],"priority":"LOW"}`, nil, http.StatusBadRequest, "Each ID must be an integer between 1 and 10^9 + 7."},
		{"bad priority", `{"ids":[1],"priority":"URGENT"}`, nil, http.StatusBadRequest, "'priority' must be one of HIGH, MEDIUM, or LOW."},
		{"malformed json", `{"ids":[1`, nil, http.StatusBadRequest, MsgInvalidJSON},
		{"scheduler failure", `{"ids":[1],"priority":"MEDIUM"}`, errors.New("store unavailable"), http.StatusInternalServerError, MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{submitErr: tt.submitErr}
			router := newIngestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("HandleIngest() status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}

			if tt.expectedError != "" {
				var resp ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to parse error response: %v", err)
				}
				if resp.Error != tt.expectedError {
					t.Errorf("HandleIngest() error = %q, want %q", resp.Error, tt.expectedError)
				}
				return
			}

			var resp IngestResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.IngestionID != "token-1" {
				t.Errorf("HandleIngest() ingestion_id = %q, want %q", resp.IngestionID, "token-1")
			}
			if !reflect.DeepEqual(svc.gotIDs, []int{1, 2, 3, 4, 5}) {
				t.Errorf("Submit() ids = %v", svc.gotIDs)
			}
			if svc.gotPriority != ingestion.PriorityHigh {
				t.Errorf("Submit() priority = %q, want HIGH", svc.gotPriority)
			}
		})
	}
}

// TestHandleStatus tests status lookups
func TestHandleStatus(t *testing.T) {
	report := &ingestion.StatusReport{
		IngestionID: "abc",
		Status:      ingestion.StatusInProgress,
		Batches: []ingestion.Batch{
			{ID: "b1", IDs: []int{1, 2}, Status: ingestion.StatusCompleted},
			{ID: "b2", IDs: []int{3}, Status: ingestion.StatusInProgress},
		},
	}

	tests := []struct {
		name           string
		path           string
		statusErr      error
		expectedStatus int
	}{
		{"known token", "/status/abc", nil, http.StatusOK},
		{"unknown token", "/status/missing", nil, http.StatusNotFound},
		{"store failure", "/status/abc", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				statusErr: tt.statusErr,
				reports:   map[string]*ingestion.StatusReport{"abc": report},
			}
			router := newIngestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("HandleStatus() status = %d, want %d", w.Code, tt.expectedStatus)
			}

			switch tt.expectedStatus {
			case http.StatusOK:
				var body map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if body["ingestion_id"] != "abc" || body["status"] != "triggered" {
					t.Errorf("HandleStatus() body = %v", body)
				}
				batches, ok := body["batches"].([]any)
				if !ok || len(batches) != 2 {
					t.Fatalf("HandleStatus() batches = %v", body["batches"])
				}
				first := batches[0].(map[string]any)
				if first["batch_id"] != "b1" || first["status"] != "completed" {
					t.Errorf("HandleStatus() first batch = %v", first)
				}
			case http.StatusNotFound:
				var resp ErrorResponse
				_ = json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.Error != MsgNotFound {
					t.Errorf("HandleStatus() error = %q, want %q", resp.Error, MsgNotFound)
				}
			}
		})
	}
}
