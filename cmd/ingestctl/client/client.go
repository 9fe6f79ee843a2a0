// Package client provides the HTTP client the ingestctl CLI uses to talk to
// the ingestd API.
//
// IngestAPIClient wraps a Resty client configured with timeouts, retries on
// connection failures and structured debug logging of every request. Response
// bodies decode into the same types the daemon serves, so the CLI and the API
// cannot drift apart on field names.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/concave-dev/ingest/cmd/ingestctl/config"
	"github.com/concave-dev/ingest/cmd/ingestctl/utils"
	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/resources"
	"github.com/concave-dev/ingest/internal/scheduler"
	"github.com/go-resty/resty/v2"
)

// IngestResponse is the API response for an accepted submission.
type IngestResponse struct {
	IngestionID string `json:"ingestion_id"`
}

// HealthInfo is the API health check response.
type HealthInfo struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

// errorBody is the body of every non-2xx API response.
type errorBody struct {
	Error string `json:"error"`
}

// APIError is returned when the daemon answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IngestAPIClient communicates with the ingestd REST API.
type IngestAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewIngestAPIClient creates an API client for the daemon at apiAddr
// ("host:port") with the given timeout in seconds.
func NewIngestAPIClient(apiAddr string, timeout int) *IngestAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s/api/v1", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("ingestctl/%s", config.Version))

	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &IngestAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// checkResponse converts transport failures and non-2xx responses into errors.
func (api *IngestAPIClient) checkResponse(resp *resty.Response, err error, apiErr *errorBody) error {
	if err != nil {
		return fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}
	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = resp.String()
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return nil
}

// Ingest submits identifiers at the given priority and returns the
// ingestion ID.
func (api *IngestAPIClient) Ingest(ids []int, priority string) (*IngestResponse, error) {
	var response IngestResponse
	var apiErr errorBody

	payload := map[string]any{
		"ids":      ids,
		"priority": priority,
	}

	resp, err := api.client.R().
		SetBody(payload).
		SetResult(&response).
		SetError(&apiErr).
		Post("/ingest")

	if err := api.checkResponse(resp, err, &apiErr); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetStatus fetches the status report of a submission.
func (api *IngestAPIClient) GetStatus(ingestionID string) (*ingestion.StatusReport, error) {
	var report ingestion.StatusReport
	var apiErr errorBody

	resp, err := api.client.R().
		SetResult(&report).
		SetError(&apiErr).
		Get("/status/" + url.PathEscape(ingestionID))

	if err := api.checkResponse(resp, err, &apiErr); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetSchedulerInfo fetches the scheduler summary.
func (api *IngestAPIClient) GetSchedulerInfo() (*scheduler.Info, error) {
	var info scheduler.Info
	var apiErr errorBody

	resp, err := api.client.R().
		SetResult(&info).
		SetError(&apiErr).
		Get("/scheduler")

	if err := api.checkResponse(resp, err, &apiErr); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetHealth fetches the daemon health check.
func (api *IngestAPIClient) GetHealth() (*HealthInfo, error) {
	var health HealthInfo
	var apiErr errorBody

	resp, err := api.client.R().
		SetResult(&health).
		SetError(&apiErr).
		Get("/health")

	if err := api.checkResponse(resp, err, &apiErr); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetResources fetches the daemon's resource snapshot.
func (api *IngestAPIClient) GetResources() (*resources.Snapshot, error) {
	var snapshot resources.Snapshot
	var apiErr errorBody

	resp, err := api.client.R().
		SetResult(&snapshot).
		SetError(&apiErr).
		Get("/resources")

	if err := api.checkResponse(resp, err, &apiErr); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateAPIClient creates an API client from the global CLI configuration.
func CreateAPIClient() *IngestAPIClient {
	return NewIngestAPIClient(config.Global.APIAddr, config.Global.Timeout)
}
