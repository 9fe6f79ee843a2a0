// Package handlers contains the gin handler factories of the ingestion API.
//
// Each factory takes the narrow interface it needs and returns a
// gin.HandlerFunc, so handlers are tested against stubs without a running
// scheduler. Error bodies use a single {"error": "..."} shape.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/concave-dev/ingest/internal/ingestion"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/validate"
	"github.com/gin-gonic/gin"
)

// Response messages returned to API clients
const (
	MsgInvalidJSON   = "Request body must be valid JSON."
	MsgNotFound      = "Ingestion ID not found"
	MsgInternalError = "Internal server error"
)

// IngestionService accepts submissions and answers status queries.
type IngestionService interface {
	Submit(ids []int, priority ingestion.Priority) (string, error)
	Status(token string) (*ingestion.StatusReport, error)
}

// IngestRequest is the submission body. Fields are decoded loosely so
// validation can report the precise problem with each one.
type IngestRequest struct {
	IDs      any `json:"ids"`
	Priority any `json:"priority"`
}

// IngestResponse carries the token of an accepted submission.
type IngestResponse struct {
	IngestionID string `json:"ingestion_id"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleIngest validates and accepts an ingestion submission.
//
// Responses:
//   - 200 {"ingestion_id": "..."} on success
//   - 400 with the first failing validation rule (ids shape, id range, priority)
//   - 500 if the scheduler rejects an already validated request
func HandleIngest(svc IngestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IngestRequest
		// An empty body decodes as an empty object and fails on ids
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidJSON})
			return
		}

		ids, priority, err := validate.IngestRequest(req.IDs, req.Priority)
		if err != nil {
			logging.Debug("API: Rejected ingestion request: %v", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		token, err := svc.Submit(ids, ingestion.Priority(priority))
		if err != nil {
			logging.Error("API: Error handling ingestion request: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
			return
		}

		c.JSON(http.StatusOK, IngestResponse{IngestionID: token})
	}
}

// HandleStatus returns the derived status of a submission and its batches.
func HandleStatus(svc IngestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("ingestionId")

		report, err := svc.Status(token)
		if err != nil {
			if errors.Is(err, ingestion.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: MsgNotFound})
				return
			}
			logging.Error("API: Error getting status for ingestion %s: %v", logging.FormatIngestionID(token), err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgInternalError})
			return
		}

		c.JSON(http.StatusOK, report)
	}
}
