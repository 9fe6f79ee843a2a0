package handlers

import (
	"net/http"

	"github.com/concave-dev/ingest/internal/scheduler"
	"github.com/gin-gonic/gin"
)

// SchedulerInfoProvider exposes a summary of the scheduler state.
type SchedulerInfoProvider interface {
	Info() scheduler.Info
}

// HandleSchedulerInfo returns the dispatch loop state, queue depth,
// submission counts and scheduling parameters.
func HandleSchedulerInfo(provider SchedulerInfoProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, provider.Info())
	}
}
