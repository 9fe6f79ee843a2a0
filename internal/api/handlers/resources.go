package handlers

import (
	"net/http"
	"time"

	"github.com/concave-dev/ingest/internal/resources"
	"github.com/gin-gonic/gin"
)

// HandleResources returns a resource snapshot of the daemon and its host.
func HandleResources(startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resources.Gather(startTime))
	}
}
