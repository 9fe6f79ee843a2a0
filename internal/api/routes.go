package api

import (
	"github.com/concave-dev/ingest/internal/api/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Configures all API routes. The ingestion endpoints are served both at the
// root, where existing clients call them, and under /api/v1.
func (s *Server) setupRoutes(router *gin.Engine) {
	ingest := handlers.HandleIngest(s.scheduler)
	status := handlers.HandleStatus(s.scheduler)

	router.POST("/ingest", ingest)
	router.GET("/status/:ingestionId", status)

	// API version prefix
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HandleHealth(serverVersion, s.startTime))
		v1.GET("/resources", handlers.HandleResources(s.startTime))
		v1.POST("/ingest", ingest)
		v1.GET("/status/:ingestionId", status)
		v1.GET("/scheduler", handlers.HandleSchedulerInfo(s.scheduler))
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}
