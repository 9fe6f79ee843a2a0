// Package api provides the HTTP API server of the ingestion daemon. It
// exposes ingestion submission and status endpoints, scheduler introspection,
// health and Prometheus metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/netutil"
	"github.com/concave-dev/ingest/internal/version"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Server is the ingestion HTTP API server.
type Server struct {
	scheduler  Scheduler
	gatherer   prometheus.Gatherer
	httpServer *http.Server
	listener   net.Listener
	bindAddr   string
	bindPort   int
	startTime  time.Time
}

// NewServer creates a new API server instance. The config should already be
// validated.
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		scheduler: config.Scheduler,
		gatherer:  config.Gatherer,
		bindAddr:  config.BindAddr,
		bindPort:  config.BindPort,
		startTime: time.Now(),
	}
}

// Router builds the gin engine with middleware and routes installed.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	router.Use(s.loggingMiddleware())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)
	return router
}

// Start binds the listener and serves in the background. Bind failures are
// returned directly.
func (s *Server) Start() error {
	logging.Info("Starting HTTP API server on %s", net.JoinHostPort(s.bindAddr, fmt.Sprint(s.bindPort)))

	listener, err := netutil.ListenTCP(s.bindAddr, s.bindPort)
	if err != nil {
		return err
	}
	s.listener = listener

	// Port 0 binds an OS-assigned port; record the real one
	if s.bindPort == 0 {
		if port, err := netutil.ListenerPort(listener); err == nil {
			s.bindPort = port
		}
	}

	s.httpServer = &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server listening on %s", listener.Addr())
	return nil
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// serverVersion is reported by the health endpoint
var serverVersion = version.IngestdVersion
