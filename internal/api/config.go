// Package api provides the HTTP API server of the ingestion daemon.
//
// This file defines the server configuration: where to bind and which
// scheduler and metrics gatherer back the endpoints. Validation runs before
// the server starts so a bad address or missing dependency is reported at
// startup rather than on the first request.
package api

import (
	"fmt"

	"github.com/concave-dev/ingest/internal/api/handlers"
	"github.com/concave-dev/ingest/internal/config"
	"github.com/concave-dev/ingest/internal/validate"
	"github.com/prometheus/client_golang/prometheus"
)

// Scheduler is the ingestion backend the API serves: submissions, status
// queries and scheduler introspection.
type Scheduler interface {
	handlers.IngestionService
	handlers.SchedulerInfoProvider
}

// Config holds the parameters required to run the HTTP API server.
//
// TODO: Add support for TLS/HTTPS configuration (cert/key files)
type Config struct {
	BindAddr  string              // HTTP server bind address (e.g., "0.0.0.0")
	BindPort  int                 // HTTP server bind port, 0 for an OS-assigned port
	Scheduler Scheduler           // Ingestion backend
	Gatherer  prometheus.Gatherer // Source for the /metrics endpoint
}

// DefaultConfig returns a Config bound to the service defaults. Scheduler
// must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:  config.DefaultBindAddr,
		BindPort:  config.DefaultAPIPort,
		Scheduler: nil, // Must be set by caller
		Gatherer:  prometheus.DefaultGatherer,
	}
}

// Validate checks that the bind settings are usable and every dependency is
// wired.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateField(c.BindAddr, "ip"); err != nil {
		return fmt.Errorf("bind address must be an IP address: %s", c.BindAddr)
	}
	if err := validate.ValidateField(c.BindPort, "min=0,max=65535"); err != nil {
		return fmt.Errorf("bind port validation failed: port %d out of range", c.BindPort)
	}
	if c.Scheduler == nil {
		return fmt.Errorf("scheduler cannot be nil")
	}
	if c.Gatherer == nil {
		return fmt.Errorf("metrics gatherer cannot be nil")
	}
	return nil
}
