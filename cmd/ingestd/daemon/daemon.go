// Package daemon implements the ingestd lifecycle: component construction,
// startup, signal handling and graceful shutdown.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/ingest/cmd/ingestd/config"
	"github.com/concave-dev/ingest/internal/api"
	configDefaults "github.com/concave-dev/ingest/internal/config"
	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/netutil"
	"github.com/concave-dev/ingest/internal/scheduler"
	"github.com/concave-dev/ingest/internal/version"
	"github.com/prometheus/client_golang/prometheus"
)

// buildAPIConfig converts daemon config to the HTTP API server config
func buildAPIConfig(sched *scheduler.Scheduler) *api.Config {
	apiConfig := api.DefaultConfig()
	apiConfig.BindAddr = config.Global.APIAddr
	apiConfig.BindPort = config.Global.APIPort
	apiConfig.Scheduler = sched
	apiConfig.Gatherer = prometheus.DefaultGatherer
	return apiConfig
}

// Run starts the scheduler and HTTP API, blocks until SIGINT/SIGTERM, then
// shuts both down.
//
// STARTUP:
//   - Scheduler with the simulated processor; metrics on the default registry
//   - HTTP API bound before the daemon reports ready, so a port conflict
//     fails startup instead of surfacing later
//
// SHUTDOWN (reverse order, bounded by DefaultShutdownTimeout):
//   - HTTP API first so no new submissions arrive
//   - Dispatch loop second; a batch interrupted in its rate limit hold
//     stays triggered
func Run() error {
	logging.SetLevel(config.Global.LogLevel)
	logging.Info("Starting Ingest daemon v%s", version.IngestdVersion)

	// net/http reports connection errors through the standard logger
	logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))

	schedConfig := config.Global.SchedulerConfig()
	processor := scheduler.NewSimulatedProcessor(schedConfig.ProcessDelay)

	sched, err := scheduler.New(schedConfig, processor, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	apiConfig := buildAPIConfig(sched)
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid API config: %w", err)
	}

	apiServer := api.NewServer(apiConfig)
	if err := apiServer.Start(); err != nil {
		if netutil.IsAddressInUseError(err) {
			logging.Error("API port %d is already in use", config.Global.APIPort)
			logging.Error("TIP: choose another port with --api=%s:<port>", config.Global.APIAddr)
		}
		return fmt.Errorf("failed to start API server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Success("Ingest daemon started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	logging.Info("Services started:")
	logging.Info("  - HTTP API: %s", apiServer.Addr())
	logging.Info("  - Scheduler: batch size %d, rate limit %v, process delay %v",
		schedConfig.BatchSize, schedConfig.RateLimit, schedConfig.ProcessDelay)

	select {
	case sig := <-sigCh:
		logging.Info("Received signal: %v", sig)
	case <-ctx.Done():
		logging.Info("Context cancelled")
	}

	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), configDefaults.DefaultShutdownTimeout)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	if err := sched.Stop(shutdownCtx); err != nil {
		logging.Error("Error stopping scheduler: %v", err)
	}

	logging.Success("Ingest daemon shutdown completed")
	return nil
}
