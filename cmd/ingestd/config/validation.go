// Package config handles configuration validation for the ingestion daemon.
//
// Validation parses the API bind address, checks scheduler tuning against
// its operational bounds and confirms the log level before any component is
// constructed.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/concave-dev/ingest/internal/logging"
	"github.com/concave-dev/ingest/internal/validate"
)

// InitializeConfig applies environment variable overrides. Fields already set
// by a flag are left alone.
func InitializeConfig() {
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}

	applyIntEnv("BATCH_SIZE", BatchSizeField, &Global.BatchSize)
	applyIntEnv("RATE_LIMIT_MS", RateLimitField, &Global.RateLimitMs)
	applyIntEnv("PROCESS_DELAY_MS", ProcessDelayField, &Global.ProcessDelayMs)
}

// applyIntEnv overrides target with the integer value of the named
// environment variable unless the field was set on the command line.
func applyIntEnv(name string, field ConfigField, target *int) {
	raw := os.Getenv(name)
	if raw == "" || Global.IsExplicitlySet(field) {
		return
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logging.Warn("Invalid %s environment variable '%s', using default: %d", name, raw, *target)
		return
	}

	*target = value
	logging.Info("%s environment variable detected, setting to %d", name, value)
}

// ValidateConfig validates and normalizes the daemon configuration before
// startup. On success APIAddr holds the bare host and APIPort the port.
func ValidateConfig() error {
	apiNetAddr, err := validate.ParseBindAddress(Global.APIAddr)
	if err != nil {
		logging.Error("Invalid API address '%s': %v", Global.APIAddr, err)
		return fmt.Errorf("invalid API address: %w", err)
	}

	// Clients need a known port to poll status
	if err := validate.ValidatePortRange(apiNetAddr.Port); err != nil {
		logging.Error("API port cannot be 0 (auto-assigned)")
		return fmt.Errorf("API address requires specific port (not 0): %w", err)
	}

	Global.APIAddr = apiNetAddr.Host
	Global.APIPort = apiNetAddr.Port

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s'", Global.LogLevel)
		return err
	}

	if Global.RateLimitMs < 0 || Global.ProcessDelayMs < 0 {
		logging.Error("Rate limit and process delay cannot be negative")
		return fmt.Errorf("rate-limit-ms and process-delay-ms must be >= 0, got: %d and %d",
			Global.RateLimitMs, Global.ProcessDelayMs)
	}

	if err := Global.SchedulerConfig().Validate(); err != nil {
		logging.Error("Invalid scheduler configuration: %v", err)
		return fmt.Errorf("invalid scheduler configuration: %w", err)
	}

	return nil
}
