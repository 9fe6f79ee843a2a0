// Package config provides configuration management for the ingestion daemon.
//
// Values arrive from cobra flags, then environment overrides fill in anything
// the user did not set on the command line. The package tracks which fields
// were set explicitly so a flag always wins over the environment.
package config

import (
	"time"

	configDefaults "github.com/concave-dev/ingest/internal/config"
	"github.com/concave-dev/ingest/internal/scheduler"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	APIAddrField ConfigField = iota
	BatchSizeField
	RateLimitField
	ProcessDelayField
	LogFileField
)

const (
	DefaultAPI            = configDefaults.DefaultBindAddr + ":8000" // Default API address
	DefaultLogLevel       = configDefaults.DefaultLogLevel           // Default log level
	DefaultBatchSize      = configDefaults.DefaultBatchSize          // Default identifiers per batch
	DefaultRateLimitMs    = int(configDefaults.DefaultRateLimit / time.Millisecond)
	DefaultProcessDelayMs = int(configDefaults.DefaultProcessDelay / time.Millisecond)
)

// Config holds all daemon configuration values
type Config struct {
	APIAddr        string // HTTP API server address, "host:port" until validated
	APIPort        int    // HTTP API server port (derived from APIAddr)
	BatchSize      int    // Maximum identifiers per batch
	RateLimitMs    int    // Minimum milliseconds between batch dispatches
	ProcessDelayMs int    // Simulated processing milliseconds per identifier
	LogLevel       string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile        string // Optional log file path

	// Flags to track if values were explicitly set by user
	apiAddrExplicitlySet      bool
	batchSizeExplicitlySet    bool
	rateLimitExplicitlySet    bool
	processDelayExplicitlySet bool
	logFileExplicitlySet      bool
}

// Global configuration instance
var Global Config

// SetExplicitlySet marks a configuration field as explicitly set by the user.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case APIAddrField:
		c.apiAddrExplicitlySet = value
	case BatchSizeField:
		c.batchSizeExplicitlySet = value
	case RateLimitField:
		c.rateLimitExplicitlySet = value
	case ProcessDelayField:
		c.processDelayExplicitlySet = value
	case LogFileField:
		c.logFileExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set
// by the user. Environment overrides skip fields that return true.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case APIAddrField:
		return c.apiAddrExplicitlySet
	case BatchSizeField:
		return c.batchSizeExplicitlySet
	case RateLimitField:
		return c.rateLimitExplicitlySet
	case ProcessDelayField:
		return c.processDelayExplicitlySet
	case LogFileField:
		return c.logFileExplicitlySet
	}
	return false
}

// SchedulerConfig converts the daemon settings into a scheduler config.
func (c *Config) SchedulerConfig() *scheduler.Config {
	return &scheduler.Config{
		BatchSize:    c.BatchSize,
		RateLimit:    time.Duration(c.RateLimitMs) * time.Millisecond,
		ProcessDelay: time.Duration(c.ProcessDelayMs) * time.Millisecond,
	}
}
