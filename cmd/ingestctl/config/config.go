// Package config provides configuration management for the ingestctl CLI.
package config

import "github.com/concave-dev/ingest/internal/version"

const (
	DefaultAPIAddr = "127.0.0.1:8000" // Default API server address (routable)
)

// Version returns the current ingestctl CLI version from the centralized version package
var Version = version.IngestctlVersion

// Global holds the global CLI configuration
var Global struct {
	APIAddr  string // Address of the ingestd API server to connect to
	LogLevel string // Log level for CLI operations
	Timeout  int    // Connection timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Ingest holds the ingest command configuration
var Ingest struct {
	IDs      []int  // Identifiers to submit
	Priority string // HIGH, MEDIUM or LOW
}

// Status holds the status command configuration
var Status struct {
	Watch bool // Enable watch mode for live updates
}
