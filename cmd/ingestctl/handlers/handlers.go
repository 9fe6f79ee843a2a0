// Package handlers provides command handler functions for ingestctl.
//
// Each handler has the cobra RunE signature: it configures CLI logging,
// validates input, calls the API through the client package and renders the
// result through the display package.
//
// - ingest.go: submission and status polling
// - info.go: daemon health and scheduler state
package handlers
