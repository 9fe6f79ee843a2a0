// Package version provides centralized version information for the ingest
// daemon and CLI. The two binaries are versioned independently so the CLI can
// evolve without a daemon release. Versions follow semver.

package version

// IngestdVersion holds the current ingestd daemon version.
// Format: major.minor.patch[-prerelease][+build]
const IngestdVersion = "0.1.0-dev"

// IngestctlVersion holds the current ingestctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const IngestctlVersion = "0.1.0-dev"
