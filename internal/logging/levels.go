// Package logging provides centralized log level validation.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Every dispatch loop iteration, queue push/pop and API request
//   - INFO:  Submissions, batch transitions and server lifecycle
//   - WARN:  Rejected requests and recoverable faults
//   - ERROR: Failures requiring attention
//
// Level strings are case-sensitive and uppercase.
package logging

import "fmt"

// ValidLogLevels is the canonical set of supported log levels used by the
// daemon config, the CLI flags and the scheduler config.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
