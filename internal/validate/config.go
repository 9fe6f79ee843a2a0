// Package validate provides configuration validation helpers shared by the
// daemon config, the CLI config and the scheduler config.
package validate

import (
	"fmt"
	"time"
)

// ValidatePortRange validates that a port number is within 1-65535.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateDurationRange validates that d lies in [min, max]. Used for the
// rate limit and processing delay where zero is a legitimate value.
func ValidateDurationRange(d, min, max time.Duration, name string) error {
	if d < min || d > max {
		return fmt.Errorf("%s must be between %v and %v, got %v", name, min, max, d)
	}
	return nil
}

// ValidateIntRange validates that n lies in [min, max].
func ValidateIntRange(n, min, max int, name string) error {
	if err := ValidateField(n, fmt.Sprintf("min=%d,max=%d", min, max)); err != nil {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, n)
	}
	return nil
}
