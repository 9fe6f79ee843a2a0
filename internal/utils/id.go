// Package utils provides common utility functions shared by the ingestion
// daemon and CLI.
//
// This file implements token generation for submissions and batches. Tokens
// are random UUIDv4 strings, the format clients of the ingestion API
// have always received.
//
// Display code uses TruncateIDSafe to show a 12-character short form in logs
// and tables, similar to Docker short IDs.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ShortIDLength is the number of characters shown for truncated tokens.
const ShortIDLength = 12

// GenerateID creates a unique token for a submission or batch.
//
// Returns format: "0f8fad5b-d9cb-469f-a165-70867728950e"
func GenerateID() string {
	return uuid.NewString()
}

// TruncateIDSafe returns the short display form of a token. Hyphens are
// stripped before truncation.
func TruncateIDSafe(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) <= ShortIDLength {
		return compact
	}
	return compact[:ShortIDLength]
}

// IsValidID reports whether id parses as a UUID token.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
