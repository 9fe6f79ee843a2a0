// Package utils contains utility functions for the ingestion daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the ingestd ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░░░░░░
 ░▀█▀░█▀█░█▀▀░█▀▀░█▀▀░▀█▀░░
 ░░█░░█░█░█░█░█▀▀░▀▀█░░█░░░
 ░▀▀▀░▀░▀░▀▀▀░▀▀▀░▀▀▀░░▀░░░
 ░░░░░░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n Ingest v%s - Prioritized Batch Ingestion\n", version)
	fmt.Println(" Rate-limited batch processing with status tracking")
	fmt.Println()
}
