// Package utils provides watch mode functionality for continuous CLI monitoring.
//
// Watch mode reruns a display function every 2 seconds, clearing the
// terminal between updates, until SIGINT or SIGTERM.
package utils

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/ingest/internal/logging"
)

// WatchInterval is the refresh period of watch mode
const WatchInterval = 2 * time.Second

// RunWithWatch executes fn once, or repeatedly in watch mode until the user
// interrupts. Errors after the first successful run are logged and the watch
// continues, so a daemon restart does not end the session.
func RunWithWatch(fn func() error, enableWatch bool) error {
	if !enableWatch {
		return fn()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(WatchInterval)
	defer ticker.Stop()

	fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
	if err := fn(); err != nil {
		return err
	}

	for {
		select {
		case <-ticker.C:
			fmt.Print("\033[2J\033[H")
			if err := fn(); err != nil {
				logging.Error("Error updating display: %v", err)
				continue
			}
		case <-sigChan:
			fmt.Println("\nWatch mode interrupted")
			return nil
		}
	}
}
