// Package utils provides utility functions for the ingestctl CLI.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxDisplayedIDs caps how many identifiers a table cell shows
const MaxDisplayedIDs = 8

// FormatDuration renders d in its largest whole unit (45s, 12m, 3h, 2d).
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

// FormatIDs joins identifiers with commas. Lists longer than max are cut and
// suffixed with the number of hidden identifiers; max <= 0 shows everything.
func FormatIDs(ids []int, max int) string {
	shown := ids
	if max > 0 && len(ids) > max {
		shown = ids[:max]
	}

	parts := make([]string, len(shown))
	for i, id := range shown {
		parts[i] = strconv.Itoa(id)
	}
	out := strings.Join(parts, ",")

	if hidden := len(ids) - len(shown); hidden > 0 {
		out += fmt.Sprintf(" (+%d more)", hidden)
	}
	return out
}
