// Package resources provides resource snapshots of the running daemon for the
// API and the CLI's info view.
//
// A snapshot combines host memory from gopsutil with Go runtime statistics, so
// operators can see whether a long queue is the daemon struggling or just the
// rate limit doing its job.

package resources

import (
	"runtime"
	"time"

	"github.com/concave-dev/ingest/internal/logging"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot is a point-in-time resource profile of the daemon and its host.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Host
	CPUCores        int     `json:"cpuCores"`
	MemoryTotal     uint64  `json:"memoryTotal"`     // Total physical memory in bytes
	MemoryUsed      uint64  `json:"memoryUsed"`      // Used physical memory in bytes
	MemoryAvailable uint64  `json:"memoryAvailable"` // Memory available for new processes in bytes
	MemoryUsage     float64 `json:"memoryUsage"`     // Used percentage (0-100)

	// Go runtime
	GoRoutines int     `json:"goRoutines"`
	GoMemAlloc uint64  `json:"goMemAlloc"`
	GoMemSys   uint64  `json:"goMemSys"`
	GoGCCycles uint32  `json:"goGcCycles"`
	GoGCPause  float64 `json:"goGcPause"` // Most recent GC pause in milliseconds

	Uptime time.Duration `json:"uptime"`
}

// virtualMemory is swapped in tests
var virtualMemory = mem.VirtualMemory

// Gather collects a snapshot. If host memory cannot be read the memory fields
// fall back to Go runtime figures.
func Gather(startTime time.Time) *Snapshot {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	virtualMem, err := virtualMemory()
	if err != nil {
		logging.Warn("Resources: Failed to read host memory stats: %v", err)
		virtualMem = &mem.VirtualMemoryStat{
			Total:     memStats.Sys,
			Used:      memStats.Alloc,
			Available: memStats.Sys - memStats.Alloc,
		}
		if memStats.Sys > 0 {
			virtualMem.UsedPercent = float64(memStats.Alloc) / float64(memStats.Sys) * 100
		}
	}

	snapshot := &Snapshot{
		Timestamp: time.Now(),

		CPUCores:        runtime.NumCPU(),
		MemoryTotal:     virtualMem.Total,
		MemoryUsed:      virtualMem.Used,
		MemoryAvailable: virtualMem.Available,
		MemoryUsage:     virtualMem.UsedPercent,

		GoRoutines: runtime.NumGoroutine(),
		GoMemAlloc: memStats.Alloc,
		GoMemSys:   memStats.Sys,
		GoGCCycles: memStats.NumGC,
		GoGCPause:  float64(memStats.PauseNs[(memStats.NumGC+255)%256]) / 1e6,

		Uptime: time.Since(startTime),
	}

	logging.Debug("Resources: CPU=%d, Memory=%dMB, Goroutines=%d",
		snapshot.CPUCores, snapshot.MemoryTotal/(1024*1024), snapshot.GoRoutines)

	return snapshot
}
