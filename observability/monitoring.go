package observability

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// Snapshot aggregates the resource usage of the current process.
type Snapshot struct {
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
}

// Monitor reads Go runtime and OS process metrics around training and scoring.
type Monitor struct {
	log  *slog.Logger
	proc *process.Process
}

// NewMonitor attaches to the current process. When the OS metrics are not
// readable the monitor still reports the Go runtime ones.
func NewMonitor(log *slog.Logger) *Monitor {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process metrics unavailable", "err", err)
		p = nil
	}
	return &Monitor{log: log, proc: p}
}

func (m *Monitor) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	snap := Snapshot{
		AllocMemMb: mem.Alloc / 1024 / 1024,
		NumGC:      mem.NumGC,
	}
	if m.proc == nil {
		return snap
	}

	if memInfo, err := m.proc.MemoryInfo(); err != nil {
		m.log.Debug("Failed to read process memory", "err", err)
	} else {
		snap.RSSBytes = memInfo.RSS
	}
	if cpu, err := m.proc.CPUPercent(); err != nil {
		m.log.Debug("Failed to read process cpu", "err", err)
	} else {
		snap.CPUPercent = cpu
	}
	return snap
}

// Report logs a snapshot tagged with the pipeline stage that just ran.
func (m *Monitor) Report(stage string) Snapshot {
	snap := m.Snapshot()
	m.log.Info("Resource usage",
		"stage", stage,
		"alloc_mb", snap.AllocMemMb,
		"num_gc", snap.NumGC,
		"rss_bytes", snap.RSSBytes,
		"cpu_percent", snap.CPUPercent)
	return snap
}
