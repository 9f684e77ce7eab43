package observability

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitor_Report(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug))

	snap := monitor.Report("train")
	req.GreaterOrEqual(snap.CPUPercent, 0.0)

	// The zero monitor only reports Go runtime metrics
	bare := (&Monitor{log: slog.Default()}).Snapshot()
	req.Zero(bare.RSSBytes)
}
