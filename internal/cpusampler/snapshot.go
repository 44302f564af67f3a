package cpusampler

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/cpu"
)

// ticksPerSecond converts gopsutil's per-core seconds back into USER_HZ ticks.
const ticksPerSecond = 100

// Snapshot holds cumulative CPU counters summed over every logical core.
type Snapshot struct {
	IdleTicks  uint64 `json:"idle_ticks"`
	TotalTicks uint64 `json:"total_ticks"`
}

// Source reports per-core cumulative CPU times since boot.
type Source interface {
	Times(ctx context.Context) ([]cpu.TimesStat, error)
}

// HostSource reads the counters of the local machine.
type HostSource struct{}

func (HostSource) Times(ctx context.Context) ([]cpu.TimesStat, error) {
	return cpu.TimesWithContext(ctx, true)
}

// Sample sums idle time and total time across all cores reported by src.
func Sample(ctx context.Context, src Source) (Snapshot, error) {
	times, err := src.Times(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading cpu times: %w", err)
	}
	if len(times) == 0 {
		return Snapshot{}, fmt.Errorf("reading cpu times: no cores reported")
	}

	var s Snapshot
	for _, core := range times {
		s.IdleTicks += toTicks(core.Idle)
		s.TotalTicks += toTicks(core.User) +
			toTicks(core.Nice) +
			toTicks(core.System) +
			toTicks(core.Idle) +
			toTicks(core.Iowait) +
			toTicks(core.Irq) +
			toTicks(core.Softirq) +
			toTicks(core.Steal)
	}
	return s, nil
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * ticksPerSecond))
}

// Status qualifies the result of Utilization.
type Status int

const (
	// OK means the value was computed from a valid interval.
	OK Status = iota
	// NoElapsed means the counters did not advance between the snapshots.
	NoElapsed
	// CounterReset means a counter went backwards between the snapshots.
	CounterReset
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case NoElapsed:
		return "no_elapsed"
	case CounterReset:
		return "counter_reset"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Utilization returns the busy percentage between prev and curr as
// 100 - floor(100*idleDelta/totalDelta). It returns 0 when the interval is
// empty or a counter went backwards; the Status tells the two apart.
func Utilization(prev, curr Snapshot) (int, Status) {
	if curr.TotalTicks < prev.TotalTicks || curr.IdleTicks < prev.IdleTicks {
		return 0, CounterReset
	}
	totalDelta := curr.TotalTicks - prev.TotalTicks
	if totalDelta == 0 {
		return 0, NoElapsed
	}
	idleDelta := curr.IdleTicks - prev.IdleTicks
	if idleDelta > totalDelta {
		idleDelta = totalDelta
	}
	return 100 - int(100*idleDelta/totalDelta), OK
}
