package cpusampler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sampler keeps the last snapshot and reports utilization relative to it.
// Each Query measures the interval since the previous Query, so results
// depend on how often clients poll.
type Sampler struct {
	src Source

	mu     sync.Mutex
	last   Snapshot
	lastAt time.Time
}

// New captures the initial snapshot from src.
func New(ctx context.Context, src Source) (*Sampler, error) {
	snap, err := Sample(ctx, src)
	if err != nil {
		return nil, err
	}
	return &Sampler{src: src, last: snap, lastAt: time.Now()}, nil
}

// Query samples the counters, computes utilization against the stored
// snapshot and stores the new one. When the counters have not advanced the
// stored snapshot is kept.
func (s *Sampler) Query(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curr, err := Sample(ctx, s.src)
	if err != nil {
		return 0, err
	}

	pct, status := Utilization(s.last, curr)
	switch status {
	case NoElapsed:
		slog.Debug("cpu counters did not advance", "since", time.Since(s.lastAt))
		return pct, nil
	case CounterReset:
		slog.Warn("cpu counters went backwards, resetting baseline",
			"prev_total", s.last.TotalTicks, "curr_total", curr.TotalTicks)
	}

	s.last, s.lastAt = curr, time.Now()
	return pct, nil
}

// Last returns the stored snapshot and when it was taken.
func (s *Sampler) Last() (Snapshot, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.lastAt
}
