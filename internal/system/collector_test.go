package system

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProbe() *Probe {
	return &Probe{
		VirtualMemory: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{Total: 8 * mib, Free: 2 * mib}, nil
		},
		HostInfo: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{Hostname: "box", OS: "linux"}, nil
		},
		Uptime: func(context.Context) (uint64, error) { return 90, nil },
		LoadAvg: func(context.Context) (*load.AvgStat, error) {
			return &load.AvgStat{Load1: 0.5, Load5: 0.25, Load15: 0.125}, nil
		},
		CPUCount: func(context.Context) (int, error) { return 4, nil },
	}
}

func TestCollectMemory(t *testing.T) {
	got, err := fakeProbe().CollectMemory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &MemoryInfo{Total: "8.00", Used: "6.00", Free: "2.00"}, got)
}

func TestCollectSystem(t *testing.T) {
	got, err := fakeProbe().CollectSystem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &SystemInfo{Hostname: "box", Platform: "linux", Uptime: "1.50 minutes", CPUs: 4}, got)
}

func TestCollectInfo(t *testing.T) {
	got, err := fakeProbe().CollectInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "box", got.Hostname)
	assert.Equal(t, "linux", got.Platform)
	assert.Equal(t, uint64(90), got.Uptime)
	assert.Equal(t, runtime.Version(), got.GoVersion)
}

func TestCollectMetrics(t *testing.T) {
	got, err := fakeProbe().CollectMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Metrics{
		FreeMemory:         2 * mib,
		TotalMemory:        8 * mib,
		UsedMemory:         6 * mib,
		MemoryUsagePercent: "75.00",
		CPULoad:            [3]float64{0.5, 0.25, 0.125},
		Uptime:             90,
	}, got)
}

func TestCollectMetricsZeroTotal(t *testing.T) {
	p := fakeProbe()
	p.VirtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{}, nil
	}
	got, err := p.CollectMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.00", got.MemoryUsagePercent)
}

func TestProbeErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		fail    func(p *Probe)
		collect func(p *Probe) error
		probe   string
	}{
		{
			name: "memory",
			fail: func(p *Probe) { p.VirtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) { return nil, boom } },
			collect: func(p *Probe) error {
				_, err := p.CollectMemory(context.Background())
				return err
			},
			probe: "memory",
		},
		{
			name: "host",
			fail: func(p *Probe) { p.HostInfo = func(context.Context) (*host.InfoStat, error) { return nil, boom } },
			collect: func(p *Probe) error {
				_, err := p.CollectSystem(context.Background())
				return err
			},
			probe: "host",
		},
		{
			name: "cpu count",
			fail: func(p *Probe) { p.CPUCount = func(context.Context) (int, error) { return 0, boom } },
			collect: func(p *Probe) error {
				_, err := p.CollectSystem(context.Background())
				return err
			},
			probe: "cpu",
		},
		{
			name: "uptime",
			fail: func(p *Probe) { p.Uptime = func(context.Context) (uint64, error) { return 0, boom } },
			collect: func(p *Probe) error {
				_, err := p.CollectInfo(context.Background())
				return err
			},
			probe: "uptime",
		},
		{
			name: "load",
			fail: func(p *Probe) { p.LoadAvg = func(context.Context) (*load.AvgStat, error) { return nil, boom } },
			collect: func(p *Probe) error {
				_, err := p.CollectMetrics(context.Background())
				return err
			},
			probe: "load",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fakeProbe()
			tt.fail(p)
			err := tt.collect(p)
			require.ErrorIs(t, err, boom)

			var pe *ProbeError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.probe, pe.Probe)
		})
	}
}
