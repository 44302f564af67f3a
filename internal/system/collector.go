package system

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

const mib = 1024 * 1024

// Probe reads host facts. Zero-valued fields fall back to gopsutil.
type Probe struct {
	VirtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	HostInfo      func(ctx context.Context) (*host.InfoStat, error)
	Uptime        func(ctx context.Context) (uint64, error)
	LoadAvg       func(ctx context.Context) (*load.AvgStat, error)
	CPUCount      func(ctx context.Context) (int, error)
}

// MemoryInfo is the /api/memory payload, values in MiB.
type MemoryInfo struct {
	Total string `json:"total"`
	Used  string `json:"used"`
	Free  string `json:"free"`
}

// SystemInfo is the /api/system payload.
type SystemInfo struct {
	Hostname string `json:"hostname"`
	Platform string `json:"platform"`
	Uptime   string `json:"uptime"`
	CPUs     int    `json:"cpus"`
}

// Info is the dashboard /info payload.
type Info struct {
	Hostname  string `json:"hostname"`
	Platform  string `json:"platform"`
	Uptime    uint64 `json:"uptime"`
	GoVersion string `json:"go_version"`
}

// Metrics is the dashboard /metrics payload, memory in bytes.
type Metrics struct {
	FreeMemory         uint64     `json:"free_memory"`
	TotalMemory        uint64     `json:"total_memory"`
	UsedMemory         uint64     `json:"used_memory"`
	MemoryUsagePercent string     `json:"memory_usage_percent"`
	CPULoad            [3]float64 `json:"cpu_load"`
	Uptime             uint64     `json:"uptime"`
}

func (p *Probe) virtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	f := mem.VirtualMemoryWithContext
	if p != nil && p.VirtualMemory != nil {
		f = p.VirtualMemory
	}
	vm, err := f(ctx)
	if err != nil {
		return nil, &ProbeError{Probe: "memory", Err: err}
	}
	return vm, nil
}

func (p *Probe) hostInfo(ctx context.Context) (*host.InfoStat, error) {
	f := host.InfoWithContext
	if p != nil && p.HostInfo != nil {
		f = p.HostInfo
	}
	info, err := f(ctx)
	if err != nil {
		return nil, &ProbeError{Probe: "host", Err: err}
	}
	return info, nil
}

func (p *Probe) uptime(ctx context.Context) (uint64, error) {
	f := host.UptimeWithContext
	if p != nil && p.Uptime != nil {
		f = p.Uptime
	}
	up, err := f(ctx)
	if err != nil {
		return 0, &ProbeError{Probe: "uptime", Err: err}
	}
	return up, nil
}

func (p *Probe) loadAvg(ctx context.Context) (*load.AvgStat, error) {
	f := load.AvgWithContext
	if p != nil && p.LoadAvg != nil {
		f = p.LoadAvg
	}
	avg, err := f(ctx)
	if err != nil {
		return nil, &ProbeError{Probe: "load", Err: err}
	}
	return avg, nil
}

func (p *Probe) cpuCount(ctx context.Context) (int, error) {
	f := func(ctx context.Context) (int, error) { return cpu.CountsWithContext(ctx, true) }
	if p != nil && p.CPUCount != nil {
		f = p.CPUCount
	}
	n, err := f(ctx)
	if err != nil {
		return 0, &ProbeError{Probe: "cpu", Err: err}
	}
	return n, nil
}

func (p *Probe) CollectMemory(ctx context.Context) (*MemoryInfo, error) {
	vm, err := p.virtualMemory(ctx)
	if err != nil {
		return nil, err
	}
	used := usedBytes(vm)
	return &MemoryInfo{
		Total: fixed2(float64(vm.Total) / mib),
		Used:  fixed2(float64(used) / mib),
		Free:  fixed2(float64(vm.Free) / mib),
	}, nil
}

func (p *Probe) CollectSystem(ctx context.Context) (*SystemInfo, error) {
	info, err := p.hostInfo(ctx)
	if err != nil {
		return nil, err
	}
	up, err := p.uptime(ctx)
	if err != nil {
		return nil, err
	}
	n, err := p.cpuCount(ctx)
	if err != nil {
		return nil, err
	}
	return &SystemInfo{
		Hostname: info.Hostname,
		Platform: info.OS,
		Uptime:   fixed2(float64(up)/60) + " minutes",
		CPUs:     n,
	}, nil
}

func (p *Probe) CollectInfo(ctx context.Context) (*Info, error) {
	info, err := p.hostInfo(ctx)
	if err != nil {
		return nil, err
	}
	up, err := p.uptime(ctx)
	if err != nil {
		return nil, err
	}
	return &Info{
		Hostname:  info.Hostname,
		Platform:  info.OS,
		Uptime:    up,
		GoVersion: runtime.Version(),
	}, nil
}

func (p *Probe) CollectMetrics(ctx context.Context) (*Metrics, error) {
	vm, err := p.virtualMemory(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := p.loadAvg(ctx)
	if err != nil {
		return nil, err
	}
	up, err := p.uptime(ctx)
	if err != nil {
		return nil, err
	}

	used := usedBytes(vm)
	pct := 0.0
	if vm.Total > 0 {
		pct = float64(used) / float64(vm.Total) * 100
	}
	return &Metrics{
		FreeMemory:         vm.Free,
		TotalMemory:        vm.Total,
		UsedMemory:         used,
		MemoryUsagePercent: fixed2(pct),
		CPULoad:            [3]float64{avg.Load1, avg.Load5, avg.Load15},
		Uptime:             up,
	}, nil
}

// usedBytes is total minus free, matching what the page has always shown
// (gopsutil's Used subtracts buffers and cache as well).
func usedBytes(vm *mem.VirtualMemoryStat) uint64 {
	if vm.Free > vm.Total {
		return 0
	}
	return vm.Total - vm.Free
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ProbeError reports which host probe failed.
type ProbeError struct {
	Probe string
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s probe: %v", e.Probe, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
