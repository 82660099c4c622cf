package system

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Sampler takes short CPU/RAM series
type Sampler struct {
	Available bool

	cpuPercent func(ctx context.Context, interval time.Duration) (float64, error)
	memPercent func(ctx context.Context) (float64, error)
	now        func() time.Time
}

// NewSampler returns a Sampler backed by gopsutil
func NewSampler(caps Capabilities) *Sampler {
	return &Sampler{
		Available:  caps.Sampling,
		cpuPercent: GetCPUPercent,
		memPercent: GetMemoryPercent,
		now:        time.Now,
	}
}

// Monitor blocks for about duration and returns floor(duration/interval)
// samples. The series is empty when sampling is unavailable.
func (s *Sampler) Monitor(ctx context.Context, duration, interval time.Duration) []Sample {
	if !s.Available || interval <= 0 {
		return []Sample{}
	}

	// baseline for the first delta
	if _, err := s.cpuPercent(ctx, 0); err != nil {
		slog.Debug("cpu warm-up reading failed", "err", err)
	}

	n := int(duration / interval)
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		cpuPercent, err := s.cpuPercent(ctx, interval)
		if err != nil {
			slog.Debug("cpu reading failed", "err", err)
		}
		memPercent, err := s.memPercent(ctx)
		if err != nil {
			slog.Debug("memory reading failed", "err", err)
		}
		samples = append(samples, Sample{
			Timestamp:  s.now().Local().Format(time.RFC3339),
			CPUPercent: cpuPercent,
			MemPercent: memPercent,
		})
	}
	return samples
}

// GetCPUPercent returns total CPU usage over interval. A zero interval
// compares against the previous call.
func GetCPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	cpuPercent, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to get CPU usage: %w", err)
	}
	if len(cpuPercent) == 0 {
		return 0, fmt.Errorf("no CPU usage reported")
	}
	return cpuPercent[0], nil
}

// GetMemoryPercent returns the used share of physical memory
func GetMemoryPercent(ctx context.Context) (float64, error) {
	memStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get memory info: %w", err)
	}
	return memStat.UsedPercent, nil
}
