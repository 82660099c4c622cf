package system

import (
	"context"
	"log/slog"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Probe checks once which gopsutil facilities work on this host
func Probe(ctx context.Context) Capabilities {
	var caps Capabilities

	if _, err := host.BootTimeWithContext(ctx); err != nil {
		slog.Debug("boot time unavailable", "err", err)
	} else {
		caps.BootTime = true
	}

	if _, err := process.PidsWithContext(ctx); err != nil {
		slog.Debug("process enumeration unavailable", "err", err)
	} else {
		caps.ProcessEnumeration = true
	}

	_, cpuErr := cpu.PercentWithContext(ctx, 0, false)
	_, memErr := mem.VirtualMemoryWithContext(ctx)
	switch {
	case cpuErr != nil:
		slog.Debug("cpu sampling unavailable", "err", cpuErr)
	case memErr != nil:
		slog.Debug("memory sampling unavailable", "err", memErr)
	default:
		caps.Sampling = true
	}

	slog.Debug("capability probe done",
		"boot_time", caps.BootTime,
		"process_enumeration", caps.ProcessEnumeration,
		"sampling", caps.Sampling)
	return caps
}
