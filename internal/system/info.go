package system

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"sysutil/internal/runner"
)

// Collector gathers SystemInfo
type Collector struct {
	Caps   Capabilities
	Runner runner.Runner
	GOOS   string

	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	bootTime func(ctx context.Context) (uint64, error)
	now      func() time.Time
}

// NewCollector returns a Collector backed by gopsutil and the given runner
func NewCollector(caps Capabilities, r runner.Runner) *Collector {
	return &Collector{
		Caps:     caps,
		Runner:   r,
		GOOS:     runtime.GOOS,
		hostInfo: host.InfoWithContext,
		bootTime: host.BootTimeWithContext,
		now:      time.Now,
	}
}

// Collect returns a fresh snapshot. Missing facilities only drop fields.
func (c *Collector) Collect(ctx context.Context) SystemInfo {
	info := SystemInfo{
		Platform:       platformName(c.GOOS),
		Architecture:   runtime.GOARCH,
		RuntimeVersion: runtime.Version(),
		CPUCount:       runtime.NumCPU(),
	}

	if hostInfo, err := c.hostInfo(ctx); err != nil {
		slog.Debug("host info unavailable", "err", err)
	} else {
		info.PlatformRelease = hostInfo.KernelVersion
		info.PlatformVersion = strings.TrimSpace(hostInfo.Platform + " " + hostInfo.PlatformVersion)
		if hostInfo.KernelArch != "" {
			info.Architecture = hostInfo.KernelArch
		}
		info.Hostname = hostInfo.Hostname
	}
	if info.Hostname == "" {
		info.Hostname, _ = os.Hostname()
	}

	c.fillUptime(ctx, &info)
	return info
}

func (c *Collector) fillUptime(ctx context.Context, info *SystemInfo) {
	if c.Caps.BootTime {
		boot, err := c.bootTime(ctx)
		if err == nil && boot > 0 {
			bootAt := time.Unix(int64(boot), 0)
			uptime := int64(c.now().Sub(bootAt) / time.Second)
			info.BootTime = bootAt.Local().Format(time.RFC3339)
			info.UptimeSeconds = &uptime
			return
		}
		slog.Debug("boot time query failed", "err", err)
	}

	if c.GOOS == "windows" || c.Runner == nil {
		return
	}
	res, err := c.Runner.Run(ctx, "uptime", "-p")
	if err != nil || !res.Success() {
		slog.Debug("uptime fallback failed", "err", err, "exit", res.ExitCode)
		return
	}
	info.UptimePretty = strings.TrimSpace(res.Output)
}

// platformName maps GOOS to the usual OS family name
func platformName(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return goos
	}
}
