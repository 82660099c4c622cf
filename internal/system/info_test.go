package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysutil/internal/runner"
)

func fakeCollector(caps Capabilities, r runner.Runner, goos string) *Collector {
	c := NewCollector(caps, r)
	c.GOOS = goos
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "box",
			Platform:        "ubuntu",
			PlatformVersion: "24.04",
			KernelVersion:   "6.8.0",
			KernelArch:      "x86_64",
		}, nil
	}
	c.now = func() time.Time { return time.Unix(1_000_100, 0) }
	return c
}

func TestCollectUsesBootTime(t *testing.T) {
	c := fakeCollector(Capabilities{BootTime: true}, runner.NewFake(), "linux")
	c.bootTime = func(ctx context.Context) (uint64, error) { return 1_000_000, nil }

	info := c.Collect(context.Background())
	assert.Equal(t, "Linux", info.Platform)
	assert.Equal(t, "6.8.0", info.PlatformRelease)
	assert.Equal(t, "ubuntu 24.04", info.PlatformVersion)
	assert.Equal(t, "x86_64", info.Architecture)
	assert.Equal(t, "box", info.Hostname)
	assert.Positive(t, info.CPUCount)
	assert.NotEmpty(t, info.RuntimeVersion)
	require.NotNil(t, info.UptimeSeconds)
	assert.Equal(t, int64(100), *info.UptimeSeconds)
	assert.NotEmpty(t, info.BootTime)
	assert.Empty(t, info.UptimePretty)
}

func TestCollectFallsBackToUptimeCommand(t *testing.T) {
	fake := runner.NewFake().On("uptime -p", runner.Result{Output: "up 3 hours, 2 minutes\n"}, nil)
	c := fakeCollector(Capabilities{}, fake, "linux")

	info := c.Collect(context.Background())
	assert.Nil(t, info.UptimeSeconds)
	assert.Empty(t, info.BootTime)
	assert.Equal(t, "up 3 hours, 2 minutes", info.UptimePretty)
}

func TestCollectOmitsUptimeWhenEverythingFails(t *testing.T) {
	c := fakeCollector(Capabilities{BootTime: true}, runner.NewFake(), "linux")
	c.bootTime = func(ctx context.Context) (uint64, error) { return 0, errors.New("no /proc") }
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) { return nil, errors.New("no host") }

	info := c.Collect(context.Background())
	assert.Nil(t, info.UptimeSeconds)
	assert.Empty(t, info.UptimePretty)
	assert.Equal(t, "Linux", info.Platform)
	assert.NotEmpty(t, info.Architecture)
}

func TestCollectSkipsUptimeCommandOnWindows(t *testing.T) {
	fake := runner.NewFake()
	c := fakeCollector(Capabilities{}, fake, "windows")

	info := c.Collect(context.Background())
	assert.Empty(t, info.UptimePretty)
	assert.Empty(t, fake.Calls)
	assert.Equal(t, "Windows", info.Platform)
}
