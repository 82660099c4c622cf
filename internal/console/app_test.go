package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysutil/internal/envstore"
	"sysutil/internal/netprobe"
	"sysutil/internal/system"
)

type fakeInfo struct{}

func (fakeInfo) Collect(ctx context.Context) system.SystemInfo {
	return system.SystemInfo{Platform: "Linux", Hostname: "höst"}
}

type fakeProcs struct{ records []system.ProcessRecord }

func (f fakeProcs) List(ctx context.Context, topN int) []system.ProcessRecord { return f.records }

type fakePinger struct{ res netprobe.PingResult }

func (f fakePinger) Ping(ctx context.Context, host string, timeoutSec int) netprobe.PingResult {
	res := f.res
	res.Host, res.Target = host, host
	return res
}

type fakeSampler struct{ samples []system.Sample }

func (f fakeSampler) Monitor(ctx context.Context, d, i time.Duration) []system.Sample {
	return f.samples
}

func newTestApp(input string) (*App, *bytes.Buffer, *envstore.Map) {
	out := &bytes.Buffer{}
	env := envstore.NewMap(map[string]string{"HOME": "/home/test"})
	app := NewApp(strings.NewReader(input), out, nil)
	app.Info = fakeInfo{}
	app.Processes = fakeProcs{}
	app.Pinger = fakePinger{}
	app.Sampler = fakeSampler{}
	app.Env = env
	app.Options = Options{TopN: 15, PingTimeoutSec: 2, MonitorDuration: 10 * time.Second, MonitorInterval: time.Second}
	return app, out, env
}

func TestRunExit(t *testing.T) {
	app, out, _ := newTestApp("0\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "System Utility")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunEOFEndsCleanly(t *testing.T) {
	app, out, _ := newTestApp("")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunInvalidChoiceReprompts(t *testing.T) {
	app, out, _ := newTestApp("9\nabc\n\n0\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid choice."))
}

func TestRunSystemInfoKeepsUnicode(t *testing.T) {
	app, out, _ := newTestApp("1\n0\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"hostname": "höst"`)
	assert.Contains(t, out.String(), `"platform": "Linux"`)
}

func TestRunProcessesFormatsRSS(t *testing.T) {
	rss := uint64(2048)
	pid := int32(7)
	app, out, _ := newTestApp("2\n0\n")
	app.Processes = fakeProcs{records: []system.ProcessRecord{
		{PID: &pid, Name: "init", RSS: &rss},
		{Name: "fallback line"},
	}}

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"rss": "2.0 KB"`)
	assert.Contains(t, out.String(), `"name": "fallback line"`)
	assert.Contains(t, out.String(), `"pid": null`)
}

func TestRunEnvSubMenu(t *testing.T) {
	input := strings.Join([]string{
		"5",
		"3", "FOO", "bar",
		"2", "FOO",
		"4", "FOO",
		"4", "FOO",
		"2", "FOO",
		"7",
		"0",
		"0",
	}, "\n") + "\n"
	app, out, env := newTestApp(input)

	require.NoError(t, app.Run(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Note: Changes affect current process only.")
	assert.Contains(t, s, "Set FOO.")
	assert.Contains(t, s, "FOO=bar")
	assert.Contains(t, s, "FOO deleted.")
	assert.Contains(t, s, "FOO not found.")
	assert.Contains(t, s, "FOO=(not set)")
	assert.Contains(t, s, "Invalid choice.")
	_, ok := envstore.Get(env, "FOO")
	assert.False(t, ok)
}

func TestRunFolderSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), []byte("hello"), 0o644))
	app, out, _ := newTestApp("4\n" + dir + "\n6\n" + dir + "\n0\n")

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"size_bytes": 5`)
	assert.Equal(t, 2, strings.Count(out.String(), `"files": 1`))
}

func TestRunPing(t *testing.T) {
	app, out, _ := newTestApp("7\nexample.com\n0\n")
	app.Pinger = fakePinger{res: netprobe.PingResult{Success: false, Output: "100% packet loss"}}

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Ping example.com")
	assert.Contains(t, out.String(), "FAILED")
	assert.Contains(t, out.String(), "100% packet loss")
}

func TestRunMonitorUnavailable(t *testing.T) {
	app, out, _ := newTestApp("8\n0\n")
	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Monitor CPU/RAM (10s)")
	assert.Contains(t, out.String(), "not available")
}

func TestRunMonitorSamples(t *testing.T) {
	app, out, _ := newTestApp("8\n0\n")
	app.Sampler = fakeSampler{samples: []system.Sample{{Timestamp: "t1", CPUPercent: 1.5, MemPercent: 50}}}

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `"cpu_percent": 1.5`)
}

func TestPromptInterruptIsEmptyAnswer(t *testing.T) {
	out := &bytes.Buffer{}
	interrupts := make(chan os.Signal, 1)
	interrupts <- os.Interrupt

	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, out, NewStyles(out), interrupts)

	got, err := p.Ask("Select: ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
