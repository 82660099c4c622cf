package netprobe

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strconv"

	"sysutil/internal/runner"
	"sysutil/internal/sshc"
)

// DefaultTimeoutSec is used when the caller passes zero or less
const DefaultTimeoutSec = 2

// NotFoundMessage replaces the output when ping is not installed
const NotFoundMessage = "ping command not found. Ensure it's available on PATH."

// PingResult is the outcome of one echo request
type PingResult struct {
	Host    string `json:"host"`
	Target  string `json:"target"`
	Success bool   `json:"success"`
	Output  string `json:"output"`
}

// Prober sends single ICMP echo requests through the system ping
type Prober struct {
	Runner runner.Runner
	GOOS   string
	// SSHConfigPath turns on alias lookup; empty pings hosts as typed
	SSHConfigPath string
}

// NewProber returns a Prober for the current platform
func NewProber(r runner.Runner, sshConfigPath string) *Prober {
	return &Prober{
		Runner:        r,
		GOOS:          runtime.GOOS,
		SSHConfigPath: sshConfigPath,
	}
}

// Ping sends one packet to host. The timeout is enforced by ping itself.
func (p *Prober) Ping(ctx context.Context, host string, timeoutSec int) PingResult {
	if timeoutSec <= 0 {
		timeoutSec = DefaultTimeoutSec
	}

	target := host
	if p.SSHConfigPath != "" {
		target = sshc.ResolveHostName(host, p.SSHConfigPath)
	}
	if target != host {
		slog.Debug("resolved ssh alias", "alias", host, "target", target)
	}

	res, err := p.Runner.Run(ctx, "ping", p.args(target, timeoutSec)...)
	result := PingResult{Host: host, Target: target}
	switch {
	case errors.Is(err, runner.ErrNotFound):
		result.Output = NotFoundMessage
	case err != nil:
		result.Output = err.Error()
	default:
		result.Success = res.Success()
		result.Output = res.Output
	}
	return result
}

// args builds the ping argv; Windows wants the timeout in milliseconds
func (p *Prober) args(target string, timeoutSec int) []string {
	if p.GOOS == "windows" {
		return []string{"-n", "1", "-w", strconv.Itoa(timeoutSec * 1000), target}
	}
	return []string{"-c", "1", "-W", strconv.Itoa(timeoutSec), target}
}
