package system

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"sysutil/internal/runner"
)

// DefaultTopN is used when the caller asks for zero or fewer processes
const DefaultTopN = 15

// ProcessLister lists processes through gopsutil, or through ps/tasklist
// when enumeration is unavailable
type ProcessLister struct {
	Caps   Capabilities
	Runner runner.Runner
	GOOS   string

	enumerate func(ctx context.Context) ([]ProcessRecord, error)
}

// NewProcessLister returns a ProcessLister backed by gopsutil
func NewProcessLister(caps Capabilities, r runner.Runner) *ProcessLister {
	return &ProcessLister{
		Caps:      caps,
		Runner:    r,
		GOOS:      runtime.GOOS,
		enumerate: enumerateProcesses,
	}
}

// List returns up to topN records. It never fails; errors end up in the
// records themselves.
func (l *ProcessLister) List(ctx context.Context, topN int) []ProcessRecord {
	if topN <= 0 {
		topN = DefaultTopN
	}

	if l.Caps.ProcessEnumeration {
		procs, err := l.enumerate(ctx)
		if err == nil {
			sortByRSS(procs)
			if len(procs) > topN {
				procs = procs[:topN]
			}
			return procs
		}
		slog.Debug("process enumeration failed, using fallback", "err", err)
	}

	return l.fallback(ctx, topN)
}

// fallback wraps the lines of the platform listing tool as name-only records
func (l *ProcessLister) fallback(ctx context.Context, topN int) []ProcessRecord {
	name, args := "ps", []string{"aux"}
	if l.GOOS == "windows" {
		name, args = "tasklist", nil
	}

	res, err := l.Runner.Run(ctx, name, args...)
	if err == nil && !res.Success() {
		err = fmt.Errorf("%s exited with status %d", name, res.ExitCode)
	}
	if err != nil {
		return []ProcessRecord{{Error: fmt.Sprintf("Failed to list processes: %v", err)}}
	}

	lines := strings.Split(strings.TrimSpace(res.Output), "\n")
	lines = lines[headerLines(l.GOOS, lines):]

	procs := make([]ProcessRecord, 0, topN)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		procs = append(procs, ProcessRecord{Name: line})
		if len(procs) == topN {
			break
		}
	}
	return procs
}

// headerLines is 1 for ps, and for tasklist everything up to its "====" rule
func headerLines(goos string, lines []string) int {
	if goos != "windows" {
		return min(1, len(lines))
	}
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "=") {
			return i + 1
		}
	}
	return min(2, len(lines))
}

func sortByRSS(procs []ProcessRecord) {
	rss := func(p ProcessRecord) uint64 {
		if p.RSS == nil {
			return 0
		}
		return *p.RSS
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return rss(procs[i]) > rss(procs[j])
	})
}

// enumerateProcesses reads every process through gopsutil. Attributes that
// cannot be read (permissions, exited process) stay nil.
func enumerateProcesses(ctx context.Context) ([]ProcessRecord, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	records := make([]ProcessRecord, 0, len(procs))
	for _, p := range procs {
		pid := p.Pid
		rec := ProcessRecord{PID: &pid}

		if name, err := p.NameWithContext(ctx); err == nil {
			rec.Name = name
		}
		if user, err := p.UsernameWithContext(ctx); err == nil {
			rec.User = &user
		}
		if cpuPercent, err := p.CPUPercentWithContext(ctx); err == nil {
			rec.CPU = &cpuPercent
		}
		if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			rss := memInfo.RSS
			rec.RSS = &rss
		}

		records = append(records, rec)
	}
	return records, nil
}
