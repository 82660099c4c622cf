package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the executable is not on PATH
var ErrNotFound = errors.New("executable not found")

// Result captures a finished external command
type Result struct {
	Argv     []string
	ExitCode int
	Output   string // stdout and stderr, merged
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs external commands. A nonzero exit is not an error; only a
// failure to start the command is.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Exec runs commands on the host with os/exec
type Exec struct{}

// Run starts name with args and waits for it to finish
func (Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	res := Result{Argv: append([]string{name}, args...)}

	cmd := exec.CommandContext(ctx, name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	res.Output = buf.String()
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	if errors.Is(err, exec.ErrNotFound) {
		return res, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return res, fmt.Errorf("failed to run %s: %w", strings.Join(res.Argv, " "), err)
}
