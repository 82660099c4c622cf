package system

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysutil/internal/runner"
)

func u64(v uint64) *uint64 { return &v }
func i32(v int32) *int32 { return &v }

func TestListSortsByRSSAndTruncates(t *testing.T) {
	l := &ProcessLister{
		Caps:   Capabilities{ProcessEnumeration: true},
		Runner: runner.NewFake(),
		GOOS:   "linux",
		enumerate: func(ctx context.Context) ([]ProcessRecord, error) {
			return []ProcessRecord{
				{PID: i32(1), Name: "small", RSS: u64(10)},
				{PID: i32(2), Name: "unknown"},
				{PID: i32(3), Name: "big", RSS: u64(300)},
				{PID: i32(4), Name: "mid", RSS: u64(200)},
			}, nil
		},
	}

	got := l.List(context.Background(), 3)
	require.Len(t, got, 3)
	assert.Equal(t, "big", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
	assert.Equal(t, "small", got[2].Name)
}

func TestListFallsBackToPs(t *testing.T) {
	fake := runner.NewFake().On("ps aux", runner.Result{
		Output: "USER PID %CPU\nroot 1 0.0 init\nbob 42 1.5 vim\n\n",
	}, nil)
	l := &ProcessLister{Caps: Capabilities{}, Runner: fake, GOOS: "linux"}

	got := l.List(context.Background(), 0)
	require.Len(t, got, 2)
	assert.Equal(t, "root 1 0.0 init", got[0].Name)
	assert.Equal(t, "bob 42 1.5 vim", got[1].Name)
	for _, p := range got {
		assert.Nil(t, p.PID)
		assert.Nil(t, p.User)
		assert.Nil(t, p.CPU)
		assert.Nil(t, p.RSS)
	}
}

func TestListFallsBackWhenEnumerationFails(t *testing.T) {
	fake := runner.NewFake().On("tasklist", runner.Result{
		Output: "\nImage Name   PID\n=========== ====\nSystem 4\nsvchost.exe 800\nexplorer.exe 1200\n",
	}, nil)
	l := &ProcessLister{
		Caps:   Capabilities{ProcessEnumeration: true},
		Runner: fake,
		GOOS:   "windows",
		enumerate: func(ctx context.Context) ([]ProcessRecord, error) {
			return nil, errors.New("access denied")
		},
	}

	got := l.List(context.Background(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "System 4", got[0].Name)
	assert.Equal(t, "svchost.exe 800", got[1].Name)
}

func TestListFallbackNonzeroExit(t *testing.T) {
	fake := runner.NewFake().On("ps aux", runner.Result{ExitCode: 1, Output: "ps: bad"}, nil)
	l := &ProcessLister{Runner: fake, GOOS: "linux"}

	got := l.List(context.Background(), 5)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "exited with status 1")
}

func TestListFallbackFailureIsARecord(t *testing.T) {
	l := &ProcessLister{Runner: runner.NewFake(), GOOS: "linux"}

	got := l.List(context.Background(), 5)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "Failed to list processes")
}

func TestListLive(t *testing.T) {
	caps := Probe(context.Background())
	if !caps.ProcessEnumeration {
		t.Skip("process enumeration unavailable")
	}
	got := NewProcessLister(caps, runner.Exec{}).List(context.Background(), 5)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)
}
