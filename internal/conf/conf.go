package conf

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
)

var (
	Path string       // Config path
	mu   sync.RWMutex // Protects access to Conf
	Conf = Defaults()
)

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		SSHConfigPath: "",
		Log:           Log{Level: "warn"},
		Process:       Process{TopN: 15},
		Ping:          Ping{TimeoutSec: 2},
		Monitor: Monitor{
			DurationSec: 10,
			IntervalSec: 1.0,
		},
	}
}

// LoadConfig Set Path and load config into memory
// A missing file is not an error, the defaults stay in place
func LoadConfig(path string) error {
	Path = path
	err := Update()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyEnvOverrides()
	return nil
}

// Update reads the config file and loads it into the global Conf variable
func Update() (err error) {
	mu.Lock()
	defer mu.Unlock()

	if _, err = os.Stat(Path); err != nil {
		return err
	}
	next := Defaults()
	if _, err = toml.DecodeFile(Path, &next); err != nil {
		return fmt.Errorf("failed to update global config %w", err)
	}
	Conf = next
	return nil
}

// applyEnvOverrides lets SYSUTIL_* variables win over the file
func applyEnvOverrides() {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := os.LookupEnv("SYSUTIL_LOG_LEVEL"); ok && strings.TrimSpace(v) != "" {
		Conf.Log.Level = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("SYSUTIL_TOP_N"); ok {
		if n, err := cast.ToIntE(strings.TrimSpace(v)); err == nil && n > 0 {
			Conf.Process.TopN = n
		}
	}
	if v, ok := os.LookupEnv("SYSUTIL_PING_TIMEOUT"); ok {
		if n, err := cast.ToIntE(strings.TrimSpace(v)); err == nil && n > 0 {
			Conf.Ping.TimeoutSec = n
		}
	}
	if v, ok := os.LookupEnv("SYSUTIL_MONITOR_SECONDS"); ok {
		if n, err := cast.ToIntE(strings.TrimSpace(v)); err == nil && n >= 0 {
			Conf.Monitor.DurationSec = n
		}
	}
	if v, ok := os.LookupEnv("SYSUTIL_MONITOR_INTERVAL"); ok {
		if f, err := cast.ToFloat64E(strings.TrimSpace(v)); err == nil && f > 0 {
			Conf.Monitor.IntervalSec = f
		}
	}
}

// GetSSHConfigPath returns the SSH config path in a thread-safe manner.
// Empty means ping never consults an SSH config.
func GetSSHConfigPath() string {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.SSHConfigPath
}

// GetLog returns the Log config in a thread-safe manner
func GetLog() Log {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Log
}

// GetProcess returns the Process config in a thread-safe manner
func GetProcess() Process {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Process
}

// GetPing returns the Ping config in a thread-safe manner
func GetPing() Ping {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Ping
}

// GetMonitor returns the Monitor config in a thread-safe manner
func GetMonitor() Monitor {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Monitor
}
