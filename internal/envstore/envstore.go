package envstore

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Store is a key-value view of an environment table
type Store interface {
	Environ() map[string]string
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OS is the environment of the current process. Changes never reach the
// parent or sibling processes.
type OS struct{}

func (OS) Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		// Windows keeps per-drive entries like "=C:=C:\"
		if k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

func (OS) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

func (OS) Set(key, value string) error { return os.Setenv(key, value) }

func (OS) Unset(key string) error { return os.Unsetenv(key) }

// Map is an in-memory Store
type Map struct {
	mu  sync.RWMutex
	env map[string]string
}

// NewMap returns a Map seeded with a copy of initial
func NewMap(initial map[string]string) *Map {
	m := &Map{env: make(map[string]string, len(initial))}
	for k, v := range initial {
		m.env[k] = v
	}
	return m
}

func (m *Map) Environ() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	env := make(map[string]string, len(m.env))
	for k, v := range m.env {
		env[k] = v
	}
	return env
}

func (m *Map) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.env[key]
	return v, ok
}

func (m *Map) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env[key] = value
	return nil
}

func (m *Map) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.env, key)
	return nil
}

// List returns a copy of every variable
func List(s Store) map[string]string {
	return s.Environ()
}

// Get returns the value of key; ok is false when it is not set
func Get(s Store, key string) (string, bool) {
	return s.Lookup(key)
}

// Set assigns key. Store errors are logged, not returned.
func Set(s Store, key, value string) {
	if err := s.Set(key, value); err != nil {
		slog.Debug("env set failed", "key", key, "err", err)
	}
}

// Delete removes key and reports whether it was there
func Delete(s Store, key string) bool {
	if _, ok := s.Lookup(key); !ok {
		return false
	}
	if err := s.Unset(key); err != nil {
		slog.Debug("env unset failed", "key", key, "err", err)
		return false
	}
	return true
}
