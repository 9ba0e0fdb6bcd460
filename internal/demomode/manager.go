// Package demomode owns the process-wide flag gating whether the API
// serves generated demo data or the (unimplemented) live data source.
package demomode

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Key is the fixed slot name the flag is persisted under.
const Key = "demo_mode"

// Store persists the raw flag value. Load returns found=false when the
// slot is empty; the stored text is JSON ("true"/"false").
type Store interface {
	Load(key string) (value string, found bool, err error)
	Save(key, value string) error
}

// Manager holds the current flag and writes every change through to the
// store. Handlers run concurrently, so access is mutex-guarded.
type Manager struct {
	mu      sync.Mutex
	enabled bool
	store   Store
	logger  *zap.Logger
}

// NewManager loads the initial flag value from the store. A missing or
// unparseable slot silently falls back to false (live mode); persistence
// problems are logged, never surfaced.
func NewManager(store Store, logger *zap.Logger) *Manager {
	m := &Manager{store: store, logger: logger}

	raw, found, err := store.Load(Key)
	if err != nil {
		logger.Warn("Failed to load demo-mode flag, defaulting to live mode", zap.Error(err))
		return m
	}
	if !found {
		return m
	}

	var enabled bool
	if err := json.Unmarshal([]byte(raw), &enabled); err != nil {
		logger.Warn("Persisted demo-mode flag is corrupt, defaulting to live mode",
			zap.String("value", raw), zap.Error(err))
		return m
	}

	m.enabled = enabled
	return m
}

// Enabled reports whether demo mode is on.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Toggle flips the flag and persists the new value immediately. The
// in-memory flip sticks even when persistence fails; the error is
// returned so callers can report it.
func (m *Manager) Toggle() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = !m.enabled

	raw, err := json.Marshal(m.enabled)
	if err != nil {
		return m.enabled, err
	}
	if err := m.store.Save(Key, string(raw)); err != nil {
		m.logger.Error("Failed to persist demo-mode flag", zap.Error(err))
		return m.enabled, err
	}
	return m.enabled, nil
}
