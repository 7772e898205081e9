package iniq

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// Manager owns a single config path and its latest parsed snapshot, and
// re-parses when the file changes on disk. Snapshots are immutable Files,
// so readers keep a consistent view while a reload swaps the current one.
type Manager struct {
	path   string
	parser *Parser
	logger Logger

	mu      sync.RWMutex
	file    *File
	modTime time.Time
}

// NewManager creates a manager for path. A nil opts selects DefaultOptions.
// Nothing is read until Load or ReloadIfChanged is called.
func NewManager(path string, opts *Options) *Manager {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	logger := o.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	return &Manager{
		path:   path,
		parser: NewParser(&o),
		logger: logger,
	}
}

// Load parses the file unconditionally and makes the result current. The
// snapshot is replaced even when the parse reports errors, so callers see
// the same state a direct ParseFile would.
func (m *Manager) Load(ctx context.Context) (*File, error) {
	info, err := os.Stat(m.path)
	var modTime time.Time
	if err == nil {
		modTime = info.ModTime()
	}

	file, perr := m.parser.ParseFile(ctx, m.path)

	m.mu.Lock()
	m.file = file
	m.modTime = modTime
	m.mu.Unlock()

	m.logger.Info("config loaded",
		"path", m.path, "sections", len(file.SectionNames()), "ok", file.Success())
	return file, perr
}

// File returns the current snapshot, or nil before the first Load.
func (m *Manager) File() *File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.file
}

// ReloadIfChanged stats the path and re-parses only when the modification
// time moved past the one recorded at the previous load. It reports whether
// a reload happened.
func (m *Manager) ReloadIfChanged(ctx context.Context) (bool, error) {
	info, err := os.Stat(m.path)
	if err != nil {
		return false, fmt.Errorf("stat %q: %w", m.path, err)
	}

	m.mu.RLock()
	current := m.modTime
	loaded := m.file != nil
	m.mu.RUnlock()

	if loaded && !info.ModTime().After(current) {
		return false, nil
	}

	if _, err := m.Load(ctx); err != nil {
		return true, err
	}
	m.logger.Debug("config reloaded", "path", m.path)
	return true, nil
}
