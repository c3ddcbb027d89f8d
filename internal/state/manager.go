package state

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/soracht/FocusPulse/internal/session"
)

// State is the top-level structure stored in the state.json file.
type State struct {
	Version  int              `json:"version"`
	Sessions []session.Record `json:"sessions"`
}

// Manager handles reading and writing state.json safely. It implements
// session.Sink so the recorder can persist records as they arrive.
type Manager struct {
	path  string
	mu    sync.Mutex
	state *State
}

// NewManager loads or initializes a new state manager. A missing or
// unreadable state file means no prior data, never a fatal error.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	if err := m.load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("State file %s unreadable, starting fresh: %v", path, err)
		}
		m.state = &State{Version: 1}
		if err := m.save(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// load reads the state file into memory.
func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	m.state = &s
	return nil
}

// save atomically writes the state file to disk.
func (m *Manager) save() error {
	tmp := m.path + ".tmp"
	data, err := json.MarshalIndent(m.state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, m.path)
}

// Append adds a finalized session record and writes it through.
func (m *Manager) Append(rec session.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Sessions = append(m.state.Sessions, rec)
	return m.save()
}

// Records returns a copy of the persisted session log.
func (m *Manager) Records() []session.Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]session.Record, len(m.state.Sessions))
	copy(out, m.state.Sessions)
	return out
}
