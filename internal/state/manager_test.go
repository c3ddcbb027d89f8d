package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soracht/FocusPulse/internal/session"
)

func tempStateFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "state.json")
}

func TestNewManager_CreatesFileIfNotExist(t *testing.T) {
	path := tempStateFile(t)

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m.state == nil {
		t.Fatalf("state should not be nil")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not created: %v", err)
	}
}

func TestManager_AppendAndReload(t *testing.T) {
	path := tempStateFile(t)

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	rec := session.Record{
		ID:        "abc",
		StartTime: time.Now().Add(-30 * time.Minute),
		EndTime:   time.Now(),
		Phase:     session.Focus,
		Planned:   25 * time.Minute,
		Actual:    25 * time.Minute,
		Completed: true,
	}
	if err := m.Append(rec); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	m2, err := NewManager(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	records := m2.Records()
	if len(records) != 1 {
		t.Fatalf("reloaded %d records, want 1", len(records))
	}
	if records[0].ID != "abc" || !records[0].Completed {
		t.Errorf("reloaded record = %+v, want id abc completed", records[0])
	}
	if records[0].Phase != session.Focus {
		t.Errorf("reloaded phase = %v, want focus", records[0].Phase)
	}
}

func TestNewManager_CorruptFileStartsEmpty(t *testing.T) {
	path := tempStateFile(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager should not fail on corrupt state: %v", err)
	}
	if len(m.Records()) != 0 {
		t.Errorf("corrupt state should load as an empty log")
	}
}

func TestNewManager_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	if _, err := NewManager(path); err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not created under nested dir: %v", err)
	}
}
