package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/scoring"
)

const (
	// DefaultTimeout is how long an incomplete session stays resumable.
	DefaultTimeout = 30 * time.Minute

	// DefaultRetention is how long session files are kept on disk.
	DefaultRetention = 7 * 24 * time.Hour

	filePrefix = "session_"
	fileSuffix = ".json"
)

// Manager is the sole writer of persisted session data. Every
// state-changing operation persists the full session snapshot before
// the in-memory copy is considered authoritative, so a crash loses at
// most the latest write and never corrupts an older one.
type Manager struct {
	dir       string
	timeout   time.Duration
	retention time.Duration

	// lastID and seq disambiguate sessions created within the same
	// second of the same process.
	lastID string
	seq    int
}

// NewManager creates a manager rooted at dir, creating it if needed.
func NewManager(dir string, timeout, retention time.Duration) (*Manager, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Op: "create", Path: dir, Err: err}
	}
	return &Manager{dir: dir, timeout: timeout, retention: retention}, nil
}

// Dir returns the session directory.
func (m *Manager) Dir() string { return m.dir }

// Timeout returns the resumability window.
func (m *Manager) Timeout() time.Duration { return m.timeout }

// Path returns the canonical file path for a session id.
func (m *Manager) Path(id string) string {
	return filepath.Join(m.dir, filePrefix+id+fileSuffix)
}

// Create allocates a new session and writes it durably. On a write
// failure the session is still returned alongside a *PersistenceError;
// the caller may continue in-memory with a degraded warning.
func (m *Manager) Create(length catalog.Length, totalQuestions int) (*Session, error) {
	now := time.Now()
	s := &Session{
		ID:             m.newID(now),
		Length:         length,
		TotalQuestions: totalQuestions,
		StartedAt:      now,
		LastUpdated:    now,
		Responses:      []Response{},
		State:          StateCreated,
	}
	if err := m.Save(s); err != nil {
		return s, err
	}
	return s, nil
}

// newID derives a session id from the creation timestamp, appending a
// sequence suffix when two sessions land in the same second.
func (m *Manager) newID(now time.Time) string {
	id := now.Format("20060102_150405")
	if id == m.lastID {
		m.seq++
		m.lastID = id
		return fmt.Sprintf("%s_%d", id, m.seq)
	}
	m.lastID = id
	m.seq = 0
	return id
}

// Save persists the full session snapshot atomically: the record is
// written to a temp file in the same directory and renamed over the
// canonical path, so the file is never observed half-written.
func (m *Manager) Save(s *Session) error {
	s.LastUpdated = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: m.Path(s.ID), Err: err}
	}

	path := m.Path(s.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Record upserts a response by question id and persists the snapshot.
// The first recorded response moves a freshly created session to
// Active.
func (m *Manager) Record(s *Session, r Response) error {
	if s.State == StateCreated {
		if err := s.Transition(StateActive); err != nil {
			return err
		}
	}
	s.Upsert(r)
	return m.Save(s)
}

// ListResumable scans persisted sessions and returns the incomplete
// ones still inside the resumability window, most recent first. Files
// that fail to parse are silently excluded: corrupt data is expected
// entropy here, not a fault.
func (m *Manager) ListResumable() []Summary {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil
	}

	now := time.Now()
	var out []Summary
	for _, e := range entries {
		id, ok := sessionID(e.Name())
		if !ok {
			continue
		}
		s, err := m.load(id)
		if err != nil {
			continue
		}
		if s.Completed || s.Age(now) >= m.timeout {
			continue
		}
		out = append(out, Summary{
			ID:          s.ID,
			Length:      s.Length,
			Answered:    s.CurrentQuestion,
			Total:       s.TotalQuestions,
			LastUpdated: s.LastUpdated,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out
}

// Resume loads a persisted session for continuation. It fails with
// ErrNotFound, ErrCorrupted, or ErrExpired; on success the session is
// Active again and carries its full response history for replay.
func (m *Manager) Resume(id string) (*Session, error) {
	s, err := m.load(id)
	if err != nil {
		return nil, err
	}
	if s.Completed {
		return nil, fmt.Errorf("%w: %s already completed", ErrNotFound, id)
	}
	if s.Age(time.Now()) >= m.timeout {
		return nil, fmt.Errorf("%w: %s", ErrExpired, id)
	}

	s.State = StatePaused
	if err := s.Transition(StateResuming); err != nil {
		return nil, err
	}
	if err := s.Transition(StateActive); err != nil {
		return nil, err
	}

	// Refresh the clock so the window restarts from the resume.
	if err := m.Save(s); err != nil {
		return s, err
	}
	return s, nil
}

// load reads and parses one session file, mapping filesystem and parse
// failures onto the resume error taxonomy.
func (m *Manager) load(id string) (*Session, error) {
	data, err := os.ReadFile(m.Path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, &PersistenceError{Op: "load", Path: m.Path(id), Err: err}
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, id, err)
	}
	if s.ID == "" || !s.Length.Valid() {
		return nil, fmt.Errorf("%w: %s: missing required fields", ErrCorrupted, id)
	}

	if s.Completed {
		s.State = StateCompleted
	} else {
		s.State = StateActive
	}
	return &s, nil
}

// MarkComplete attaches the result and sets the completed flag. The
// transition is one-way; completing twice is an error.
func (m *Manager) MarkComplete(s *Session, result *scoring.Result) error {
	if s.Completed {
		return fmt.Errorf("session %s already completed", s.ID)
	}
	if err := s.Transition(StateCompleted); err != nil {
		return err
	}
	now := time.Now()
	s.Completed = true
	s.CompletedAt = &now
	s.Result = result
	return m.Save(s)
}

// LoadCompleted returns a completed session by id, for export.
func (m *Manager) LoadCompleted(id string) (*Session, error) {
	s, err := m.load(id)
	if err != nil {
		return nil, err
	}
	if !s.Completed {
		return nil, fmt.Errorf("session %s is not completed", id)
	}
	return s, nil
}

// CleanupExpired deletes sessions older than the retention window,
// regardless of completion state, and removes files that no longer
// parse. Deletion failures are reported to the caller for logging and
// otherwise ignored. Returns the number of files removed.
func (m *Manager) CleanupExpired(warn func(error)) int {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-m.retention)
	removed := 0
	for _, e := range entries {
		id, ok := sessionID(e.Name())
		if !ok {
			continue
		}
		path := m.Path(id)

		s, err := m.load(id)
		stale := err != nil && !errors.Is(err, ErrNotFound) // unparsable
		if !stale && s != nil {
			stale = s.LastUpdated.Before(cutoff)
		}
		if !stale {
			continue
		}
		if err := os.Remove(path); err != nil {
			if warn != nil {
				warn(err)
			}
			continue
		}
		removed++
	}
	return removed
}

// sessionID extracts the id from a session file name, or ok=false for
// anything else living in the directory.
func sessionID(name string) (string, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	return id, id != ""
}
