// Package session persists named attendance ledgers for the CLI front-end.
// A session is one JSON file under the user state directory; the ledger
// itself stays an in-memory object and is written back only when the command
// that mutated it saves its named session.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/rollcall/internal/roster"
	"github.com/sirupsen/logrus"
)

// DefaultName is the session used when the user does not pick one.
const DefaultName = "default"

var nameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Store reads and writes ledger session files in a single directory.
type Store struct {
	dir    string
	logger *logrus.Entry
}

// NewStore opens the default store at ~/.local/share/rollcall/sessions,
// creating the directory if needed.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return NewStoreAt(filepath.Join(homeDir, ".local", "share", "rollcall", "sessions"))
}

// NewStoreAt opens a store rooted at dir, creating it if needed.
func NewStoreAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logging.NewLogger("session-store"),
	}, nil
}

type envelope struct {
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Ledger    *roster.Ledger `json:"ledger"`
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func validateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("invalid session name %q: use letters, digits, '.', '_' or '-'", name)
	}
	return nil
}

// Load returns the ledger for name. A session that does not exist yet loads
// as an empty ledger.
func (s *Store) Load(name string) (*roster.Ledger, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return roster.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", name, err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", name, err)
	}
	if env.Ledger == nil {
		env.Ledger = roster.NewLedger()
	}
	return env.Ledger, nil
}

// Save writes the ledger back to name's session file, preserving the
// original creation time when the file already exists.
func (s *Store) Save(name string, l *roster.Ledger) error {
	if err := validateName(name); err != nil {
		return err
	}

	now := time.Now()
	createdAt := now
	if data, err := os.ReadFile(s.path(name)); err == nil {
		var prev envelope
		if json.Unmarshal(data, &prev) == nil && !prev.CreatedAt.IsZero() {
			createdAt = prev.CreatedAt
		}
	}

	env := envelope{Name: name, CreatedAt: createdAt, UpdatedAt: now, Ledger: l}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", name, err)
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing session %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing session %s: %w", name, err)
	}

	s.logger.WithFields(logrus.Fields{
		"session":   name,
		"attendees": l.Len(),
	}).Debug("Saved session")
	return nil
}

// Delete removes a session file. Deleting a session that does not exist is
// not an error.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting session %s: %w", name, err)
	}
	return nil
}

// Info holds summary metadata for one stored session.
type Info struct {
	Name      string    `json:"name"`
	Attendees int       `json:"attendees"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Path      string    `json:"path"`
}

// Scan lists all stored sessions, most recently updated first. Unreadable
// files are skipped.
func (s *Store) Scan() ([]Info, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var infos []Info
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			s.logger.WithField("path", path).Warn("Skipping unreadable session file")
			continue
		}
		attendees := 0
		if env.Ledger != nil {
			attendees = env.Ledger.Len()
		}
		name := env.Name
		if name == "" {
			name = filepath.Base(path[:len(path)-len(".json")])
		}
		infos = append(infos, Info{
			Name:      name,
			Attendees: attendees,
			CreatedAt: env.CreatedAt,
			UpdatedAt: env.UpdatedAt,
			Path:      path,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos, nil
}
