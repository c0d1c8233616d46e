// Package lead implements the submission collaborator for the quote form:
// a file-backed store that records each lead for the sales follow-up tooling
// to pick up. Writes are fire-and-forget from the form's point of view.
package lead

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"grazebox/internal/form"
	"grazebox/internal/jsonutil"
)

const (
	// LeadsDirEnv is the env var override for the leads directory (for testing).
	LeadsDirEnv = "GRAZEBOX_LEADS_DIR"
	// DefaultLeadsBase is the default leads directory under the user's home.
	DefaultLeadsBase = ".grazebox/leads"
)

// Store writes submitted leads as JSON files.
// Layout: ~/.grazebox/leads/lead-<unix-nanos>.json
type Store struct {
	dir string
	// OnError receives write failures; the form state machine never sees
	// them. Nil means failures are dropped.
	OnError func(error)

	now func() time.Time
}

var _ form.Submitter = (*Store)(nil)

// NewStore creates a store rooted at the user's home + DefaultLeadsBase,
// or at the path in GRAZEBOX_LEADS_DIR if set.
func NewStore() (*Store, error) {
	dir := os.Getenv(LeadsDirEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, DefaultLeadsBase)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the leads directory.
func (s *Store) Dir() string { return s.dir }

// Submit implements form.Submitter. Failures go to OnError, never back into
// the caller.
func (s *Store) Submit(r form.Record) {
	if err := s.write(r); err != nil && s.OnError != nil {
		s.OnError(err)
	}
}

func (s *Store) write(r form.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("lead: create dir: %w", err)
	}
	data, err := jsonutil.MarshalWithContext(r, "lead: encode record")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("lead-%d.json", s.now().UnixNano())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("lead: write record: %w", err)
	}
	return nil
}

// List reads every recorded lead in submission order. Used by tests and the
// sales export tooling; the page itself never reads leads back.
func (s *Store) List() ([]form.Record, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lead: read dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "lead-") && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	records := make([]form.Record, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("lead: read %s: %w", name, err)
		}
		var r form.Record
		if err := jsonutil.UnmarshalWithContext(data, &r, "lead: decode "+name); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
