// Package runlog appends a one-line JSON record of every finished session to
// a history file under the user's data directory.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stranded/internal/sim"
)

// FileName is the history file inside Dir.
const FileName = "runs.jsonl"

// Run records the outcome of one session.
type Run struct {
	Timestamp  time.Time `json:"timestamp"`
	Frontend   string    `json:"frontend"`
	Seconds    float64   `json:"seconds"`
	Ticks      uint64    `json:"ticks"`
	Spawned    int       `json:"spawned"`
	Collected  int       `json:"collected"`
	Collisions int       `json:"collisions"`
	FinalFuel  float64   `json:"final_fuel"`
	Error      string    `json:"error,omitempty"`
}

// FromSession captures the current counters of s. runErr is the error the
// frontend stopped with, if any.
func FromSession(s *sim.Session, frontend string, runErr error) Run {
	st := s.Stats()
	r := Run{
		Timestamp:  time.Now().UTC(),
		Frontend:   frontend,
		Seconds:    st.Elapsed,
		Ticks:      st.Ticks,
		Spawned:    st.Spawned,
		Collected:  st.Collected,
		Collisions: st.Collisions,
		FinalFuel:  s.Fuel(),
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	return r
}

// Dir returns $XDG_DATA_HOME/stranded, falling back to ~/.local/share/stranded.
func Dir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("runlog: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "stranded"), nil
}

// Append writes r as a single line to dir/runs.jsonl, creating dir if needed.
func Append(dir string, r Run) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("runlog: create dir: %w", err)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("runlog: marshal: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runlog: open: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("runlog: write: %w", err)
	}
	return nil
}

// Save appends r to the default directory.
func Save(r Run) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return Append(dir, r)
}
