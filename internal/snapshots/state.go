package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
)

const statesDir = "states"

// StateSnapshot is the on-disk payload for one saved play session. Sessions
// are keyed the same way daily games are, so a device can resume the day's
// puzzle exactly where it left off.
type StateSnapshot struct {
	Date     string     `json:"date"`
	GridSize int        `json:"gridSize"`
	State    game.State `json:"state"`
	SavedAt  time.Time  `json:"savedAt"`
}

// StateSnapshotPath builds the path to a saved session.
func StateSnapshotPath(basePath, date string, gridSize int) string {
	return filepath.Join(basePath, statesDir, DailyKey(date, gridSize)+".json")
}

// WriteState persists a play session, replacing any previous save for the
// same date and grid size.
func (w *Writer) WriteState(snapshot StateSnapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if snapshot.Date == "" {
		return fmt.Errorf("date required")
	}
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now().UTC()
	}

	target := StateSnapshotPath(w.basePath, snapshot.Date, snapshot.GridSize)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// DeleteState removes a saved session. Deleting a session that does not
// exist is not an error.
func (w *Writer) DeleteState(date string, gridSize int) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	err := os.Remove(StateSnapshotPath(w.basePath, date, gridSize))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// HasState reports whether a saved session exists for the given date and size.
func (w *Writer) HasState(date string, gridSize int) bool {
	if w == nil {
		return false
	}
	_, err := os.Stat(StateSnapshotPath(w.basePath, date, gridSize))
	return err == nil
}

// LoadState reads a saved session from disk. Grid predicates are re-parsed
// on load, same as daily game snapshots.
func (s *FSStore) LoadState(date string, gridSize int) (StateSnapshot, error) {
	if s == nil {
		return StateSnapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return StateSnapshot{}, errors.New("snapshot date required")
	}

	var payload StateSnapshot
	if err := s.decodeFile(StateSnapshotPath(s.basePath, date, gridSize), &payload); err != nil {
		return StateSnapshot{}, err
	}
	for i := range payload.State.Grid {
		if err := categories.Normalize(&payload.State.Grid[i]); err != nil {
			return StateSnapshot{}, err
		}
	}
	return payload, nil
}
