// Package snapshots persists generated daily games to disk so restarts do
// not change a day's puzzle and pregenerated days survive deploys.
package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
)

// DailySnapshot is the on-disk payload for one daily game.
type DailySnapshot struct {
	Date        string    `json:"date"`
	GridSize    int       `json:"gridSize"`
	Game        game.Game `json:"game"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Store defines how daily snapshots and saved sessions are loaded.
type Store interface {
	LoadDaily(date string, gridSize int) (DailySnapshot, error)
	LoadState(date string, gridSize int) (StateSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDaily reads the snapshot for the given date and grid size from disk.
// Category predicates are not serialized, so they are re-parsed on load.
func (s *FSStore) LoadDaily(date string, gridSize int) (DailySnapshot, error) {
	if s == nil {
		return DailySnapshot{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return DailySnapshot{}, errors.New("snapshot date required")
	}

	var payload DailySnapshot
	if err := s.decodeFile(DailySnapshotPath(s.basePath, date, gridSize), &payload); err != nil {
		return DailySnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	if payload.GridSize == 0 {
		payload.GridSize = gridSize
	}
	for i := range payload.Game.Grid {
		if err := categories.Normalize(&payload.Game.Grid[i]); err != nil {
			return DailySnapshot{}, err
		}
	}
	return payload, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
