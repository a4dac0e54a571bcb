package snapshots

import (
	"fmt"
	"path/filepath"
)

// DailyKey builds the snapshot key for a daily game, e.g. "2026-09-01-3".
func DailyKey(date string, gridSize int) string {
	return fmt.Sprintf("%s-%d", date, gridSize)
}

// DailySnapshotPath builds the path to a daily game snapshot.
func DailySnapshotPath(basePath, date string, gridSize int) string {
	return filepath.Join(basePath, "daily", DailyKey(date, gridSize)+".json")
}
