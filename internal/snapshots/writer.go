package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"cricket-bingo-service/internal/timeutil"
)

const dailyDir = "daily"

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDaily writes the snapshot for one daily game and prunes snapshots
// older than the retention window.
func (w *Writer) WriteDaily(snapshot DailySnapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if snapshot.Date == "" {
		return fmt.Errorf("date required")
	}
	if snapshot.GeneratedAt.IsZero() {
		snapshot.GeneratedAt = time.Now().UTC()
	}

	target := DailySnapshotPath(w.basePath, snapshot.Date, snapshot.GridSize)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(DailyKey(snapshot.Date, snapshot.GridSize))
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(DailyKey(snapshot.Date, snapshot.GridSize))
}

func (w *Writer) updateManifest(key string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	keys, err := w.listKeys()
	if err != nil {
		return err
	}
	if !containsKey(keys, key) {
		keys = append(keys, key)
	}
	pruned, err := w.pruneOldSnapshots(keys)
	if err != nil {
		return err
	}

	m.Daily.Keys = pruned
	m.Daily.LastRefreshed = now
	m.Retention.DailyDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func (w *Writer) listKeys() ([]string, error) {
	dir := filepath.Join(w.basePath, dailyDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		keys []string
		seen = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		keys = append(keys, base)
	}
	sort.Strings(keys)
	return keys, nil
}

// pruneOldSnapshots drops keys whose date component falls before the cutoff.
// Keys are "<date>-<size>", so the date is the first 10 bytes.
func (w *Writer) pruneOldSnapshots(keys []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, k := range keys {
		date := k
		if len(k) > len(timeutil.DateLayout) {
			date = k[:len(timeutil.DateLayout)]
		}
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			keep = append(keep, k)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(filepath.Join(w.basePath, dailyDir, k+".json"))
			continue
		}
		keep = append(keep, k)
	}
	sort.Strings(keep)
	return keep, nil
}

// HasDaily reports whether a snapshot exists for the given date and size.
func (w *Writer) HasDaily(date string, gridSize int) bool {
	if w == nil {
		return false
	}
	_, err := os.Stat(DailySnapshotPath(w.basePath, date, gridSize))
	return err == nil
}
