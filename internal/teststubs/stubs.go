// Package teststubs holds shared test doubles for provider and snapshot
// interfaces.
package teststubs

import (
	"context"
	"errors"
	"io/fs"
	"sync/atomic"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/snapshots"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players    []players.Player
	Categories []categories.Category
	Err        error
	Calls      atomic.Int32
}

// FetchPlayers returns the configured pool and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Players, s.Err
}

// FetchCategories returns the configured pool and error while tracking calls.
func (s *StubProvider) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Categories, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Daily   map[string]snapshots.DailySnapshot // keyed by DailyKey
	States  map[string]snapshots.StateSnapshot // keyed by DailyKey
	LoadErr error
}

// LoadDaily returns the snapshot for the given date and size if present.
func (s *StubSnapshotStore) LoadDaily(date string, gridSize int) (snapshots.DailySnapshot, error) {
	if s.LoadErr != nil {
		return snapshots.DailySnapshot{}, s.LoadErr
	}
	snap, ok := s.Daily[snapshots.DailyKey(date, gridSize)]
	if !ok {
		return snapshots.DailySnapshot{}, errors.New("snapshot not found")
	}
	return snap, nil
}

// LoadState returns the saved session for the given date and size if present.
func (s *StubSnapshotStore) LoadState(date string, gridSize int) (snapshots.StateSnapshot, error) {
	if s.LoadErr != nil {
		return snapshots.StateSnapshot{}, s.LoadErr
	}
	snap, ok := s.States[snapshots.DailyKey(date, gridSize)]
	if !ok {
		return snapshots.StateSnapshot{}, fs.ErrNotExist
	}
	return snap, nil
}

// StubSnapshotWriter is a test double for the daily snapshot writer.
type StubSnapshotWriter struct {
	Written map[string]snapshots.DailySnapshot // keyed by DailyKey
	States  map[string]snapshots.StateSnapshot // keyed by DailyKey
	Err     error
}

// WriteDaily records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteDaily(snapshot snapshots.DailySnapshot) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]snapshots.DailySnapshot)
	}
	w.Written[snapshots.DailyKey(snapshot.Date, snapshot.GridSize)] = snapshot
	return nil
}

// WriteState records the saved session for verification in tests.
func (w *StubSnapshotWriter) WriteState(snapshot snapshots.StateSnapshot) error {
	if w.Err != nil {
		return w.Err
	}
	if w.States == nil {
		w.States = make(map[string]snapshots.StateSnapshot)
	}
	w.States[snapshots.DailyKey(snapshot.Date, snapshot.GridSize)] = snapshot
	return nil
}

// DeleteState drops a recorded session, if any.
func (w *StubSnapshotWriter) DeleteState(date string, gridSize int) error {
	if w.Err != nil {
		return w.Err
	}
	delete(w.States, snapshots.DailyKey(date, gridSize))
	return nil
}
