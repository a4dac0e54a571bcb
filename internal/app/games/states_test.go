package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"cricket-bingo-service/internal/snapshots"
	"cricket-bingo-service/internal/teststubs"
)

func TestSaveAndLoadState(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	snapStore := &teststubs.StubSnapshotStore{}
	svc := NewService(newPoolStore(t), snapStore, writer, nil, nil)

	g, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	st := svc.NewSession(g)
	st.Score = 250
	st.RemainingTurns = 18

	if err := svc.SaveState(context.Background(), "2026-02-10", 3, st); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	key := snapshots.DailyKey("2026-02-10", 3)
	saved, ok := writer.States[key]
	if !ok {
		t.Fatalf("session was not persisted, states = %v", writer.States)
	}
	if saved.State.Score != 250 {
		t.Fatalf("persisted score = %d", saved.State.Score)
	}

	snapStore.States = map[string]snapshots.StateSnapshot{key: saved}
	restored, err := svc.LoadState(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if restored.Score != 250 || restored.RemainingTurns != 18 || restored.GameID != g.ID {
		t.Fatalf("restored state = %+v", restored)
	}
}

func TestSaveStateDefaultsToToday(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	svc := NewService(newPoolStore(t), nil, writer, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 2, 10, 23, 30, 0, 0, time.UTC) }

	g, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if err := svc.SaveState(context.Background(), "", 0, svc.NewSession(g)); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, ok := writer.States[snapshots.DailyKey("2026-02-10", 3)]; !ok {
		t.Fatalf("default key not used, states = %v", writer.States)
	}
}

func TestLoadStateNotFound(t *testing.T) {
	svc := NewService(newPoolStore(t), &teststubs.StubSnapshotStore{}, &teststubs.StubSnapshotWriter{}, nil, nil)

	if _, err := svc.LoadState(context.Background(), "2026-02-10", 3); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("err = %v, want ErrStateNotFound", err)
	}
}

func TestStateValidationAndAvailability(t *testing.T) {
	svc := NewService(newPoolStore(t), &teststubs.StubSnapshotStore{}, &teststubs.StubSnapshotWriter{}, nil, nil)

	g, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	st := svc.NewSession(g)

	if err := svc.SaveState(context.Background(), "2026-02-10", 5, st); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("size 5 err = %v, want ErrInvalidGridSize", err)
	}
	if err := svc.SaveState(context.Background(), "10/02/2026", 3, st); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("bad date err = %v, want ErrInvalidDate", err)
	}
	// A 3x3 session cannot be saved under the 4x4 key.
	if err := svc.SaveState(context.Background(), "2026-02-10", 4, st); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("mismatched size err = %v, want ErrInvalidGridSize", err)
	}

	bare := NewService(newPoolStore(t), nil, nil, nil, nil)
	if err := bare.SaveState(context.Background(), "2026-02-10", 3, st); !errors.Is(err, ErrStateUnavailable) {
		t.Fatalf("no writer err = %v, want ErrStateUnavailable", err)
	}
	if _, err := bare.LoadState(context.Background(), "2026-02-10", 3); !errors.Is(err, ErrStateUnavailable) {
		t.Fatalf("no store err = %v, want ErrStateUnavailable", err)
	}
	if err := bare.ClearState(context.Background(), "2026-02-10", 3); !errors.Is(err, ErrStateUnavailable) {
		t.Fatalf("no writer clear err = %v, want ErrStateUnavailable", err)
	}
}

func TestClearState(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	svc := NewService(newPoolStore(t), nil, writer, nil, nil)

	g, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if err := svc.SaveState(context.Background(), "2026-02-10", 3, svc.NewSession(g)); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if err := svc.ClearState(context.Background(), "2026-02-10", 3); err != nil {
		t.Fatalf("ClearState: %v", err)
	}
	if len(writer.States) != 0 {
		t.Fatalf("states not cleared: %v", writer.States)
	}
}
