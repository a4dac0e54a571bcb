package games

import (
	"context"
	"errors"
	"testing"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/providers/fixture"
	"cricket-bingo-service/internal/snapshots"
	"cricket-bingo-service/internal/store"
	"cricket-bingo-service/internal/teststubs"
)

func newPoolStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	s.SetPlayers(fixture.Pool())
	s.SetCategories(categories.Catalog)
	return s
}

func TestDailyGeneratesAndPersists(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	svc := NewService(newPoolStore(t), &teststubs.StubSnapshotStore{}, writer, nil, nil)

	g, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if g.ID != "daily-2026-02-10-3x3" {
		t.Fatalf("game ID = %q", g.ID)
	}
	if len(g.Grid) != 9 {
		t.Fatalf("grid has %d cells", len(g.Grid))
	}

	key := snapshots.DailyKey("2026-02-10", 3)
	snap, ok := writer.Written[key]
	if !ok {
		t.Fatalf("daily game was not persisted, written = %v", writer.Written)
	}
	if snap.Game.ID != g.ID {
		t.Fatalf("persisted game = %q", snap.Game.ID)
	}
}

func TestDailyServesFromCache(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	svc := NewService(newPoolStore(t), nil, writer, nil, nil)

	first, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	writer.Err = errors.New("disk gone") // cache hit must not touch the writer
	second, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("cached Daily: %v", err)
	}
	if first.ID != second.ID || first.Seed != second.Seed {
		t.Fatalf("cache returned a different game")
	}
}

func TestDailyPrefersSnapshot(t *testing.T) {
	snapGame, err := NewService(newPoolStore(t), nil, nil, nil, nil).Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
	snapGame.ID = "snapshot-authority"

	snapStore := &teststubs.StubSnapshotStore{
		Daily: map[string]snapshots.DailySnapshot{
			snapshots.DailyKey("2026-02-10", 3): {Date: "2026-02-10", GridSize: 3, Game: snapGame},
		},
	}
	svc := NewService(newPoolStore(t), snapStore, nil, nil, nil)

	got, err := svc.Daily(context.Background(), "2026-02-10", 3)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.ID != "snapshot-authority" {
		t.Fatalf("got %q, want the snapshot game", got.ID)
	}
}

func TestDailyDefaults(t *testing.T) {
	svc := NewService(newPoolStore(t), nil, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2026, 2, 10, 23, 30, 0, 0, time.UTC) }

	g, err := svc.Daily(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if g.ID != "daily-2026-02-10-3x3" {
		t.Fatalf("defaults produced %q, want today's 3x3", g.ID)
	}
}

func TestDailyValidation(t *testing.T) {
	svc := NewService(newPoolStore(t), nil, nil, nil, nil)

	if _, err := svc.Daily(context.Background(), "2026-02-10", 5); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("err = %v, want ErrInvalidGridSize", err)
	}
	if _, err := svc.Daily(context.Background(), "10/02/2026", 3); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}

	empty := NewService(store.NewMemoryStore(), nil, nil, nil, nil)
	if _, err := empty.Daily(context.Background(), "2026-02-10", 3); !errors.Is(err, ErrPoolUnavailable) {
		t.Fatalf("err = %v, want ErrPoolUnavailable", err)
	}
}

func TestDailySurvivesWriterFailure(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("read-only fs")}
	svc := NewService(newPoolStore(t), nil, writer, nil, nil)

	if _, err := svc.Daily(context.Background(), "2026-02-10", 3); err != nil {
		t.Fatalf("snapshot write failure must not fail the request: %v", err)
	}
}

func TestRandom(t *testing.T) {
	svc := NewService(newPoolStore(t), nil, nil, nil, nil)

	a, err := svc.Random(context.Background(), 4)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if a.GridSize != 4 || len(a.Grid) != 16 {
		t.Fatalf("game = size %d with %d cells", a.GridSize, len(a.Grid))
	}

	b, err := svc.Random(context.Background(), 4)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("random games shared an ID")
	}

	if _, err := svc.Random(context.Background(), 7); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("err = %v, want ErrInvalidGridSize", err)
	}
}

func TestNewSession(t *testing.T) {
	svc := NewService(newPoolStore(t), nil, nil, nil, nil)
	g, err := svc.Daily(context.Background(), "2026-02-10", 4)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}

	st := svc.NewSession(g)
	if st.GameID != g.ID || st.RemainingTurns != 25 || st.WildcardsLeft != 1 {
		t.Fatalf("session = %+v", st)
	}
}
