// Package games coordinates game generation and turn evaluation. Daily games
// are cached in memory and persisted as snapshots; turn evaluation is
// stateless and operates on a client-submitted session state.
package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/generator"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/metrics"
	"cricket-bingo-service/internal/snapshots"
	"cricket-bingo-service/internal/timeutil"
)

const defaultGridSize = 3

var (
	// ErrInvalidGridSize is returned when the requested size is not 3 or 4.
	ErrInvalidGridSize = errors.New("grid size must be 3 or 4")
	// ErrInvalidDate is returned when the requested date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	// ErrPoolUnavailable is returned when the data pools have not loaded yet.
	ErrPoolUnavailable = errors.New("player or category pool unavailable")
	// ErrUnknownAction is returned for unrecognized turn actions.
	ErrUnknownAction = errors.New("unknown turn action")
)

// PoolStore provides the read-only data pools used for generation.
type PoolStore interface {
	ListPlayers() []players.Player
	ListCategories() []categories.Category
}

// SnapshotStore loads previously persisted daily games and saved sessions.
type SnapshotStore interface {
	LoadDaily(date string, gridSize int) (snapshots.DailySnapshot, error)
	LoadState(date string, gridSize int) (snapshots.StateSnapshot, error)
}

// SnapshotWriter persists daily games and saved sessions.
type SnapshotWriter interface {
	WriteDaily(snapshots.DailySnapshot) error
	WriteState(snapshots.StateSnapshot) error
	DeleteState(date string, gridSize int) error
}

// Service coordinates game operations using the pool store, with optional
// snapshot persistence and metrics.
type Service struct {
	store    PoolStore
	snaps    SnapshotStore
	writer   SnapshotWriter
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu    sync.RWMutex
	daily map[string]game.Game

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewService constructs a Service. Snapshot store, writer, logger and
// recorder may be nil; the service degrades to in-memory-only behavior.
func NewService(store PoolStore, snaps SnapshotStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		snaps:    snaps,
		writer:   writer,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
		daily:    make(map[string]game.Game),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Daily returns the puzzle for the given date and grid size, generating and
// persisting it on first request. An empty date means today (UTC); a zero
// grid size means 3.
func (s *Service) Daily(ctx context.Context, date string, gridSize int) (game.Game, error) {
	if gridSize == 0 {
		gridSize = defaultGridSize
	}
	if gridSize != 3 && gridSize != 4 {
		return game.Game{}, ErrInvalidGridSize
	}
	if date == "" {
		date = timeutil.FormatDate(s.now().UTC())
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return game.Game{}, ErrInvalidDate
	}

	key := snapshots.DailyKey(date, gridSize)

	s.mu.RLock()
	cached, ok := s.daily[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	if s.snaps != nil {
		if snap, err := s.snaps.LoadDaily(date, gridSize); err == nil {
			s.cacheDaily(key, snap.Game)
			return snap.Game, nil
		}
	}

	pool := s.store.ListPlayers()
	catPool := s.store.ListCategories()
	if len(pool) == 0 || len(catPool) == 0 {
		return game.Game{}, ErrPoolUnavailable
	}

	start := s.now()
	result, err := generator.GenerateDaily(date, gridSize, pool, catPool)
	if err != nil {
		return game.Game{}, fmt.Errorf("generate daily game: %w", err)
	}
	s.recorder.RecordGridGeneration(gridSize, result.Attempts, result.Game.Degraded, s.now().Sub(start))
	if result.Game.Degraded {
		logging.Warn(s.logger, "accepted degraded grid",
			logging.FieldDate, date,
			logging.FieldGridSize, gridSize,
			logging.FieldAttempts, result.Attempts)
	}

	if s.writer != nil {
		snap := snapshots.DailySnapshot{
			Date:        date,
			GridSize:    gridSize,
			Game:        result.Game,
			GeneratedAt: s.now().UTC(),
		}
		if err := s.writer.WriteDaily(snap); err != nil {
			logging.Warn(s.logger, "daily snapshot write failed", logging.FieldDate, date, "err", err)
		}
	}

	s.cacheDaily(key, result.Game)
	return result.Game, nil
}

// Random generates a fresh non-deterministic game.
func (s *Service) Random(ctx context.Context, gridSize int) (game.Game, error) {
	_ = ctx
	if gridSize == 0 {
		gridSize = defaultGridSize
	}
	if gridSize != 3 && gridSize != 4 {
		return game.Game{}, ErrInvalidGridSize
	}

	pool := s.store.ListPlayers()
	catPool := s.store.ListCategories()
	if len(pool) == 0 || len(catPool) == 0 {
		return game.Game{}, ErrPoolUnavailable
	}

	start := s.now()
	s.rndMu.Lock()
	result, err := generator.GenerateRandom(gridSize, pool, catPool, s.rnd)
	s.rndMu.Unlock()
	if err != nil {
		return game.Game{}, fmt.Errorf("generate random game: %w", err)
	}
	s.recorder.RecordGridGeneration(gridSize, result.Attempts, result.Game.Degraded, s.now().Sub(start))

	return result.Game, nil
}

// NewSession starts a fresh play session for a game.
func (s *Service) NewSession(g game.Game) game.State {
	return game.NewState(g)
}

func (s *Service) cacheDaily(key string, g game.Game) {
	s.mu.Lock()
	s.daily[key] = g
	s.mu.Unlock()
}
