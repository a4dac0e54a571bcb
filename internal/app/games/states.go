package games

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/snapshots"
	"cricket-bingo-service/internal/timeutil"
)

var (
	// ErrStateNotFound is returned when no session is saved for a date and size.
	ErrStateNotFound = errors.New("no saved session")
	// ErrStateUnavailable is returned when session persistence is not configured.
	ErrStateUnavailable = errors.New("session persistence not configured")
)

// SaveState persists a play session keyed by date and grid size so the same
// device can resume the day's puzzle later. The grid size recorded in the
// state must match the key it is saved under.
func (s *Service) SaveState(ctx context.Context, date string, gridSize int, st game.State) error {
	_ = ctx
	if s.writer == nil {
		return ErrStateUnavailable
	}
	date, gridSize, err := s.stateKey(date, gridSize)
	if err != nil {
		return err
	}
	if st.GridSize != gridSize {
		return fmt.Errorf("%w: state is %dx%d", ErrInvalidGridSize, st.GridSize, st.GridSize)
	}

	snap := snapshots.StateSnapshot{
		Date:     date,
		GridSize: gridSize,
		State:    st,
		SavedAt:  s.now().UTC(),
	}
	if err := s.writer.WriteState(snap); err != nil {
		logging.Warn(s.logger, "session save failed", logging.FieldDate, date, "err", err)
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadState restores a previously saved play session.
func (s *Service) LoadState(ctx context.Context, date string, gridSize int) (game.State, error) {
	_ = ctx
	if s.snaps == nil {
		return game.State{}, ErrStateUnavailable
	}
	date, gridSize, err := s.stateKey(date, gridSize)
	if err != nil {
		return game.State{}, err
	}

	snap, err := s.snaps.LoadState(date, gridSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return game.State{}, ErrStateNotFound
		}
		return game.State{}, fmt.Errorf("load session: %w", err)
	}
	return snap.State, nil
}

// ClearState drops a saved play session, typically once the game is finished.
func (s *Service) ClearState(ctx context.Context, date string, gridSize int) error {
	_ = ctx
	if s.writer == nil {
		return ErrStateUnavailable
	}
	date, gridSize, err := s.stateKey(date, gridSize)
	if err != nil {
		return err
	}
	return s.writer.DeleteState(date, gridSize)
}

func (s *Service) stateKey(date string, gridSize int) (string, int, error) {
	if gridSize == 0 {
		gridSize = defaultGridSize
	}
	if gridSize != 3 && gridSize != 4 {
		return "", 0, ErrInvalidGridSize
	}
	if date == "" {
		date = timeutil.FormatDate(s.now().UTC())
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return "", 0, ErrInvalidDate
	}
	return date, gridSize, nil
}
