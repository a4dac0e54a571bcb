package games

import (
	"fmt"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/engine"
)

// Turn action types accepted by ApplyTurn.
const (
	ActionPlace          = "place"
	ActionSkip           = "skip"
	ActionWildcardOn     = "wildcard_on"
	ActionWildcardCancel = "wildcard_cancel"
	ActionBot            = "bot"
)

// TurnRequest describes one move in a session.
type TurnRequest struct {
	Action     string `json:"action"`
	CategoryID string `json:"categoryId,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ApplyTurn evaluates one move against a session state and returns the next
// state. States arrive from clients with unparsed category predicates, so the
// grid is normalized before the engine sees it.
func (s *Service) ApplyTurn(st game.State, req TurnRequest) (game.State, error) {
	for i := range st.Grid {
		if err := categories.Normalize(&st.Grid[i]); err != nil {
			return game.State{}, fmt.Errorf("grid category %q: %w", st.Grid[i].ID, err)
		}
	}

	switch req.Action {
	case ActionPlace:
		if req.CategoryID == "" {
			return game.State{}, fmt.Errorf("%w: place requires categoryId", ErrUnknownAction)
		}
		return engine.Place(st, req.CategoryID), nil
	case ActionSkip:
		return engine.Skip(st), nil
	case ActionWildcardOn:
		return engine.EnterWildcard(st), nil
	case ActionWildcardCancel:
		return engine.CancelWildcard(st), nil
	case ActionBot:
		difficulty, err := engine.ParseDifficulty(req.Difficulty)
		if err != nil {
			return game.State{}, err
		}
		s.rndMu.Lock()
		next := engine.BotTurn(st, difficulty, s.rnd)
		s.rndMu.Unlock()
		return next, nil
	default:
		return game.State{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
}
