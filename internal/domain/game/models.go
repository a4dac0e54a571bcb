package game

import (
	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// Status mirrors the game lifecycle states. Won and lost are terminal.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Action enumerates the ways a turn can be spent.
type Action string

const (
	ActionPlaced   Action = "placed"
	ActionSkipped  Action = "skipped"
	ActionWildcard Action = "wildcard"
)

// Game is a generated puzzle: a grid of categories plus the deck of players
// dealt one at a time. Daily games are fully determined by (date, gridSize).
type Game struct {
	ID       string                `json:"id"`
	GridSize int                   `json:"gridSize"`
	Grid     []categories.Category `json:"grid"`
	Deck     []players.Player      `json:"deck"`
	Seed     int32                 `json:"seed"`
	// Degraded marks a grid that exhausted all generation attempts without
	// passing the solvability check and was accepted anyway.
	Degraded bool `json:"degraded,omitempty"`
}

// HistoryEntry records one consumed turn.
type HistoryEntry struct {
	TurnNumber   int    `json:"turnNumber"`
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	Action       Action `json:"action"`
	TargetCellID string `json:"targetCellId,omitempty"`
	WasValid     bool   `json:"wasValid,omitempty"`
}

// State is the full state of one game session. It is owned by the caller and
// transformed by the engine's pure functions; the engine never mutates a State
// in place.
type State struct {
	GameID         string                `json:"gameId"`
	GridSize       int                   `json:"gridSize"`
	Grid           []categories.Category `json:"grid"`
	Deck           []players.Player      `json:"deck"`
	DeckIndex      int                   `json:"deckIndex"`
	Placements     map[string]string     `json:"placements"` // category ID -> player ID
	RemainingTurns int                   `json:"remainingTurns"`
	WildcardsLeft  int                   `json:"wildcardsLeft"`
	WildcardMode   bool                  `json:"wildcardMode"`
	Score          int                   `json:"score"`
	Streak         int                   `json:"streak"`
	MaxStreak      int                   `json:"maxStreak"`
	Status         Status                `json:"status"`
	WinLine        []int                 `json:"winLine,omitempty"`
	History        []HistoryEntry        `json:"history"`
}

// NewState builds the initial session state for a game. Turn budgets follow
// grid size: 20 turns on 3x3, 25 on 4x4, one wildcard either way.
func NewState(g Game) State {
	remaining := 20
	if g.GridSize == 4 {
		remaining = 25
	}
	return State{
		GameID:         g.ID,
		GridSize:       g.GridSize,
		Grid:           g.Grid,
		Deck:           g.Deck,
		Placements:     map[string]string{},
		RemainingTurns: remaining,
		WildcardsLeft:  1,
		Status:         StatusPlaying,
	}
}

// Clone returns a deep copy of the mutable parts of the state. The grid and
// deck are read-only and shared between copies.
func (s State) Clone() State {
	next := s
	next.Placements = make(map[string]string, len(s.Placements))
	for k, v := range s.Placements {
		next.Placements[k] = v
	}
	if s.WinLine != nil {
		next.WinLine = append([]int(nil), s.WinLine...)
	}
	next.History = append([]HistoryEntry(nil), s.History...)
	return next
}

// FilledCount returns the number of occupied cells.
func (s State) FilledCount() int {
	count := 0
	for _, playerID := range s.Placements {
		if playerID != "" {
			count++
		}
	}
	return count
}

// Filled reports whether the given cell holds a player.
func (s State) Filled(categoryID string) bool {
	return s.Placements[categoryID] != ""
}

// CurrentPlayer returns the player at the deck cursor, if the session is live
// and the deck is not exhausted.
func (s State) CurrentPlayer() (players.Player, bool) {
	if s.Status != StatusPlaying || s.DeckIndex >= len(s.Deck) {
		return players.Player{}, false
	}
	return s.Deck[s.DeckIndex], true
}

// CategoryByID looks up a grid cell by its category ID.
func (s State) CategoryByID(id string) (categories.Category, bool) {
	for _, cat := range s.Grid {
		if cat.ID == id {
			return cat, true
		}
	}
	return categories.Category{}, false
}
