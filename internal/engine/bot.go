package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"cricket-bingo-service/internal/domain/game"
)

// Difficulty selects how well the bot opponent plays.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// easySkipChance is how often the easy bot passes on a playable turn.
const easySkipChance = 0.3

// ParseDifficulty resolves a difficulty string, defaulting empty to medium.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(raw)) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", raw)
	}
}

// BotPickCell chooses the cell the bot plays the current deck player on, or
// "" to skip. Easy sometimes skips playable turns and otherwise picks an
// eligible cell at random; medium and hard always take the recommended cell.
// The rand source is injected so bot games can be replayed deterministically.
func BotPickCell(s game.State, difficulty Difficulty, rnd *rand.Rand) string {
	player, ok := s.CurrentPlayer()
	if !ok {
		return ""
	}

	eligible := EligibleCells(player, s.Grid, s.Placements)
	if len(eligible) == 0 {
		return ""
	}

	if difficulty == DifficultyEasy {
		if rnd.Float64() < easySkipChance {
			return ""
		}
		return eligible[rnd.Intn(len(eligible))]
	}

	return RecommendedCell(eligible, s.Grid)
}

// BotTurn plays one bot turn: pick a cell and place, or skip when the bot has
// nothing to play (forced or by easy-mode whim). Terminal states pass through
// unchanged.
func BotTurn(s game.State, difficulty Difficulty, rnd *rand.Rand) game.State {
	if s.Status != game.StatusPlaying {
		return s
	}
	if _, ok := s.CurrentPlayer(); !ok {
		return s
	}

	cellID := BotPickCell(s, difficulty, rnd)
	if cellID == "" {
		return Skip(s)
	}
	return Place(s, cellID)
}
