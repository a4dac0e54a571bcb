package engine

import (
	"math"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
)

const (
	baseScore     = 100
	comboBonus    = 50
	teammateBonus = 30
	trophyBonus   = 20

	// WinBonus is the flat award for filling the whole grid.
	WinBonus = 500

	maxMultiplier = 3.0
)

// CalculateScore returns the score contribution of a correct placement.
// streak is the consecutive-correct count INCLUDING this placement; the
// multiplier grows by 0.5 per streak step and caps at 3x.
func CalculateScore(cat categories.Category, streak int) int {
	base := baseScore
	switch cat.Type {
	case categories.KindCombo:
		base += comboBonus
	case categories.KindTeammate:
		base += teammateBonus
	case categories.KindTrophy:
		base += trophyBonus
	}

	multiplier := math.Min(1+float64(streak)*0.5, maxMultiplier)
	return int(math.Round(float64(base) * multiplier))
}

// CheckBingo reports the winning cell indices when every cell on the grid is
// filled, or nil otherwise. Despite the name there is no line-based win: the
// whole board must be complete, and the returned indices cover all cells so
// the presentation layer can highlight everything at once.
func CheckBingo(placements map[string]string, grid []categories.Category) []int {
	for _, cat := range grid {
		if placements[cat.ID] == "" {
			return nil
		}
	}

	winLine := make([]int, len(grid))
	for i := range winLine {
		winLine[i] = i
	}
	return winLine
}

// CheckBingoState is CheckBingo against a session state.
func CheckBingoState(s game.State) []int {
	return CheckBingo(s.Placements, s.Grid)
}
