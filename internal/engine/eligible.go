package engine

import (
	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// cellPriority ranks category kinds for the recommendation hint. Rarer,
// higher-scoring cells come first so the hint spends flexible players on the
// cells hardest to fill later.
var cellPriority = map[categories.Kind]int{
	categories.KindCombo:    1,
	categories.KindTeammate: 2,
	categories.KindTrophy:   3,
	categories.KindStat:     4,
	categories.KindRole:     5,
	categories.KindTeam:     6,
	categories.KindCountry:  7,
}

const unknownPriority = 99

// EligibleCells returns the IDs of every empty grid cell the player could
// legally fill, in grid order.
func EligibleCells(player players.Player, grid []categories.Category, placements map[string]string) []string {
	var eligible []string
	for _, cat := range grid {
		if placements[cat.ID] != "" {
			continue
		}
		if Validate(player, cat) {
			eligible = append(eligible, cat.ID)
		}
	}
	return eligible
}

// RecommendedCell picks the best cell among the eligible IDs under the fixed
// priority ranking, breaking ties by grid order. Returns "" when nothing is
// eligible.
func RecommendedCell(eligibleIDs []string, grid []categories.Category) string {
	if len(eligibleIDs) == 0 {
		return ""
	}

	eligible := make(map[string]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}

	best := ""
	bestRank := unknownPriority + 1
	for _, cat := range grid {
		if !eligible[cat.ID] {
			continue
		}
		rank, ok := cellPriority[cat.Type]
		if !ok {
			rank = unknownPriority
		}
		if rank < bestRank {
			best = cat.ID
			bestRank = rank
		}
	}
	return best
}

// NextPlayableIndex scans the deck forward from startIndex and returns the
// first position whose player has at least one eligible cell, or -1 when no
// such player remains (the loss signal). The scan runs before a turn is
// presented so players who can no longer be placed are skipped silently.
func NextPlayableIndex(deck []players.Player, startIndex int, grid []categories.Category, placements map[string]string) int {
	for i := startIndex; i < len(deck); i++ {
		if len(EligibleCells(deck[i], grid, placements)) > 0 {
			return i
		}
	}
	return -1
}
