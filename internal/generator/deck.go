package generator

import (
	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/engine"
)

// minPerCell is the coverage floor: the deck always carries at least this
// many players for every cell (when the pool has them), so a session cannot
// strand a cell with nobody left to fill it.
const minPerCell = 4

type shuffleFunc func([]string) []string

// buildCoverDeck assembles the deck for a grid in three passes: guarantee
// per-cell coverage, top up with other relevant players to the target size,
// then pad with distractors (players matching no cell). The picked set is
// shuffled once more at the end so coverage picks don't cluster at the front.
func buildCoverDeck(grid []categories.Category, pool []players.Player, deckSize int, shuffle shuffleFunc) []players.Player {
	byID := make(map[string]players.Player, len(pool))
	for _, p := range pool {
		byID[p.ID] = p
	}

	relevant := make(map[string]bool)
	perCell := make([][]string, len(grid))
	for i, cat := range grid {
		var ids []string
		for _, p := range pool {
			if engine.Validate(p, cat) {
				ids = append(ids, p.ID)
				relevant[p.ID] = true
			}
		}
		perCell[i] = shuffle(ids)
	}

	var pickedIDs []string
	picked := make(map[string]bool)
	pick := func(id string) {
		pickedIDs = append(pickedIDs, id)
		picked[id] = true
	}

	// Pass 1: minimum coverage per cell.
	for _, ids := range perCell {
		count := 0
		for _, id := range ids {
			if count >= minPerCell {
				break
			}
			if !picked[id] {
				pick(id)
				count++
			}
		}
	}

	// Pass 2: fill remaining slots with other relevant players.
	var rest []string
	for _, p := range pool {
		if relevant[p.ID] && !picked[p.ID] {
			rest = append(rest, p.ID)
		}
	}
	for _, id := range shuffle(rest) {
		if len(pickedIDs) >= deckSize {
			break
		}
		pick(id)
	}

	// Pass 3: pad with distractors when still short.
	if len(pickedIDs) < deckSize {
		var distractors []string
		for _, p := range pool {
			if !relevant[p.ID] {
				distractors = append(distractors, p.ID)
			}
		}
		for _, id := range shuffle(distractors) {
			if len(pickedIDs) >= deckSize {
				break
			}
			pick(id)
		}
	}

	deck := make([]players.Player, 0, len(pickedIDs))
	for _, id := range shuffle(pickedIDs) {
		if p, ok := byID[id]; ok {
			deck = append(deck, p)
		}
	}
	return deck
}
