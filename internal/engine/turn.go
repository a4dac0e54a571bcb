package engine

import (
	"cricket-bingo-service/internal/domain/game"
)

const wildcardBonus = 50

// PostTurn advances the session after a consumed turn: it settles the win,
// then the loss conditions, then moves the deck cursor to the next playable
// player. Won and lost are terminal; a terminal state is returned unchanged.
func PostTurn(s game.State) game.State {
	if s.Status != game.StatusPlaying {
		return s
	}
	next := s.Clone()

	if winLine := CheckBingo(next.Placements, next.Grid); winLine != nil {
		next.Status = game.StatusWon
		next.WinLine = winLine
		next.Score += WinBonus
		return next
	}

	if next.RemainingTurns <= 0 {
		next.Status = game.StatusLost
		return next
	}

	idx := NextPlayableIndex(next.Deck, next.DeckIndex, next.Grid, next.Placements)
	if idx == -1 {
		next.Status = game.StatusLost
		return next
	}
	next.DeckIndex = idx
	return next
}

// Place spends the current deck player on the given cell. A valid placement
// scores and extends the streak; an invalid one resets the streak and burns a
// turn. Guard violations (terminal state, occupied cell, exhausted deck,
// unknown cell) return the state unchanged so live play never faults.
func Place(s game.State, categoryID string) game.State {
	if s.Status != game.StatusPlaying {
		return s
	}
	if s.Filled(categoryID) {
		return s
	}
	if s.DeckIndex >= len(s.Deck) {
		return s
	}

	player := s.Deck[s.DeckIndex]

	if s.WildcardMode {
		if s.WildcardsLeft <= 0 {
			return s
		}
		next := s.Clone()
		next.Placements[categoryID] = player.ID
		next.WildcardsLeft--
		next.WildcardMode = false
		next.Score += wildcardBonus
		next.Streak++
		if next.Streak > next.MaxStreak {
			next.MaxStreak = next.Streak
		}
		next.DeckIndex++
		next.History = append(next.History, game.HistoryEntry{
			TurnNumber:   s.DeckIndex,
			PlayerID:     player.ID,
			PlayerName:   player.Name,
			Action:       game.ActionWildcard,
			TargetCellID: categoryID,
			WasValid:     true,
		})
		return PostTurn(next)
	}

	cat, ok := s.CategoryByID(categoryID)
	if !ok {
		return s
	}

	valid := Validate(player, cat)
	next := s.Clone()

	if valid {
		next.Placements[categoryID] = player.ID
		next.Streak++
		if next.Streak > next.MaxStreak {
			next.MaxStreak = next.Streak
		}
		next.Score += CalculateScore(cat, next.Streak)
	} else {
		next.Streak = 0
		next.RemainingTurns--
	}

	next.DeckIndex++
	next.History = append(next.History, game.HistoryEntry{
		TurnNumber:   s.DeckIndex,
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		Action:       game.ActionPlaced,
		TargetCellID: categoryID,
		WasValid:     valid,
	})

	return PostTurn(next)
}

// Skip passes on the current deck player. Skipping resets the streak and
// costs a turn, same as a wrong placement.
func Skip(s game.State) game.State {
	if s.Status != game.StatusPlaying {
		return s
	}
	if s.DeckIndex >= len(s.Deck) {
		return s
	}

	player := s.Deck[s.DeckIndex]
	next := s.Clone()
	next.Streak = 0
	next.RemainingTurns--
	next.DeckIndex++
	next.WildcardMode = false
	next.History = append(next.History, game.HistoryEntry{
		TurnNumber: s.DeckIndex,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Action:     game.ActionSkipped,
	})
	return PostTurn(next)
}

// EnterWildcard arms wildcard mode when one is left; the next placement then
// succeeds anywhere for a flat bonus.
func EnterWildcard(s game.State) game.State {
	if s.Status != game.StatusPlaying || s.WildcardsLeft <= 0 {
		return s
	}
	next := s.Clone()
	next.WildcardMode = true
	return next
}

// CancelWildcard disarms wildcard mode.
func CancelWildcard(s game.State) game.State {
	next := s.Clone()
	next.WildcardMode = false
	return next
}
