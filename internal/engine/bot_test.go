package engine

import (
	"math/rand"
	"testing"

	"cricket-bingo-service/internal/domain/game"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		raw     string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyMedium, false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"HARD", DifficultyHard, false},
		{"brutal", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseDifficulty(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDifficulty(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestBotPickCellMediumTakesRecommended(t *testing.T) {
	s := twoCellState(t, 2)
	s.Grid = append(s.Grid, mustCategory(t, "cell_ipl", "trophy:IPL"))

	rnd := rand.New(rand.NewSource(1))
	got := BotPickCell(s, DifficultyMedium, rnd)
	// Trophy outranks team and country in the cell priority.
	if got != "cell_ipl" {
		t.Fatalf("medium bot picked %q, want cell_ipl", got)
	}
}

func TestBotPickCellNothingEligible(t *testing.T) {
	s := twoCellState(t, 2)
	s.Placements["cell_csk"] = "x"
	s.Placements["cell_ind"] = "y"

	rnd := rand.New(rand.NewSource(1))
	if got := BotPickCell(s, DifficultyHard, rnd); got != "" {
		t.Fatalf("bot with a blocked board should skip, got %q", got)
	}
}

func TestBotPickCellEasyStaysEligible(t *testing.T) {
	s := twoCellState(t, 2)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		got := BotPickCell(s, DifficultyEasy, rnd)
		if got != "" && got != "cell_csk" && got != "cell_ind" {
			t.Fatalf("easy bot picked ineligible cell %q", got)
		}
	}
}

func TestBotTurn(t *testing.T) {
	s := twoCellState(t, 4)
	rnd := rand.New(rand.NewSource(7))

	next := BotTurn(s, DifficultyMedium, rnd)
	if len(next.History) != 1 {
		t.Fatalf("bot turn should consume exactly one turn, history = %+v", next.History)
	}
	if next.History[0].Action != game.ActionPlaced || !next.History[0].WasValid {
		t.Fatalf("medium bot should place validly, got %+v", next.History[0])
	}

	// Deterministic replay from the same seed.
	replay := BotTurn(s, DifficultyMedium, rand.New(rand.NewSource(7)))
	if replay.History[0].TargetCellID != next.History[0].TargetCellID {
		t.Fatalf("same seed should replay the same move: %q vs %q",
			replay.History[0].TargetCellID, next.History[0].TargetCellID)
	}
}

func TestBotTurnForcedSkip(t *testing.T) {
	s := twoCellState(t, 4)
	s.Placements["cell_csk"] = "x"
	s.Placements["cell_ind"] = "y"
	// Keep the session alive with an open cell nobody in the deck can fill.
	s.Grid = append(s.Grid, mustCategory(t, "cell_aus", "country:Australia"))

	next := BotTurn(s, DifficultyHard, rand.New(rand.NewSource(1)))
	if len(next.History) != 1 || next.History[0].Action != game.ActionSkipped {
		t.Fatalf("bot with nothing to play should skip, history = %+v", next.History)
	}
}

func TestBotTurnTerminalPassThrough(t *testing.T) {
	s := twoCellState(t, 4)
	s.Status = game.StatusLost
	next := BotTurn(s, DifficultyMedium, rand.New(rand.NewSource(1)))
	if next.Status != game.StatusLost || len(next.History) != 0 {
		t.Fatalf("terminal state must pass through the bot unchanged")
	}
}
