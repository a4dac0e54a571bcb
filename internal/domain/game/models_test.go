package game

import (
	"testing"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

func sampleGame(gridSize int) Game {
	cells := gridSize * gridSize
	grid := make([]categories.Category, cells)
	for i := range grid {
		grid[i] = categories.Category{ID: string(rune('a' + i))}
	}
	return Game{
		ID:       "g1",
		GridSize: gridSize,
		Grid:     grid,
		Deck:     []players.Player{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}},
	}
}

func TestNewStateTurnBudgets(t *testing.T) {
	tests := []struct {
		gridSize  int
		wantTurns int
	}{
		{3, 20},
		{4, 25},
	}

	for _, tc := range tests {
		st := NewState(sampleGame(tc.gridSize))
		if st.RemainingTurns != tc.wantTurns {
			t.Errorf("gridSize %d: remaining turns = %d, want %d", tc.gridSize, st.RemainingTurns, tc.wantTurns)
		}
		if st.WildcardsLeft != 1 {
			t.Errorf("gridSize %d: wildcards = %d, want 1", tc.gridSize, st.WildcardsLeft)
		}
		if st.Status != StatusPlaying {
			t.Errorf("gridSize %d: status = %q, want playing", tc.gridSize, st.Status)
		}
		if st.DeckIndex != 0 || len(st.Placements) != 0 {
			t.Errorf("gridSize %d: expected fresh cursor and empty placements", tc.gridSize)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewState(sampleGame(3))
	st.Placements["a"] = "p1"
	st.History = append(st.History, HistoryEntry{TurnNumber: 0, PlayerID: "p1"})
	st.WinLine = []int{0, 1, 2}

	clone := st.Clone()
	clone.Placements["b"] = "p2"
	clone.History = append(clone.History, HistoryEntry{TurnNumber: 1})
	clone.WinLine[0] = 9

	if _, ok := st.Placements["b"]; ok {
		t.Fatalf("clone placement leaked into original")
	}
	if len(st.History) != 1 {
		t.Fatalf("clone history leaked into original")
	}
	if st.WinLine[0] != 0 {
		t.Fatalf("clone win line leaked into original")
	}
}

func TestCurrentPlayer(t *testing.T) {
	st := NewState(sampleGame(3))
	p, ok := st.CurrentPlayer()
	if !ok || p.ID != "p1" {
		t.Fatalf("expected p1 at cursor, got %+v ok=%v", p, ok)
	}

	st.DeckIndex = len(st.Deck)
	if _, ok := st.CurrentPlayer(); ok {
		t.Fatalf("expected no player past deck end")
	}

	st.DeckIndex = 0
	st.Status = StatusWon
	if _, ok := st.CurrentPlayer(); ok {
		t.Fatalf("expected no player on terminal state")
	}
}

func TestProgressProjection(t *testing.T) {
	st := NewState(sampleGame(3))
	st.Placements["a"] = "p1"
	st.Placements["b"] = ""
	st.Score = 150

	prog := st.Progress()
	if prog.Score != 150 {
		t.Fatalf("score = %d, want 150", prog.Score)
	}
	if prog.FilledCount != 1 {
		t.Fatalf("filled count = %d, want 1", prog.FilledCount)
	}
	if _, ok := prog.Placements["b"]; ok {
		t.Fatalf("empty placement should be dropped from projection")
	}
	if prog.Status != StatusPlaying {
		t.Fatalf("status = %q, want playing", prog.Status)
	}
}
