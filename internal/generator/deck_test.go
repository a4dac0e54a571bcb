package generator

import (
	"testing"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/engine"
	"cricket-bingo-service/internal/providers/fixture"
)

// identityShuffle keeps deck assembly deterministic for assertions.
func identityShuffle(ids []string) []string { return ids }

func TestBuildCoverDeckCoverage(t *testing.T) {
	pool := fixture.Pool()
	grid := []categories.Category{
		cat(t, "a", "team:CSK"),
		cat(t, "b", "country:India"),
		cat(t, "c", "role:Fast Bowler"),
	}

	deck := buildCoverDeck(grid, pool, 20, identityShuffle)

	if len(deck) > 20 {
		t.Fatalf("deck has %d players, cap is 20", len(deck))
	}

	seen := make(map[string]bool)
	for _, p := range deck {
		if seen[p.ID] {
			t.Fatalf("duplicate player %q in deck", p.ID)
		}
		seen[p.ID] = true
	}

	for _, cell := range grid {
		poolMatches := 0
		for _, p := range pool {
			if engine.Validate(p, cell) {
				poolMatches++
			}
		}
		want := minPerCell
		if poolMatches < want {
			want = poolMatches
		}
		got := 0
		for _, p := range deck {
			if engine.Validate(p, cell) {
				got++
			}
		}
		if got < want {
			t.Fatalf("cell %q covered by %d deck players, want at least %d", cell.ID, got, want)
		}
	}
}

func TestBuildCoverDeckPadsWithDistractors(t *testing.T) {
	pool := []players.Player{
		{ID: "hit1", Country: "India", PrimaryRole: "Batsman"},
		{ID: "hit2", Country: "India", PrimaryRole: "Batsman"},
		{ID: "miss1", Country: "Australia", PrimaryRole: "Fast Bowler"},
		{ID: "miss2", Country: "England", PrimaryRole: "Fast Bowler"},
	}
	grid := []categories.Category{cat(t, "a", "country:India")}

	deck := buildCoverDeck(grid, pool, 4, identityShuffle)
	if len(deck) != 4 {
		t.Fatalf("deck has %d players, want the whole pool", len(deck))
	}

	distractors := 0
	for _, p := range deck {
		if !engine.Validate(p, grid[0]) {
			distractors++
		}
	}
	if distractors != 2 {
		t.Fatalf("deck carries %d distractors, want 2", distractors)
	}
}

func TestBuildCoverDeckSmallPool(t *testing.T) {
	pool := []players.Player{
		{ID: "only", Country: "India", PrimaryRole: "Batsman"},
	}
	grid := []categories.Category{cat(t, "a", "country:India")}

	deck := buildCoverDeck(grid, pool, 40, identityShuffle)
	if len(deck) != 1 {
		t.Fatalf("deck has %d players, want 1 (pool exhausted)", len(deck))
	}
}
