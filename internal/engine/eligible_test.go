package engine

import (
	"testing"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

func TestEligibleCells(t *testing.T) {
	p := testPlayer()
	grid := []categories.Category{
		mustCategory(t, "cell_csk", "team:CSK"),
		mustCategory(t, "cell_mi", "team:MI"),
		mustCategory(t, "cell_ind", "country:India"),
		mustCategory(t, "cell_ipl", "trophy:IPL"),
	}

	got := EligibleCells(p, grid, map[string]string{})
	want := []string{"cell_csk", "cell_ind", "cell_ipl"}
	if len(got) != len(want) {
		t.Fatalf("eligible = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("eligible = %v, want %v (grid order)", got, want)
		}
	}

	// Occupied cells drop out.
	got = EligibleCells(p, grid, map[string]string{"cell_csk": "someone"})
	if len(got) != 2 || got[0] != "cell_ind" || got[1] != "cell_ipl" {
		t.Fatalf("eligible with occupied cell = %v", got)
	}
}

func TestRecommendedCell(t *testing.T) {
	grid := []categories.Category{
		mustCategory(t, "cell_country", "country:India"),
		mustCategory(t, "cell_team", "team:CSK"),
		mustCategory(t, "cell_trophy", "trophy:IPL"),
		mustCategory(t, "cell_combo", "combo:team:CSK+country:India"),
		mustCategory(t, "cell_tm", "teammate:ind_ms_dhoni"),
	}

	tests := []struct {
		name     string
		eligible []string
		want     string
	}{
		{"nothing eligible", nil, ""},
		{"combo beats everything", []string{"cell_country", "cell_combo", "cell_team"}, "cell_combo"},
		{"teammate beats trophy", []string{"cell_trophy", "cell_tm"}, "cell_tm"},
		{"trophy beats team", []string{"cell_team", "cell_trophy"}, "cell_trophy"},
		{"team beats country", []string{"cell_country", "cell_team"}, "cell_team"},
		{"single option", []string{"cell_country"}, "cell_country"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RecommendedCell(tc.eligible, grid); got != tc.want {
				t.Fatalf("RecommendedCell(%v) = %q, want %q", tc.eligible, got, tc.want)
			}
		})
	}
}

func TestRecommendedCellTieBreaksByGridOrder(t *testing.T) {
	grid := []categories.Category{
		mustCategory(t, "team_a", "team:CSK"),
		mustCategory(t, "team_b", "team:MI"),
	}
	got := RecommendedCell([]string{"team_b", "team_a"}, grid)
	if got != "team_a" {
		t.Fatalf("tie should resolve to earliest grid cell, got %q", got)
	}
}

func TestNextPlayableIndex(t *testing.T) {
	grid := []categories.Category{mustCategory(t, "cell_aus", "country:Australia")}

	indian := testPlayer()
	aussie := testPlayer()
	aussie.ID = "aus_test_player"
	aussie.Country = "Australia"

	deck := []players.Player{indian, indian, aussie, indian}

	if got := NextPlayableIndex(deck, 0, grid, map[string]string{}); got != 2 {
		t.Fatalf("NextPlayableIndex = %d, want 2", got)
	}
	if got := NextPlayableIndex(deck, 3, grid, map[string]string{}); got != -1 {
		t.Fatalf("NextPlayableIndex past last playable = %d, want -1", got)
	}
	// A full cell removes the only target.
	if got := NextPlayableIndex(deck, 0, grid, map[string]string{"cell_aus": "x"}); got != -1 {
		t.Fatalf("NextPlayableIndex with board blocked = %d, want -1", got)
	}
}
