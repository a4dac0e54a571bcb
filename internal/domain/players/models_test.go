package players

import "testing"

func TestStatsField(t *testing.T) {
	stats := Stats{
		TestRuns:     1,
		OdiRuns:      2,
		IPLRuns:      3,
		TotalRuns:    4,
		TotalWickets: 5,
		Centuries:    6,
		IPLCenturies: 7,
	}

	tests := []struct {
		field string
		want  int
	}{
		{"testRuns", 1},
		{"odiRuns", 2},
		{"iplRuns", 3},
		{"totalRuns", 4},
		{"totalWickets", 5},
		{"centuries", 6},
		{"iplCenturies", 7},
		{"noSuchField", 0},
		{"", 0},
	}

	for _, tc := range tests {
		if got := stats.Field(tc.field); got != tc.want {
			t.Errorf("Field(%q) = %d, want %d", tc.field, got, tc.want)
		}
	}
}

func TestHasTeammateSelfGuard(t *testing.T) {
	p := Player{ID: "p1", Teammates: []string{"p1", "p2"}}
	if p.HasTeammate("p1") {
		t.Fatalf("a player must not be their own teammate")
	}
	if !p.HasTeammate("p2") {
		t.Fatalf("expected p2 to be a teammate")
	}
	if p.HasTeammate("p3") {
		t.Fatalf("p3 is not a teammate")
	}
}

func TestMembershipHelpers(t *testing.T) {
	p := Player{
		IPLTeams:     []string{"MI", "CSK"},
		Trophies:     []string{"IPL"},
		Achievements: []string{"Captains"},
	}
	if !p.HasTeam("MI") || p.HasTeam("RCB") {
		t.Fatalf("HasTeam mismatch")
	}
	if !p.HasTrophy("IPL") || p.HasTrophy("CWC") {
		t.Fatalf("HasTrophy mismatch")
	}
	if !p.HasAchievement("Captains") || p.HasAchievement("IPL Superstars") {
		t.Fatalf("HasAchievement mismatch")
	}
}
