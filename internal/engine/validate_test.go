package engine

import (
	"testing"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

func mustCategory(t *testing.T, id, key string) categories.Category {
	t.Helper()
	cat := categories.Category{ID: id, ValidatorKey: key}
	if err := categories.Normalize(&cat); err != nil {
		t.Fatalf("normalize %q: %v", key, err)
	}
	cat.Type = cat.Predicate.Kind
	return cat
}

func testPlayer() players.Player {
	return players.Player{
		ID:          "ind_test_player",
		Name:        "Test Player",
		Country:     "India",
		IPLTeams:    []string{"CSK", "RR"},
		PrimaryRole: "Fast Bowler",
		Stats: players.Stats{
			TotalRuns:    5000,
			TotalWickets: 320,
			OdiRuns:      3000,
			Centuries:    4,
			TestMatches:  60,
			IPLRuns:      1500,
		},
		Trophies:     []string{"IPL", "CWC"},
		Teammates:    []string{"ind_ms_dhoni"},
		Achievements: []string{"Fastest Bowling"},
	}
}

func TestValidate(t *testing.T) {
	p := testPlayer()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"team match", "team:CSK", true},
		{"team miss", "team:MI", false},
		{"country match", "country:India", true},
		{"country miss", "country:Australia", false},
		{"stat at threshold", "stat:totalWickets>=320", true},
		{"stat above threshold", "stat:totalWickets>=300", true},
		{"stat below threshold", "stat:totalWickets>=500", false},
		{"stat unknown field", "stat:gallops>=1", false},
		{"role match", "role:Fast Bowler", true},
		{"role miss", "role:Spin Bowler", false},
		{"trophy match", "trophy:IPL", true},
		{"trophy miss", "trophy:T20WC", false},
		{"teammate match", "teammate:ind_ms_dhoni", true},
		{"teammate miss", "teammate:ind_virat_kohli", false},
		{"achievement match", "category:Fastest Bowling", true},
		{"achievement miss", "category:Captains", false},
		{"combo both hold", "combo:team:CSK+role:Fast Bowler", true},
		{"combo one fails", "combo:team:MI+role:Fast Bowler", false},
		{"combo with stat", "combo:country:India+stat:totalWickets>=300", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cat := mustCategory(t, "c", tc.key)
			if got := Validate(p, cat); got != tc.want {
				t.Fatalf("Validate(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestValidateBatsmanCoversKeeperBatsman(t *testing.T) {
	cat := mustCategory(t, "role_batsman", "role:Batsman")

	keeper := testPlayer()
	keeper.PrimaryRole = "WK-Bat"
	if !Validate(keeper, cat) {
		t.Fatalf("keeper-batsman should satisfy role:Batsman")
	}

	batsman := testPlayer()
	batsman.PrimaryRole = "Batsman"
	if !Validate(batsman, cat) {
		t.Fatalf("batsman should satisfy role:Batsman")
	}

	bowler := testPlayer()
	if Validate(bowler, cat) {
		t.Fatalf("fast bowler should not satisfy role:Batsman")
	}

	// The alias runs one way only: a keeper cell is not satisfied by a batsman.
	wkCat := mustCategory(t, "role_wk", "role:WK-Bat")
	if Validate(batsman, wkCat) {
		t.Fatalf("batsman should not satisfy role:WK-Bat")
	}
	if !Validate(keeper, wkCat) {
		t.Fatalf("keeper should satisfy role:WK-Bat")
	}
}

func TestValidateTeammateSelfNeverMatches(t *testing.T) {
	p := testPlayer()
	p.Teammates = append(p.Teammates, p.ID)
	cat := mustCategory(t, "tm_self", "teammate:"+p.ID)
	if Validate(p, cat) {
		t.Fatalf("player must not match a teammate cell naming themselves")
	}
}

func TestValidateFailsClosed(t *testing.T) {
	p := testPlayer()

	invalid := categories.Category{ID: "bad", ValidatorKey: "nonsense"}
	_ = categories.Normalize(&invalid)
	if Validate(p, invalid) {
		t.Fatalf("invalid predicate must match nothing")
	}

	empty := categories.Category{ID: "empty"}
	if Validate(p, empty) {
		t.Fatalf("zero-value predicate must match nothing")
	}

	// A combo that lost its subs matches nothing rather than everything.
	hollow := categories.Category{ID: "hollow", Predicate: categories.Predicate{Kind: categories.KindCombo}}
	if Validate(p, hollow) {
		t.Fatalf("combo without subs must match nothing")
	}
}
