// Package fixture provides a static player pool and the built-in category
// catalog, useful for local development, tests and bootstrapping without any
// data files or upstream API.
package fixture

import (
	"context"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// Provider returns a deterministic data set. The pool is curated so every
// catalog category has multiple matching players and both grid sizes generate
// solvable grids.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns the static player pool.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return Pool(), nil
}

// FetchCategories returns the built-in catalog.
func (p *Provider) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	_ = ctx
	return categories.Catalog, nil
}

// Pool returns a fresh copy of the fixture player pool.
func Pool() []players.Player {
	return append([]players.Player(nil), pool...)
}

var pool = []players.Player{
	{
		ID: "ind_virat_kohli", Name: "Virat Kohli", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"RCB"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 9230, TestMatches: 113, OdiRuns: 13906, OdiMatches: 295, T20IRuns: 4188, T20IMatches: 125, IPLRuns: 8004, IPLMatches: 252, TotalRuns: 27324, Centuries: 80, IPLCenturies: 8},
		Trophies:     []string{"CWC", "T20WC", "CT"},
		Teammates:    []string{"ind_ms_dhoni", "ind_sachin_tendulkar", "ind_rohit_sharma", "ind_jasprit_bumrah"},
		Achievements: []string{"Captains", "100+ Century Makers", "Aggressive Batsmen", "World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "ind_ms_dhoni", Name: "MS Dhoni", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"CSK"}, PrimaryRole: "WK-Bat",
		Stats:        players.Stats{TestRuns: 4876, TestMatches: 90, OdiRuns: 10773, OdiMatches: 350, T20IRuns: 1617, T20IMatches: 98, IPLRuns: 5243, IPLMatches: 264, TotalRuns: 17266, Centuries: 16},
		Trophies:     []string{"IPL", "CWC", "T20WC", "CT"},
		Teammates:    []string{"ind_virat_kohli", "ind_sachin_tendulkar", "ind_ravindra_jadeja", "ind_ravichandran_ashwin"},
		Achievements: []string{"Captains", "World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "ind_sachin_tendulkar", Name: "Sachin Tendulkar", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"MI"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 15921, TestMatches: 200, OdiRuns: 18426, OdiMatches: 463, IPLRuns: 2334, IPLMatches: 78, TotalRuns: 34357, Centuries: 100, IPLCenturies: 1},
		Trophies:     []string{"IPL", "CWC"},
		Teammates:    []string{"ind_ms_dhoni", "ind_virat_kohli", "ind_rohit_sharma", "aus_ricky_ponting"},
		Achievements: []string{"100+ Century Makers", "World Cup Winners"},
	},
	{
		ID: "ind_rohit_sharma", Name: "Rohit Sharma", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"MI"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 4301, TestMatches: 67, OdiRuns: 10866, OdiMatches: 273, T20IRuns: 4231, T20IMatches: 159, IPLRuns: 6628, IPLMatches: 257, TotalRuns: 19398, Centuries: 49, IPLCenturies: 2},
		Trophies:     []string{"IPL", "T20WC", "CT"},
		Teammates:    []string{"ind_sachin_tendulkar", "ind_ms_dhoni", "ind_virat_kohli", "ind_jasprit_bumrah", "wi_kieron_pollard", "sl_lasith_malinga"},
		Achievements: []string{"Captains", "World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "ind_ravindra_jadeja", Name: "Ravindra Jadeja", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"CSK", "RR"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{TestRuns: 3370, TestWickets: 319, TestMatches: 77, OdiRuns: 2806, OdiWickets: 231, OdiMatches: 204, IPLRuns: 2959, IPLWickets: 160, IPLMatches: 240, TotalRuns: 6700, TotalWickets: 613, Centuries: 4},
		Trophies:     []string{"IPL", "T20WC", "CT"},
		Teammates:    []string{"ind_ms_dhoni", "ind_virat_kohli", "ind_ravichandran_ashwin"},
		Achievements: []string{"World Cup Winners"},
	},
	{
		ID: "ind_ravichandran_ashwin", Name: "Ravichandran Ashwin", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"CSK", "RR", "DC", "PBKS"}, PrimaryRole: "Spin Bowler",
		Stats:        players.Stats{TestRuns: 3503, TestWickets: 537, TestMatches: 106, OdiWickets: 156, OdiMatches: 116, IPLWickets: 180, IPLMatches: 212, TotalRuns: 4400, TotalWickets: 765, Centuries: 6},
		Trophies:     []string{"IPL", "CWC", "CT"},
		Teammates:    []string{"ind_ms_dhoni", "ind_virat_kohli", "ind_ravindra_jadeja"},
		Achievements: []string{"World Cup Winners"},
	},
	{
		ID: "ind_jasprit_bumrah", Name: "Jasprit Bumrah", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"MI"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 205, TestMatches: 45, OdiWickets: 149, OdiMatches: 89, T20IWickets: 89, T20IMatches: 70, IPLWickets: 165, IPLMatches: 133, TotalWickets: 443},
		Trophies:     []string{"IPL", "T20WC", "CT"},
		Teammates:    []string{"ind_rohit_sharma", "ind_virat_kohli", "wi_kieron_pollard"},
		Achievements: []string{"Fastest Bowling", "World Cup Winners"},
	},
	{
		ID: "ind_hardik_pandya", Name: "Hardik Pandya", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"MI", "GT"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{TestRuns: 532, TestMatches: 11, OdiRuns: 1769, OdiWickets: 84, OdiMatches: 92, IPLRuns: 2525, IPLWickets: 65, IPLMatches: 139, TotalRuns: 4900, TotalWickets: 180},
		Trophies:     []string{"IPL", "T20WC", "CT"},
		Teammates:    []string{"ind_rohit_sharma", "ind_virat_kohli", "ind_jasprit_bumrah"},
		Achievements: []string{"World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "ind_rishabh_pant", Name: "Rishabh Pant", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"DC", "LSG"}, PrimaryRole: "WK-Bat",
		Stats:        players.Stats{TestRuns: 2948, TestMatches: 44, OdiRuns: 871, OdiMatches: 31, IPLRuns: 3284, IPLMatches: 111, TotalRuns: 7300, Centuries: 7, IPLCenturies: 1},
		Trophies:     []string{"T20WC", "CT"},
		Teammates:    []string{"ind_virat_kohli", "ind_rohit_sharma"},
		Achievements: []string{"Aggressive Batsmen"},
	},
	{
		ID: "ind_kl_rahul", Name: "KL Rahul", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"RCB", "PBKS", "LSG", "DC"}, PrimaryRole: "WK-Bat",
		Stats:        players.Stats{TestRuns: 3257, TestMatches: 58, OdiRuns: 2962, OdiMatches: 85, IPLRuns: 4683, IPLMatches: 132, TotalRuns: 7600, Centuries: 17, IPLCenturies: 4},
		Trophies:     []string{"CT"},
		Teammates:    []string{"ind_virat_kohli", "ind_rohit_sharma"},
		Achievements: []string{"IPL Superstars"},
	},
	{
		ID: "ind_yuzvendra_chahal", Name: "Yuzvendra Chahal", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"MI", "RCB", "RR", "PBKS"}, PrimaryRole: "Spin Bowler",
		Stats:        players.Stats{OdiWickets: 121, OdiMatches: 72, T20IWickets: 96, T20IMatches: 80, IPLWickets: 205, IPLMatches: 160, TotalWickets: 217},
		Teammates:    []string{"ind_virat_kohli", "ind_rohit_sharma"},
		Achievements: nil,
	},
	{
		ID: "ind_deepak_chahar", Name: "Deepak Chahar", Country: "India", CountryCode: "IN",
		IPLTeams: []string{"CSK", "MI"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{OdiWickets: 16, OdiMatches: 13, T20IWickets: 31, T20IMatches: 24, IPLWickets: 80, IPLMatches: 90, TotalWickets: 47},
		Trophies:     []string{"IPL"},
		Teammates:    []string{"ind_ms_dhoni", "ind_ravindra_jadeja"},
		Achievements: nil,
	},
	{
		ID: "aus_ricky_ponting", Name: "Ricky Ponting", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"KKR", "MI"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 13378, TestMatches: 168, OdiRuns: 13704, OdiMatches: 375, TotalRuns: 27483, Centuries: 71},
		Trophies:     []string{"CWC", "CT"},
		Teammates:    []string{"ind_sachin_tendulkar", "aus_mitchell_starc"},
		Achievements: []string{"Captains", "100+ Century Makers", "World Cup Winners"},
	},
	{
		ID: "aus_david_warner", Name: "David Warner", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"SRH", "DC"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 8786, TestMatches: 112, OdiRuns: 6932, OdiMatches: 161, T20IRuns: 3277, T20IMatches: 110, IPLRuns: 6565, IPLMatches: 184, TotalRuns: 19000, Centuries: 49, IPLCenturies: 4},
		Trophies:     []string{"CWC", "T20WC"},
		Teammates:    []string{"aus_mitchell_starc", "aus_pat_cummins", "aus_glenn_maxwell"},
		Achievements: []string{"Aggressive Batsmen", "World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "aus_mitchell_starc", Name: "Mitchell Starc", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"RCB", "KKR", "DC"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 358, TestMatches: 89, OdiWickets: 236, OdiMatches: 121, T20IWickets: 79, T20IMatches: 65, IPLWickets: 51, IPLMatches: 41, TotalWickets: 673},
		Trophies:     []string{"IPL", "CWC", "T20WC"},
		Teammates:    []string{"aus_david_warner", "aus_pat_cummins", "ind_virat_kohli"},
		Achievements: []string{"Fastest Bowling", "World Cup Winners"},
	},
	{
		ID: "aus_pat_cummins", Name: "Pat Cummins", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"KKR", "SRH", "DC"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 294, TestMatches: 67, OdiWickets: 143, OdiMatches: 90, T20IWickets: 59, T20IMatches: 53, IPLWickets: 62, IPLMatches: 58, TotalWickets: 496},
		Trophies:     []string{"CWC", "T20WC"},
		Teammates:    []string{"aus_david_warner", "aus_mitchell_starc"},
		Achievements: []string{"Captains", "Fastest Bowling", "World Cup Winners"},
	},
	{
		ID: "aus_glenn_maxwell", Name: "Glenn Maxwell", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"RCB", "PBKS", "DC", "MI"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{OdiRuns: 3990, OdiWickets: 77, OdiMatches: 149, T20IRuns: 2605, T20IMatches: 113, IPLRuns: 2771, IPLMatches: 134, TotalRuns: 7400, TotalWickets: 130, Centuries: 7},
		Trophies:     []string{"CWC"},
		Teammates:    []string{"ind_virat_kohli", "aus_david_warner"},
		Achievements: []string{"Aggressive Batsmen", "World Cup Winners"},
	},
	{
		ID: "aus_shane_watson", Name: "Shane Watson", Country: "Australia", CountryCode: "AU",
		IPLTeams: []string{"RR", "RCB", "CSK"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{TestRuns: 3731, TestWickets: 75, TestMatches: 59, OdiRuns: 5757, OdiWickets: 168, OdiMatches: 190, IPLRuns: 3874, IPLWickets: 92, IPLMatches: 145, TotalRuns: 10950, TotalWickets: 281, Centuries: 13, IPLCenturies: 4},
		Trophies:     []string{"IPL", "CWC", "CT"},
		Teammates:    []string{"ind_ms_dhoni", "aus_ricky_ponting"},
		Achievements: []string{"World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "eng_ben_stokes", Name: "Ben Stokes", Country: "England", CountryCode: "GB",
		IPLTeams: []string{"RR", "CSK", "PBKS"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{TestRuns: 6402, TestWickets: 210, TestMatches: 105, OdiRuns: 3463, OdiWickets: 74, OdiMatches: 114, IPLRuns: 935, IPLMatches: 45, TotalRuns: 10300, TotalWickets: 310, Centuries: 14},
		Trophies:     []string{"CWC", "T20WC"},
		Teammates:    []string{"eng_jos_buttler", "ind_ms_dhoni"},
		Achievements: []string{"Captains", "World Cup Winners"},
	},
	{
		ID: "eng_jos_buttler", Name: "Jos Buttler", Country: "England", CountryCode: "GB",
		IPLTeams: []string{"MI", "RR", "GT"}, PrimaryRole: "WK-Bat",
		Stats:        players.Stats{TestRuns: 2907, TestMatches: 57, OdiRuns: 5422, OdiMatches: 181, T20IRuns: 3869, T20IMatches: 127, IPLRuns: 3582, IPLMatches: 107, TotalRuns: 12200, Centuries: 16, IPLCenturies: 7},
		Trophies:     []string{"CWC", "T20WC"},
		Teammates:    []string{"eng_ben_stokes", "ind_rohit_sharma"},
		Achievements: []string{"Aggressive Batsmen", "World Cup Winners", "IPL Superstars"},
	},
	{
		ID: "eng_james_anderson", Name: "James Anderson", Country: "England", CountryCode: "GB",
		IPLTeams: nil, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 704, TestMatches: 188, OdiWickets: 269, OdiMatches: 194, TotalWickets: 991},
		Teammates:    []string{"eng_ben_stokes", "eng_jos_buttler"},
		Achievements: []string{"Fastest Bowling"},
	},
	{
		ID: "sa_ab_de_villiers", Name: "AB de Villiers", Country: "South Africa", CountryCode: "ZA",
		IPLTeams: []string{"DC", "RCB"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 8765, TestMatches: 114, OdiRuns: 9577, OdiMatches: 228, IPLRuns: 5162, IPLMatches: 184, TotalRuns: 20014, Centuries: 47, IPLCenturies: 3},
		Teammates:    []string{"ind_virat_kohli", "sa_dale_steyn"},
		Achievements: []string{"Aggressive Batsmen", "IPL Superstars"},
	},
	{
		ID: "sa_dale_steyn", Name: "Dale Steyn", Country: "South Africa", CountryCode: "ZA",
		IPLTeams: []string{"RCB", "SRH", "GT"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 439, TestMatches: 93, OdiWickets: 196, OdiMatches: 125, IPLWickets: 97, IPLMatches: 95, TotalWickets: 699},
		Teammates:    []string{"ind_virat_kohli", "sa_ab_de_villiers"},
		Achievements: []string{"Fastest Bowling"},
	},
	{
		ID: "nz_kane_williamson", Name: "Kane Williamson", Country: "New Zealand", CountryCode: "NZ",
		IPLTeams: []string{"SRH", "GT"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 9276, TestMatches: 105, OdiRuns: 7115, OdiMatches: 173, IPLRuns: 2128, IPLMatches: 79, TotalRuns: 18900, Centuries: 45},
		Teammates:    []string{"nz_trent_boult", "aus_david_warner"},
		Achievements: []string{"Captains"},
	},
	{
		ID: "nz_trent_boult", Name: "Trent Boult", Country: "New Zealand", CountryCode: "NZ",
		IPLTeams: []string{"SRH", "DC", "MI", "RR"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 317, TestMatches: 78, OdiWickets: 211, OdiMatches: 114, IPLWickets: 121, IPLMatches: 104, TotalWickets: 602},
		Trophies:     []string{"IPL"},
		Teammates:    []string{"nz_kane_williamson", "ind_rohit_sharma"},
		Achievements: []string{"Fastest Bowling"},
	},
	{
		ID: "pak_babar_azam", Name: "Babar Azam", Country: "Pakistan", CountryCode: "PK",
		IPLTeams: nil, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 4014, TestMatches: 54, OdiRuns: 5957, OdiMatches: 123, T20IRuns: 4223, T20IMatches: 123, TotalRuns: 14194, Centuries: 31},
		Teammates:    []string{"pak_shaheen_afridi"},
		Achievements: []string{"Captains"},
	},
	{
		ID: "pak_shaheen_afridi", Name: "Shaheen Afridi", Country: "Pakistan", CountryCode: "PK",
		IPLTeams: nil, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 116, TestMatches: 30, OdiWickets: 110, OdiMatches: 58, T20IWickets: 103, T20IMatches: 76, TotalWickets: 329},
		Teammates:    []string{"pak_babar_azam"},
		Achievements: []string{"Fastest Bowling"},
	},
	{
		ID: "sl_kumar_sangakkara", Name: "Kumar Sangakkara", Country: "Sri Lanka", CountryCode: "LK",
		IPLTeams: []string{"PBKS", "SRH"}, PrimaryRole: "WK-Bat",
		Stats:        players.Stats{TestRuns: 12400, TestMatches: 134, OdiRuns: 14234, OdiMatches: 404, IPLRuns: 1687, IPLMatches: 71, TotalRuns: 28016, Centuries: 63},
		Trophies:     []string{"T20WC"},
		Teammates:    []string{"sl_lasith_malinga"},
		Achievements: []string{"Captains", "100+ Century Makers"},
	},
	{
		ID: "sl_lasith_malinga", Name: "Lasith Malinga", Country: "Sri Lanka", CountryCode: "LK",
		IPLTeams: []string{"MI"}, PrimaryRole: "Fast Bowler",
		Stats:        players.Stats{TestWickets: 101, TestMatches: 30, OdiWickets: 338, OdiMatches: 226, T20IWickets: 107, T20IMatches: 84, IPLWickets: 170, IPLMatches: 122, TotalWickets: 546},
		Trophies:     []string{"IPL", "T20WC"},
		Teammates:    []string{"sl_kumar_sangakkara", "ind_sachin_tendulkar", "ind_rohit_sharma"},
		Achievements: []string{"Fastest Bowling"},
	},
	{
		ID: "wi_chris_gayle", Name: "Chris Gayle", Country: "West Indies", CountryCode: "WI",
		IPLTeams: []string{"KKR", "RCB", "PBKS"}, PrimaryRole: "Batsman",
		Stats:        players.Stats{TestRuns: 7214, TestMatches: 103, OdiRuns: 10480, OdiMatches: 301, T20IRuns: 1899, T20IMatches: 79, IPLRuns: 4965, IPLMatches: 142, TotalRuns: 19593, Centuries: 42, IPLCenturies: 6},
		Trophies:     []string{"T20WC"},
		Teammates:    []string{"ind_virat_kohli", "wi_kieron_pollard"},
		Achievements: []string{"Aggressive Batsmen", "IPL Superstars", "World Cup Winners"},
	},
	{
		ID: "wi_kieron_pollard", Name: "Kieron Pollard", Country: "West Indies", CountryCode: "WI",
		IPLTeams: []string{"MI"}, PrimaryRole: "All-Rounder",
		Stats:        players.Stats{OdiRuns: 2706, OdiWickets: 55, OdiMatches: 123, T20IRuns: 1569, T20IMatches: 101, IPLRuns: 3412, IPLWickets: 69, IPLMatches: 189, TotalRuns: 7700, TotalWickets: 124},
		Trophies:     []string{"IPL", "T20WC"},
		Teammates:    []string{"ind_rohit_sharma", "ind_sachin_tendulkar", "wi_chris_gayle"},
		Achievements: []string{"IPL Superstars", "World Cup Winners"},
	},
}
