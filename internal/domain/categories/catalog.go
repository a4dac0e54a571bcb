package categories

// Catalog is the full pool of categories used for daily grid generation.
// It mirrors the curated game data set: 10 teams, 8 countries, 6 stats,
// 5 roles, 4 trophies, 3 teammates, 6 achievements and 6 combos.
var Catalog = mustCatalog([]Category{
	// Teams.
	{ID: "team_mi", Label: "Mumbai Indians", ShortLabel: "MI", Icon: "shield", Type: KindTeam, ValidatorKey: "team:MI"},
	{ID: "team_csk", Label: "Chennai Super Kings", ShortLabel: "CSK", Icon: "shield", Type: KindTeam, ValidatorKey: "team:CSK"},
	{ID: "team_rcb", Label: "Royal Challengers", ShortLabel: "RCB", Icon: "shield", Type: KindTeam, ValidatorKey: "team:RCB"},
	{ID: "team_dc", Label: "Delhi Capitals", ShortLabel: "DC", Icon: "shield", Type: KindTeam, ValidatorKey: "team:DC"},
	{ID: "team_srh", Label: "Sunrisers Hyderabad", ShortLabel: "SRH", Icon: "shield", Type: KindTeam, ValidatorKey: "team:SRH"},
	{ID: "team_rr", Label: "Rajasthan Royals", ShortLabel: "RR", Icon: "shield", Type: KindTeam, ValidatorKey: "team:RR"},
	{ID: "team_kkr", Label: "Kolkata Knight Riders", ShortLabel: "KKR", Icon: "shield", Type: KindTeam, ValidatorKey: "team:KKR"},
	{ID: "team_pbks", Label: "Punjab Kings", ShortLabel: "PBKS", Icon: "shield", Type: KindTeam, ValidatorKey: "team:PBKS"},
	{ID: "team_gt", Label: "Gujarat Titans", ShortLabel: "GT", Icon: "shield", Type: KindTeam, ValidatorKey: "team:GT"},
	{ID: "team_lsg", Label: "Lucknow Super Giants", ShortLabel: "LSG", Icon: "shield", Type: KindTeam, ValidatorKey: "team:LSG"},

	// Countries.
	{ID: "country_ind", Label: "India", ShortLabel: "IND", Icon: "flag", Type: KindCountry, ValidatorKey: "country:India"},
	{ID: "country_aus", Label: "Australia", ShortLabel: "AUS", Icon: "flag", Type: KindCountry, ValidatorKey: "country:Australia"},
	{ID: "country_eng", Label: "England", ShortLabel: "ENG", Icon: "flag", Type: KindCountry, ValidatorKey: "country:England"},
	{ID: "country_sa", Label: "South Africa", ShortLabel: "SA", Icon: "flag", Type: KindCountry, ValidatorKey: "country:South Africa"},
	{ID: "country_nz", Label: "New Zealand", ShortLabel: "NZ", Icon: "flag", Type: KindCountry, ValidatorKey: "country:New Zealand"},
	{ID: "country_pak", Label: "Pakistan", ShortLabel: "PAK", Icon: "flag", Type: KindCountry, ValidatorKey: "country:Pakistan"},
	{ID: "country_sl", Label: "Sri Lanka", ShortLabel: "SL", Icon: "flag", Type: KindCountry, ValidatorKey: "country:Sri Lanka"},
	{ID: "country_wi", Label: "West Indies", ShortLabel: "WI", Icon: "flag", Type: KindCountry, ValidatorKey: "country:West Indies"},

	// Stats.
	{ID: "stat_10k_runs", Label: "10K+ Runs", ShortLabel: "10K RUNS", Icon: "target", Type: KindStat, ValidatorKey: "stat:totalRuns>=10000"},
	{ID: "stat_5k_odi", Label: "5000+ ODI Runs", ShortLabel: "5K ODI", Icon: "target", Type: KindStat, ValidatorKey: "stat:odiRuns>=5000"},
	{ID: "stat_300_wkts", Label: "300+ Wickets", ShortLabel: "300 WKTS", Icon: "circle-dot", Type: KindStat, ValidatorKey: "stat:totalWickets>=300"},
	{ID: "stat_century", Label: "Century Maker", ShortLabel: "100s", Icon: "award", Type: KindStat, ValidatorKey: "stat:centuries>=1"},
	{ID: "stat_50_tests", Label: "50+ Test Matches", ShortLabel: "50 TESTS", Icon: "target", Type: KindStat, ValidatorKey: "stat:testMatches>=50"},
	{ID: "stat_1k_ipl", Label: "1000+ IPL Runs", ShortLabel: "1K IPL", Icon: "target", Type: KindStat, ValidatorKey: "stat:iplRuns>=1000"},

	// Roles.
	{ID: "role_pacer", Label: "Fast Bowler", ShortLabel: "PACER", Icon: "zap", Type: KindRole, ValidatorKey: "role:Fast Bowler"},
	{ID: "role_spinner", Label: "Spin Wizard", ShortLabel: "SPINNER", Icon: "refresh-cw", Type: KindRole, ValidatorKey: "role:Spin Bowler"},
	{ID: "role_allrounder", Label: "All-Rounder", ShortLabel: "ALL-RTR", Icon: "star", Type: KindRole, ValidatorKey: "role:All-Rounder"},
	{ID: "role_wk", Label: "Wicket-Keeper", ShortLabel: "WK", Icon: "shield", Type: KindRole, ValidatorKey: "role:WK-Bat"},
	{ID: "role_batsman", Label: "Batsman", ShortLabel: "BAT", Icon: "award", Type: KindRole, ValidatorKey: "role:Batsman"},

	// Trophies.
	{ID: "trophy_ipl", Label: "IPL Winner", ShortLabel: "IPL", Icon: "trophy", Type: KindTrophy, ValidatorKey: "trophy:IPL"},
	{ID: "trophy_cwc", Label: "World Cup Winner", ShortLabel: "CWC", Icon: "trophy", Type: KindTrophy, ValidatorKey: "trophy:CWC"},
	{ID: "trophy_t20wc", Label: "T20 WC Winner", ShortLabel: "T20WC", Icon: "trophy", Type: KindTrophy, ValidatorKey: "trophy:T20WC"},
	{ID: "trophy_ct", Label: "Champions Trophy", ShortLabel: "CT", Icon: "trophy", Type: KindTrophy, ValidatorKey: "trophy:CT"},

	// Teammates.
	{ID: "tm_dhoni", Label: "Played with Dhoni", ShortLabel: "w/ DHONI", Icon: "users", Type: KindTeammate, ValidatorKey: "teammate:ind_ms_dhoni"},
	{ID: "tm_kohli", Label: "Played with Kohli", ShortLabel: "w/ KOHLI", Icon: "users", Type: KindTeammate, ValidatorKey: "teammate:ind_virat_kohli"},
	{ID: "tm_sachin", Label: "Played with Sachin", ShortLabel: "w/ SACHIN", Icon: "users", Type: KindTeammate, ValidatorKey: "teammate:ind_sachin_tendulkar"},

	// Achievements.
	{ID: "ach_captains", Label: "Captains", ShortLabel: "CAPTAIN", Icon: "crown", Type: KindAchievement, ValidatorKey: "category:Captains"},
	{ID: "ach_century_makers", Label: "50+ Century Makers", ShortLabel: "50+ 100s", Icon: "award", Type: KindAchievement, ValidatorKey: "category:100+ Century Makers"},
	{ID: "ach_fastest_bowling", Label: "Fastest Bowling", ShortLabel: "PACE KING", Icon: "zap", Type: KindAchievement, ValidatorKey: "category:Fastest Bowling"},
	{ID: "ach_aggressive_batsmen", Label: "Aggressive Batsmen", ShortLabel: "AGGR BAT", Icon: "flame", Type: KindAchievement, ValidatorKey: "category:Aggressive Batsmen"},
	{ID: "ach_world_cup_winners", Label: "World Cup Winners", ShortLabel: "WC WIN", Icon: "trophy", Type: KindAchievement, ValidatorKey: "category:World Cup Winners"},
	{ID: "ach_ipl_superstars", Label: "IPL Superstars", ShortLabel: "IPL STAR", Icon: "star", Type: KindAchievement, ValidatorKey: "category:IPL Superstars"},

	// Combos.
	{ID: "combo_mi_ind", Label: "MI + Indian", ShortLabel: "MI+IND", Icon: "shield", Type: KindCombo, ComboIcons: []string{"shield", "flag"}, ValidatorKey: "combo:team:MI+country:India"},
	{ID: "combo_csk_pacer", Label: "CSK + Pacer", ShortLabel: "CSK+PACE", Icon: "shield", Type: KindCombo, ComboIcons: []string{"shield", "zap"}, ValidatorKey: "combo:team:CSK+role:Fast Bowler"},
	{ID: "combo_aus_300", Label: "AUS + 300 Wkts", ShortLabel: "AUS+WKTS", Icon: "flag", Type: KindCombo, ComboIcons: []string{"flag", "circle-dot"}, ValidatorKey: "combo:country:Australia+stat:totalWickets>=300"},
	{ID: "combo_rcb_bat", Label: "RCB + Batsman", ShortLabel: "RCB+BAT", Icon: "shield", Type: KindCombo, ComboIcons: []string{"shield", "award"}, ValidatorKey: "combo:team:RCB+role:Batsman"},
	{ID: "combo_ind_spinner", Label: "IND + Spinner", ShortLabel: "IND+SPIN", Icon: "flag", Type: KindCombo, ComboIcons: []string{"flag", "refresh-cw"}, ValidatorKey: "combo:country:India+role:Spin Bowler"},
	{ID: "combo_ipl_csk", Label: "CSK + IPL Winner", ShortLabel: "CSK+IPL", Icon: "shield", Type: KindCombo, ComboIcons: []string{"shield", "trophy"}, ValidatorKey: "combo:team:CSK+trophy:IPL"},
})

func mustCatalog(cats []Category) []Category {
	for i := range cats {
		if err := Normalize(&cats[i]); err != nil {
			panic(err)
		}
	}
	return cats
}
