package players

// Stats holds a player's career counters. Fields are addressed by name in stat
// predicates (e.g. "totalRuns>=10000"); a name with no matching field reads as 0.
type Stats struct {
	TestRuns     int `json:"testRuns"`
	TestWickets  int `json:"testWickets"`
	TestMatches  int `json:"testMatches"`
	OdiRuns      int `json:"odiRuns"`
	OdiWickets   int `json:"odiWickets"`
	OdiMatches   int `json:"odiMatches"`
	T20IRuns     int `json:"t20iRuns"`
	T20IWickets  int `json:"t20iWickets"`
	T20IMatches  int `json:"t20iMatches"`
	IPLRuns      int `json:"iplRuns"`
	IPLWickets   int `json:"iplWickets"`
	IPLMatches   int `json:"iplMatches"`
	TotalRuns    int `json:"totalRuns"`
	TotalWickets int `json:"totalWickets"`
	Centuries    int `json:"centuries"`
	IPLCenturies int `json:"iplCenturies"`
}

// Field resolves a stat by its JSON field name. Unknown names return 0 so a
// mistyped predicate degrades to "no match" instead of failing hard.
func (s Stats) Field(name string) int {
	switch name {
	case "testRuns":
		return s.TestRuns
	case "testWickets":
		return s.TestWickets
	case "testMatches":
		return s.TestMatches
	case "odiRuns":
		return s.OdiRuns
	case "odiWickets":
		return s.OdiWickets
	case "odiMatches":
		return s.OdiMatches
	case "t20iRuns":
		return s.T20IRuns
	case "t20iWickets":
		return s.T20IWickets
	case "t20iMatches":
		return s.T20IMatches
	case "iplRuns":
		return s.IPLRuns
	case "iplWickets":
		return s.IPLWickets
	case "iplMatches":
		return s.IPLMatches
	case "totalRuns":
		return s.TotalRuns
	case "totalWickets":
		return s.TotalWickets
	case "centuries":
		return s.Centuries
	case "iplCenturies":
		return s.IPLCenturies
	default:
		return 0
	}
}

// Player is a cricket player record. Players are loaded once into the pool
// store at boot and treated as read-only afterwards.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	CountryCode  string   `json:"countryCode,omitempty"`
	IPLTeams     []string `json:"iplTeams"`
	PrimaryRole  string   `json:"primaryRole"`
	Stats        Stats    `json:"stats"`
	Trophies     []string `json:"trophies"`
	Teammates    []string `json:"teammates"`
	Achievements []string `json:"categories,omitempty"`
	HeadshotURL  string   `json:"headshot_url,omitempty"`
}

// HasTeam reports whether the player ever played for the given team.
func (p Player) HasTeam(team string) bool {
	return contains(p.IPLTeams, team)
}

// HasTrophy reports whether the player won the given trophy.
func (p Player) HasTrophy(trophy string) bool {
	return contains(p.Trophies, trophy)
}

// HasTeammate reports whether the player shared a dressing room with the given
// player ID. A player is never their own teammate.
func (p Player) HasTeammate(id string) bool {
	if p.ID == id {
		return false
	}
	return contains(p.Teammates, id)
}

// HasAchievement reports whether the player carries the given achievement tag.
func (p Player) HasAchievement(tag string) bool {
	return contains(p.Achievements, tag)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
