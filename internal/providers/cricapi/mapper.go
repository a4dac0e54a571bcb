package cricapi

import (
	"strings"

	"cricket-bingo-service/internal/domain/players"
)

var countryCodes = map[string]string{
	"india":        "IN",
	"australia":    "AU",
	"england":      "GB",
	"south africa": "ZA",
	"new zealand":  "NZ",
	"pakistan":     "PK",
	"sri lanka":    "LK",
	"west indies":  "WI",
	"bangladesh":   "BD",
	"afghanistan":  "AF",
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:          providerName + "-" + p.ID,
		Name:        strings.TrimSpace(p.Name),
		Country:     strings.TrimSpace(p.Country),
		CountryCode: mapCountryCode(p.Country),
		IPLTeams:    mapTeams(p.Teams),
		PrimaryRole: mapRole(p.Role),
		HeadshotURL: p.PlayerImage,
	}
}

func mapCountryCode(country string) string {
	if code, ok := countryCodes[strings.ToLower(strings.TrimSpace(country))]; ok {
		return code
	}
	return ""
}

func mapTeams(teams []string) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func mapRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "batsman", "batter", "wk-batsman", "wicketkeeper batsman":
		return "Batsman"
	case "bowler", "fast bowler", "pace bowler":
		return "Fast Bowler"
	case "spin bowler", "spinner":
		return "Spin Bowler"
	case "allrounder", "all-rounder", "batting allrounder", "bowling allrounder":
		return "All-Rounder"
	default:
		return strings.TrimSpace(role)
	}
}
