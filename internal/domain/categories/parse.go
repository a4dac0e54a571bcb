package categories

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const comboPrefix = "combo:"

var statPattern = regexp.MustCompile(`^(\w+)>=(\d+)$`)

// ParseValidatorKey parses a validator key into its Predicate form.
//
// Simple keys look like "team:MI", "country:India", "stat:totalRuns>=10000",
// "role:Fast Bowler", "trophy:IPL", "teammate:ind_ms_dhoni" or
// "category:Captains" (achievement tags). Combo keys join simple keys with
// '+', e.g. "combo:team:CSK+role:Fast Bowler".
func ParseValidatorKey(key string) (Predicate, error) {
	if strings.HasPrefix(key, comboPrefix) {
		return parseCombo(strings.TrimPrefix(key, comboPrefix))
	}
	return parseSimple(key)
}

func parseSimple(key string) (Predicate, error) {
	kindRaw, value, ok := strings.Cut(key, ":")
	if !ok {
		return Predicate{}, fmt.Errorf("validator key %q: missing ':'", key)
	}

	switch kindRaw {
	case "team":
		return Predicate{Kind: KindTeam, Value: value}, nil
	case "country":
		return Predicate{Kind: KindCountry, Value: value}, nil
	case "role":
		return Predicate{Kind: KindRole, Value: value}, nil
	case "trophy":
		return Predicate{Kind: KindTrophy, Value: value}, nil
	case "teammate":
		return Predicate{Kind: KindTeammate, Value: value}, nil
	case "category":
		// Legacy key name for achievement tags, kept for data compatibility.
		return Predicate{Kind: KindAchievement, Value: value}, nil
	case "stat":
		m := statPattern.FindStringSubmatch(value)
		if m == nil {
			return Predicate{}, fmt.Errorf("stat key %q: expected <field>>=<threshold>", value)
		}
		threshold, err := strconv.Atoi(m[2])
		if err != nil {
			return Predicate{}, fmt.Errorf("stat key %q: bad threshold: %w", value, err)
		}
		return Predicate{Kind: KindStat, Field: m[1], Threshold: threshold}, nil
	default:
		return Predicate{}, fmt.Errorf("validator key %q: unknown predicate type %q", key, kindRaw)
	}
}

func parseCombo(body string) (Predicate, error) {
	parts := splitCombo(body)
	if len(parts) < 2 {
		return Predicate{}, fmt.Errorf("combo key %q: expected 2+ sub-predicates", body)
	}

	subs := make([]Predicate, 0, len(parts))
	for _, part := range parts {
		sub, err := parseSimple(part)
		if err != nil {
			return Predicate{}, fmt.Errorf("combo key %q: %w", body, err)
		}
		subs = append(subs, sub)
	}
	return Predicate{Kind: KindCombo, Subs: subs}, nil
}

// splitCombo splits "team:MI+country:India" into its sub-keys. A '+' only
// separates when the accumulated token already contains a ':', so '+'
// characters inside values stay intact. Stat thresholds in the data format
// use ">=" and never a bare '+'.
func splitCombo(body string) []string {
	var parts []string
	var current strings.Builder

	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '+' && strings.Contains(current.String(), ":") {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(ch)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// Normalize parses the category's validator key in place. A key that fails to
// parse leaves an invalid predicate (matches nothing) and returns the error so
// loaders can log it; gameplay stays non-fatal either way.
func Normalize(cat *Category) error {
	pred, err := ParseValidatorKey(cat.ValidatorKey)
	if err != nil {
		cat.Predicate = Predicate{}
		return err
	}
	cat.Predicate = pred
	return nil
}
