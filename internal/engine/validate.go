// Package engine implements the pure gameplay rules: predicate matching,
// scoring, win detection, cell eligibility and turn transitions. Every
// function is a side-effect-free transformation over caller-owned values, so
// concurrent sessions can share the engine without locking.
package engine

import (
	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

// Validate reports whether the player satisfies the category's predicate.
// It fails closed: an invalid or unknown predicate matches nothing.
func Validate(player players.Player, cat categories.Category) bool {
	return matches(player, cat.Predicate)
}

func matches(player players.Player, pred categories.Predicate) bool {
	switch pred.Kind {
	case categories.KindTeam:
		return player.HasTeam(pred.Value)
	case categories.KindCountry:
		return player.Country == pred.Value
	case categories.KindStat:
		return player.Stats.Field(pred.Field) >= pred.Threshold
	case categories.KindRole:
		// "Batsman" is a deliberate alias that also covers keeper-batsmen.
		if pred.Value == "Batsman" {
			return player.PrimaryRole == "Batsman" || player.PrimaryRole == "WK-Bat"
		}
		return player.PrimaryRole == pred.Value
	case categories.KindTrophy:
		return player.HasTrophy(pred.Value)
	case categories.KindTeammate:
		return player.HasTeammate(pred.Value)
	case categories.KindAchievement:
		return player.HasAchievement(pred.Value)
	case categories.KindCombo:
		if len(pred.Subs) == 0 {
			return false
		}
		for _, sub := range pred.Subs {
			if !matches(player, sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
