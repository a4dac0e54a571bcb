package generator

import (
	"sort"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/engine"
)

// solveBudget caps backtracking node visits per solvability check. Candidate
// lists are small in practice, but an adversarial category pool could blow up
// the search; past the budget the grid is treated as unsolvable.
const solveBudget = 100_000

// Solvable reports whether the grid admits an injective assignment of pool
// players to cells with every predicate satisfied (each player used at most
// once). Cells are tried most-constrained-first.
func Solvable(grid []categories.Category, pool []players.Player) bool {
	candidates := make([][]string, len(grid))
	for i, cat := range grid {
		for _, p := range pool {
			if engine.Validate(p, cat) {
				candidates[i] = append(candidates[i], p.ID)
			}
		}
		if len(candidates[i]) == 0 {
			return false
		}
	}

	order := make([]int, len(grid))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(candidates[order[a]]) < len(candidates[order[b]])
	})

	used := make(map[string]bool, len(grid))
	budget := solveBudget

	var assign func(step int) bool
	assign = func(step int) bool {
		if step == len(order) {
			return true
		}
		for _, id := range candidates[order[step]] {
			if used[id] {
				continue
			}
			budget--
			if budget <= 0 {
				return false
			}
			used[id] = true
			if assign(step + 1) {
				return true
			}
			delete(used, id)
		}
		return false
	}

	return assign(0)
}
