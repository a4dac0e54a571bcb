package generator

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/domain/players"
)

const (
	maxGridAttempts = 50
	dailyDeckSize   = 40
	adhocDeckSize   = 60
)

// Result carries a generated game plus generation diagnostics. Attempts is
// the number of grids discarded before the returned one; Solvable is false
// only when every attempt failed and the final grid was accepted degraded.
type Result struct {
	Game     game.Game
	Attempts int
	Solvable bool
}

func validGridSize(gridSize int) bool {
	return gridSize == 3 || gridSize == 4
}

// GenerateDaily builds the deterministic puzzle for a date and grid size.
// The same inputs always yield the same grid, deck and deck order.
func GenerateDaily(date string, gridSize int, pool []players.Player, categoryPool []categories.Category) (Result, error) {
	if !validGridSize(gridSize) {
		return Result{}, fmt.Errorf("generator: unsupported grid size %d", gridSize)
	}
	cells := gridSize * gridSize
	if len(categoryPool) < cells {
		return Result{}, fmt.Errorf("generator: category pool has %d entries, need %d", len(categoryPool), cells)
	}

	seed := Seed(date, gridSize)
	r := newRNG(seed)

	var grid []categories.Category
	solvable := false
	attempts := 0
	for i := 0; i < maxGridAttempts; i++ {
		grid = seededShuffle(categoryPool, r)[:cells]
		if Solvable(grid, pool) {
			solvable = true
			break
		}
		attempts++
	}

	shuffle := func(ids []string) []string { return seededShuffle(ids, r) }
	deck := buildCoverDeck(grid, pool, dailyDeckSize, shuffle)

	g := game.Game{
		ID:       fmt.Sprintf("daily-%s-%dx%d", date, gridSize, gridSize),
		GridSize: gridSize,
		Grid:     grid,
		Deck:     deck,
		Seed:     seed,
		Degraded: !solvable,
	}
	return Result{Game: g, Attempts: attempts, Solvable: solvable}, nil
}

// GenerateRandom builds an ad-hoc game from the caller's randomness source.
// Unlike daily games it is not reproducible and carries a larger deck.
func GenerateRandom(gridSize int, pool []players.Player, categoryPool []categories.Category, rnd *rand.Rand) (Result, error) {
	if !validGridSize(gridSize) {
		return Result{}, fmt.Errorf("generator: unsupported grid size %d", gridSize)
	}
	cells := gridSize * gridSize
	if len(categoryPool) < cells {
		return Result{}, fmt.Errorf("generator: category pool has %d entries, need %d", len(categoryPool), cells)
	}

	var grid []categories.Category
	solvable := false
	attempts := 0
	for i := 0; i < maxGridAttempts; i++ {
		grid = randShuffle(categoryPool, rnd)[:cells]
		if Solvable(grid, pool) {
			solvable = true
			break
		}
		attempts++
	}

	shuffle := func(ids []string) []string { return randShuffle(ids, rnd) }
	deck := buildCoverDeck(grid, pool, adhocDeckSize, shuffle)

	g := game.Game{
		ID:       "random-" + uuid.NewString(),
		GridSize: gridSize,
		Grid:     grid,
		Deck:     deck,
		Degraded: !solvable,
	}
	return Result{Game: g, Attempts: attempts, Solvable: solvable}, nil
}

func randShuffle[T any](items []T, rnd *rand.Rand) []T {
	out := append([]T(nil), items...)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
