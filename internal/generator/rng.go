// Package generator builds playable games: a seeded category grid verified
// for solvability, plus a deck that covers every cell. Daily games are fully
// reproducible from (date, gridSize); ad-hoc games are randomized each call.
package generator

const seedNamespace = "cricket-bingo"

// rng is a mulberry32 generator. The exact 32-bit wraparound operations are
// load-bearing: web clients derive the same daily puzzle from the same seed,
// so the output sequence must match bit for bit.
type rng struct {
	state uint32
}

func newRNG(seed int32) *rng {
	return &rng{state: uint32(seed)}
}

// next returns the next value in [0, 1).
func (r *rng) next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Seed derives the 32-bit daily seed from the date key and grid size using a
// polynomial rolling hash (h = h*31 + byte) with int32 wraparound. Keys are
// ASCII, so hashing bytes matches hashing character codes.
func Seed(dateKey string, gridSize int) int32 {
	key := seedNamespace + "-" + dateKey + "-" + digit(gridSize)
	var h int32
	for i := 0; i < len(key); i++ {
		h = h*31 + int32(key[i])
	}
	return h
}

func digit(n int) string {
	if n < 0 || n > 9 {
		return "?"
	}
	return string(rune('0' + n))
}

// seededShuffle returns a Fisher-Yates permutation of items driven by r,
// leaving the input untouched.
func seededShuffle[T any](items []T, r *rng) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := int(r.next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
