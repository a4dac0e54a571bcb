package categories

// Kind enumerates the predicate types a grid cell can carry.
type Kind string

const (
	KindTeam        Kind = "team"
	KindCountry     Kind = "country"
	KindStat        Kind = "stat"
	KindRole        Kind = "role"
	KindTrophy      Kind = "trophy"
	KindTeammate    Kind = "teammate"
	KindAchievement Kind = "achievement"
	KindCombo       Kind = "combo"

	// KindInvalid marks a predicate that failed to parse. It matches nothing,
	// so a bad catalog entry degrades to an unfillable cell instead of a crash.
	KindInvalid Kind = ""
)

// Predicate is the parsed form of a validator key. Validator keys are parsed
// once at load time; gameplay never re-parses strings.
type Predicate struct {
	Kind      Kind
	Value     string      // team/country/role/trophy/teammate/achievement value
	Field     string      // stat field name
	Threshold int         // stat ">=" threshold
	Subs      []Predicate // combo sub-predicates, all of which must hold
}

// Category describes one grid cell: a label for display plus the matching
// predicate. The raw validator key is retained for wire parity with clients.
type Category struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	ShortLabel   string    `json:"shortLabel"`
	Icon         string    `json:"icon"`
	Type         Kind      `json:"type"`
	ComboIcons   []string  `json:"comboIcons,omitempty"`
	ValidatorKey string    `json:"validatorKey"`
	Predicate    Predicate `json:"-"`
}
