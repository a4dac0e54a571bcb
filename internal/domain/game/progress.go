package game

// Progress is the minimal projection of a session that the external sync
// layer republishes to a peer (last write wins, no ordering guarantee). The
// core only builds the value; conflict handling is the sync layer's problem.
type Progress struct {
	Placements  map[string]string `json:"placements"` // category ID -> player ID
	Score       int               `json:"score"`
	FilledCount int               `json:"filledCount"`
	Status      Status            `json:"status"`
}

// Progress derives the sync projection from the full session state.
func (s State) Progress() Progress {
	placements := make(map[string]string, len(s.Placements))
	for catID, playerID := range s.Placements {
		if playerID != "" {
			placements[catID] = playerID
		}
	}
	return Progress{
		Placements:  placements,
		Score:       s.Score,
		FilledCount: s.FilledCount(),
		Status:      s.Status,
	}
}
