package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	appgames "cricket-bingo-service/internal/app/games"
	"cricket-bingo-service/internal/domain/game"
)

// maxTurnBodyBytes bounds the turn request payload; a full 4x4 session with
// deck and history stays well under this.
const maxTurnBodyBytes = 1 << 20

// TurnEnvelope is the request payload for turn evaluation: the full session
// state plus the move to apply, with the move fields (action, categoryId,
// difficulty) at the top level. Turn evaluation is stateless so any client
// holding a state can play it forward.
type TurnEnvelope struct {
	State game.State `json:"state"`
	appgames.TurnRequest
}

// TurnResult is the response payload: the next state and a small projection
// for score displays.
type TurnResult struct {
	State    game.State    `json:"state"`
	Progress game.Progress `json:"progress"`
}

// Turn applies one move to a submitted session state.
func (h *Handler) Turn(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var envelope TurnEnvelope
	dec := json.NewDecoder(io.LimitReader(r.Body, maxTurnBodyBytes))
	if err := dec.Decode(&envelope); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}
	if envelope.State.GridSize == 0 || len(envelope.State.Grid) == 0 {
		writeError(w, r, http.StatusBadRequest, "missing session state", logger)
		return
	}

	next, err := h.games.ApplyTurn(envelope.State, envelope.TurnRequest)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	writeJSON(w, http.StatusOK, TurnResult{State: next, Progress: next.Progress()}, logger)
}
