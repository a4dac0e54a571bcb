package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	appgames "cricket-bingo-service/internal/app/games"
	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/logging"
)

// StateEnvelope is the request payload for saving a session.
type StateEnvelope struct {
	Date     string     `json:"date"`
	GridSize int        `json:"gridSize"`
	State    game.State `json:"state"`
}

// StateResponse wraps a restored session.
type StateResponse struct {
	Date     string     `json:"date"`
	GridSize int        `json:"gridSize"`
	State    game.State `json:"state"`
}

// SavedState serves session persistence: GET restores a saved session, PUT
// saves one, DELETE drops it. Sessions are keyed by date and grid size.
func (h *Handler) SavedState(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.loadState(w, r)
	case http.MethodPut:
		h.saveState(w, r)
	case http.MethodDelete:
		h.clearState(w, r)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) loadState(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	size, ok := parseSize(w, r, logger)
	if !ok {
		return
	}

	st, err := h.games.LoadState(r.Context(), date, size)
	if err != nil {
		h.writeStateError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{Date: date, GridSize: st.GridSize, State: st}, logger)
}

func (h *Handler) saveState(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var envelope StateEnvelope
	dec := json.NewDecoder(io.LimitReader(r.Body, maxTurnBodyBytes))
	if err := dec.Decode(&envelope); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}
	if envelope.State.GridSize == 0 || len(envelope.State.Grid) == 0 {
		writeError(w, r, http.StatusBadRequest, "missing session state", logger)
		return
	}

	if err := h.games.SaveState(r.Context(), envelope.Date, envelope.GridSize, envelope.State); err != nil {
		h.writeStateError(w, r, err, logger)
		return
	}

	logging.Info(logger, "saved session",
		logging.FieldDate, envelope.Date,
		logging.FieldGridSize, envelope.State.GridSize,
	)
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"}, logger)
}

func (h *Handler) clearState(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	size, ok := parseSize(w, r, logger)
	if !ok {
		return
	}

	if err := h.games.ClearState(r.Context(), date, size); err != nil {
		h.writeStateError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"}, logger)
}

func (h *Handler) writeStateError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, appgames.ErrStateNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, appgames.ErrStateUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), logger)
	case errors.Is(err, appgames.ErrInvalidGridSize), errors.Is(err, appgames.ErrInvalidDate):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	default:
		logging.Error(logger, "session request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}
