package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appgames "cricket-bingo-service/internal/app/games"
	appplayers "cricket-bingo-service/internal/app/players"
	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/pregen"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	games    *appgames.Service
	pool     *appplayers.Service
	logger   *slog.Logger
	now      nowFunc
	statusFn func() pregen.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(games *appgames.Service, pool *appplayers.Service, logger *slog.Logger, statusFn func() pregen.Status) *Handler {
	return &Handler{
		games:    games,
		pool:     pool,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// GameResponse pairs a generated game with a fresh session state so clients
// can start playing without a second round trip.
type GameResponse struct {
	Game  game.Game  `json:"game"`
	State game.State `json:"state"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// DailyGame returns the puzzle for a date and grid size (default today, 3x3).
func (h *Handler) DailyGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	size, ok := parseSize(w, r, logger)
	if !ok {
		return
	}

	g, err := h.games.Daily(r.Context(), date, size)
	if err != nil {
		h.writeGameError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served daily game",
		logging.FieldDate, date,
		logging.FieldGridSize, g.GridSize,
	)
	writeJSON(w, http.StatusOK, GameResponse{Game: g, State: h.games.NewSession(g)}, logger)
}

// RandomGameRequest is the request payload for ad-hoc games.
type RandomGameRequest struct {
	GridSize int `json:"gridSize"`
}

// RandomGame generates a fresh ad-hoc game. The grid size comes from the JSON
// body; an empty body falls back to the size query param, then the default.
func (h *Handler) RandomGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req RandomGameRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxTurnBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	size := req.GridSize
	if size == 0 {
		qsize, ok := parseSize(w, r, logger)
		if !ok {
			return
		}
		size = qsize
	}

	g, err := h.games.Random(r.Context(), size)
	if err != nil {
		h.writeGameError(w, r, err, logger)
		return
	}

	logging.Info(logger, "served random game", logging.FieldGridSize, g.GridSize)
	writeJSON(w, http.StatusOK, GameResponse{Game: g, State: h.games.NewSession(g)}, logger)
}

// Players returns the player pool.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.pool.Players(), loggerFromContext(r, h.logger))
}

// PlayerByID returns a specific player if present.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := pathID(w, r, "/players", h.logger)
	if !ok {
		return
	}
	player, found := h.pool.PlayerByID(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, loggerFromContext(r, h.logger))
}

// Categories returns the category pool.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.pool.Categories(), loggerFromContext(r, h.logger))
}

func (h *Handler) writeGameError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, appgames.ErrInvalidGridSize), errors.Is(err, appgames.ErrInvalidDate):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, appgames.ErrPoolUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), logger)
	default:
		logging.Error(logger, "game request failed", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", logger)
	}
}

func parseSize(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("size"))
	if raw == "" {
		return 0, true
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid size (expected 3 or 4)", logger)
		return 0, false
	}
	return size, true
}

func pathID(w http.ResponseWriter, r *http.Request, prefix string, logger *slog.Logger) (string, bool) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	idRaw := strings.TrimPrefix(path, "/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid id", logger)
		return "", false
	}
	return id, true
}
