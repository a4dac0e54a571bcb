package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	appgames "cricket-bingo-service/internal/app/games"
	"cricket-bingo-service/internal/http/requestutil"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/timeutil"
)

// PoolRefresher reloads the data pools from the configured provider.
type PoolRefresher interface {
	RefreshPools(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints (snapshot refresh, pool reload).
type AdminHandler struct {
	games     *appgames.Service
	refresher PoolRefresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(games *appgames.Service, refresher PoolRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		games:     games,
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshSnapshots regenerates daily games (and therefore snapshots) for the
// requested date, both grid sizes. With reload=pools the data pools are
// re-fetched from the provider first.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.games == nil {
		writeError(w, r, http.StatusServiceUnavailable, "game service not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(time.Now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin refresh invalid date", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	if strings.TrimSpace(r.URL.Query().Get("reload")) == "pools" {
		if h.refresher == nil {
			writeError(w, r, http.StatusServiceUnavailable, "pool refresher not configured", logger)
			return
		}
		if err := h.refresher.RefreshPools(r.Context()); err != nil {
			logging.Warn(logger, "admin pool reload failed", slog.Any("err", err))
			writeError(w, r, http.StatusBadGateway, "failed to reload pools", logger)
			return
		}
	}

	generated := 0
	for _, size := range []int{3, 4} {
		if _, err := h.games.Daily(r.Context(), date, size); err != nil {
			logging.Warn(logger, "admin refresh generate failed",
				slog.String(logging.FieldDate, date),
				slog.Int(logging.FieldGridSize, size),
				slog.Any("err", err),
			)
			writeError(w, r, http.StatusInternalServerError, "failed to generate daily game", logger)
			return
		}
		generated++
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":   date,
		"games":  generated,
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin snapshots refreshed",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, generated),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
