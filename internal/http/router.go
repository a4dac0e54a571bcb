// Package http assembles the service's HTTP surface.
package http

import (
	nethttp "net/http"

	"cricket-bingo-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games/daily", handler.DailyGame)
	mux.HandleFunc("/games/random", handler.RandomGame)
	mux.HandleFunc("/turns", handler.Turn)
	mux.HandleFunc("/states", handler.SavedState)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByID)
	mux.HandleFunc("/categories", handler.Categories)
	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	return mux
}
