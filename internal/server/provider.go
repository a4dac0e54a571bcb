package server

import (
	"log/slog"

	"cricket-bingo-service/internal/config"
	"cricket-bingo-service/internal/providers"
	"cricket-bingo-service/internal/providers/cricapi"
	"cricket-bingo-service/internal/providers/fixture"
	"cricket-bingo-service/internal/providers/fsdata"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "fsdata":
		return fsdata.New(cfg.DataDir)
	case "cricapi":
		return cricapi.NewClient(cricapi.Config{
			BaseURL: cfg.CricAPI.BaseURL,
			APIKey:  cfg.CricAPI.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
