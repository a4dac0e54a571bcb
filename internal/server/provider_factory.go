package server

import (
	"log/slog"

	"cricket-bingo-service/internal/config"
	"cricket-bingo-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	limited := providers.NewRateLimitedProvider(base, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, 0, 0)
}
