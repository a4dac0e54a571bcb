package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/metrics"
	"cricket-bingo-service/internal/providers"
	"cricket-bingo-service/internal/store"
)

// poolLoader fetches the player and category pools from the configured
// provider into the memory store. It backs both the boot-time load and the
// admin reload endpoint.
type poolLoader struct {
	provider     providers.DataProvider
	providerName string
	store        *store.MemoryStore
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// RefreshPools re-fetches both pools and swaps them into the store.
func (l *poolLoader) RefreshPools(ctx context.Context) error {
	start := time.Now()
	pool, err := l.provider.FetchPlayers(ctx)
	l.metrics.RecordProviderAttempt(l.providerName, time.Since(start), err)
	if err != nil {
		if rlErr, ok := providers.AsRateLimitError(err); ok {
			l.metrics.RecordRateLimit(l.providerName, rlErr.RetryAfter)
		}
		return fmt.Errorf("fetch players: %w", err)
	}

	start = time.Now()
	catPool, err := l.provider.FetchCategories(ctx)
	l.metrics.RecordProviderAttempt(l.providerName, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}

	l.store.SetPlayers(pool)
	l.store.SetCategories(catPool)
	logging.Info(l.logger, "pools loaded",
		logging.FieldProvider, l.providerName,
		"players", len(pool),
		"categories", len(catPool),
	)
	return nil
}
