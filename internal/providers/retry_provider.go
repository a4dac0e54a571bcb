package providers

import (
	"context"
	"log/slog"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
	"cricket-bingo-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var out []players.Player
	err := r.withRetry(ctx, "players", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchPlayers(ctx)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	var out []categories.Category
	err := r.withRetry(ctx, "categories", func() error {
		var innerErr error
		out, innerErr = r.inner.FetchCategories(ctx)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *retryingProvider) withRetry(ctx context.Context, resource string, fetch func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fetch()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "resource", resource, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "resource", resource, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
