package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cricket-bingo-service/internal/domain/categories"
	"cricket-bingo-service/internal/domain/players"
)

const defaultCooldown = time.Minute

// rateLimitedProvider wraps a DataProvider and backs off after upstream rate
// limit responses. While the cooldown is active, fetches fail fast with the
// original rate limit error instead of burning more quota.
type rateLimitedProvider struct {
	next   DataProvider
	logger *slog.Logger

	mu      sync.Mutex
	until   time.Time
	lastErr *RateLimitError

	now func() time.Time
}

// NewRateLimitedProvider returns a DataProvider that honors upstream rate
// limit responses, using Retry-After when present and a default cooldown
// otherwise.
func NewRateLimitedProvider(next DataProvider, logger *slog.Logger) DataProvider {
	return &rateLimitedProvider{
		next:   next,
		logger: logger,
		now:    time.Now,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	out, err := p.next.FetchPlayers(ctx)
	p.observe(ctx, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *rateLimitedProvider) FetchCategories(ctx context.Context) ([]categories.Category, error) {
	if err := p.check(ctx); err != nil {
		return nil, err
	}
	out, err := p.next.FetchCategories(ctx)
	p.observe(ctx, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *rateLimitedProvider) check(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastErr != nil && p.now().Before(p.until) {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch suppressed during cooldown",
			"until", p.until.Format(time.RFC3339))
		return p.lastErr
	}
	p.lastErr = nil
	return nil
}

func (p *rateLimitedProvider) observe(ctx context.Context, err error) {
	rlErr, ok := AsRateLimitError(err)
	if !ok {
		return
	}
	cooldown := rlErr.RetryAfter
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	p.mu.Lock()
	p.lastErr = rlErr
	p.until = p.now().Add(cooldown)
	p.mu.Unlock()
	logWithProvider(ctx, p.logger, slog.LevelWarn, rlErr.Provider, "upstream rate limited, entering cooldown",
		"cooldown", cooldown.String())
}
