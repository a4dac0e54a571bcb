// Package pregen runs a background loop that generates upcoming daily games
// ahead of time, so the first player of a new day never waits on generation
// and snapshots exist before traffic arrives.
package pregen

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cricket-bingo-service/internal/domain/game"
	"cricket-bingo-service/internal/logging"
	"cricket-bingo-service/internal/metrics"
	"cricket-bingo-service/internal/timeutil"
)

const defaultInterval = time.Hour

var gridSizes = []int{3, 4}

// GameSource produces (or returns the already generated) daily game.
type GameSource interface {
	Daily(ctx context.Context, date string, gridSize int) (game.Game, error)
}

// Pregenerator generates daily games for today plus a window of future days
// on an interval.
type Pregenerator struct {
	source     GameSource
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	futureDays int
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the pregeneration loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	GamesGenerated      int
}

// IsReady reports whether the loop has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Pregenerator with sane defaults.
func New(source GameSource, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, futureDays int) *Pregenerator {
	if interval <= 0 {
		interval = defaultInterval
	}
	if futureDays < 0 {
		futureDays = 0
	}
	return &Pregenerator{
		source:     source,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		futureDays: futureDays,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins pregenerating until the context is cancelled or Stop is called.
func (p *Pregenerator) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("pregen started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle to warm today's games on boot.
		p.cycleOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("pregen stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("pregen stopped")
				return
			case <-p.ticker.C:
				p.cycleOnce(ctx)
			}
		}
	}()
}

// Stop halts the pregeneration loop.
func (p *Pregenerator) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Pregenerator) cycleOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	generated := 0
	var lastErr error
	base := p.now().UTC()
	for day := 0; day <= p.futureDays; day++ {
		date := timeutil.FormatDate(base.AddDate(0, 0, day))
		for _, size := range gridSizes {
			if ctx.Err() != nil {
				return
			}
			if _, err := p.source.Daily(ctx, date, size); err != nil {
				lastErr = err
				p.logError("pregen generate failed", err,
					logging.FieldDate, date,
					logging.FieldGridSize, size)
				continue
			}
			generated++
		}
	}

	if p.metrics != nil {
		p.metrics.RecordPregenCycle(time.Since(start), lastErr)
	}
	if lastErr != nil {
		p.recordFailure(lastErr, start)
		return
	}
	p.recordSuccess(start, generated)
	p.logInfo("pregen cycle complete",
		logging.FieldCount, generated,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Pregenerator) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Pregenerator) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pregenerator) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Pregenerator) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Pregenerator) recordSuccess(at time.Time, generated int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.GamesGenerated = generated
}

func (p *Pregenerator) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (p *Pregenerator) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
