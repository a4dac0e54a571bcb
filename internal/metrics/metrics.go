package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type generationStats struct {
	games    int
	degraded int
	attempts int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// game generation. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	gen   map[int]*generationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		gen:   make(map[int]*generationStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordGridGeneration tracks one generated game: how many grid attempts were
// discarded and whether the result was accepted degraded.
func (r *Recorder) RecordGridGeneration(gridSize, attempts int, degraded bool, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.gen[gridSize]
	if !ok {
		stats = &generationStats{}
		r.gen[gridSize] = stats
	}
	stats.games++
	stats.attempts += attempts
	if degraded {
		stats.degraded++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGridGeneration(gridSize, attempts, degraded, duration)
	}
}

// GenerationSnapshot is a copy of generation stats for a grid size.
type GenerationSnapshot struct {
	Games    int
	Degraded int
	Attempts int
}

func (r *Recorder) GenerationStats(gridSize int) GenerationSnapshot {
	if r == nil {
		return GenerationSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.gen[gridSize]; ok && stats != nil {
		return GenerationSnapshot{Games: stats.games, Degraded: stats.degraded, Attempts: stats.attempts}
	}
	return GenerationSnapshot{}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPregenCycle tracks pregeneration cycles and errors.
func (r *Recorder) RecordPregenCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPregen(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
