package memory

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	reset time.Time
}

// RateLimiter implements ports.RateLimiter with fixed windows kept in memory.
// Expired windows are swept at most once per period, on the next hit for any key.
type RateLimiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu        sync.Mutex
	hits      map[string]*window
	nextSweep time.Time
}

// LimiterOption configures the RateLimiter.
type LimiterOption func(*RateLimiter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) LimiterOption {
	return func(l *RateLimiter) {
		l.now = now
	}
}

// NewRateLimiter allows limit hits per key in each period.
func NewRateLimiter(limit int, period time.Duration, opts ...LimiterOption) *RateLimiter {
	l := &RateLimiter{
		limit:  limit,
		period: period,
		now:    time.Now,
		hits:   make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !now.Before(l.nextSweep) {
		l.sweep(now)
	}

	w, ok := l.hits[key]
	if !ok || !now.Before(w.reset) {
		w = &window{reset: now.Add(l.period)}
		l.hits[key] = w
	}
	w.count++
	if w.count > l.limit {
		return false, w.reset.Sub(now), nil
	}
	return true, 0, nil
}

// Len returns the number of keys currently tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

func (l *RateLimiter) sweep(now time.Time) {
	for key, w := range l.hits {
		if !now.Before(w.reset) {
			delete(l.hits, key)
		}
	}
	l.nextSweep = now.Add(l.period)
}
