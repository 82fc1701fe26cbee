// Package ratelimit implements the fixed-window per-client counter used by the
// public proxy endpoints.
//
// State lives in one process. Several instances behind a load balancer each keep
// their own counters.
package ratelimit

import (
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

type window struct {
	count   int
	resetAt time.Time
}

// Decision is the outcome of a single Check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type Limiter struct {
	mu            sync.Mutex
	windows       map[string]*window
	now           func() time.Time
	sweepInterval time.Duration
	lastSweep     time.Time
}

func New() *Limiter {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		windows:       make(map[string]*window),
		now:           now,
		sweepInterval: defaultSweepInterval,
		lastSweep:     now(),
	}
}

// Allow reports whether clientKey may make another request within a window of
// the given length.
func (l *Limiter) Allow(clientKey string, limit int, windowLen time.Duration) bool {
	return l.Check(clientKey, limit, windowLen).Allowed
}

func (l *Limiter) Check(clientKey string, limit int, windowLen time.Duration) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeSweep(now)

	w, ok := l.windows[clientKey]
	if !ok || !now.Before(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(windowLen)}
		l.windows[clientKey] = w
		return Decision{Allowed: true, Remaining: max(limit-1, 0), ResetAt: w.resetAt}
	}
	if w.count < limit {
		w.count++
		return Decision{Allowed: true, Remaining: limit - w.count, ResetAt: w.resetAt}
	}
	return Decision{Allowed: false, Remaining: 0, ResetAt: w.resetAt}
}

// Len is the number of tracked clients, expired or not.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// maybeSweep drops expired windows. Caller holds l.mu.
func (l *Limiter) maybeSweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.sweepInterval {
		return
	}
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
