// Package ratelimit keeps one token bucket per key.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long an unused bucket is kept before it is dropped. A
// bucket idle that long is full again, so dropping it changes nothing.
const idleAfter = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed limits events per key, e.g. per user.
type Keyed struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*entry
	lastSweep time.Time
	now       func() time.Time
}

// New creates a limiter allowing perMinute events per key with the given
// burst. A non-positive perMinute disables limiting.
func New(perMinute float64, burst int) *Keyed {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	if burst <= 0 {
		burst = 1
	}

	return &Keyed{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*entry),
		now:      time.Now,
	}
}

// Allow reports whether an event for key may happen now.
func (k *Keyed) Allow(key string) bool {
	if k.limit == rate.Inf {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.sweep(now)

	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// sweep drops idle buckets. Callers hold k.mu.
func (k *Keyed) sweep(now time.Time) {
	if now.Sub(k.lastSweep) < idleAfter {
		return
	}
	k.lastSweep = now

	for key, e := range k.limiters {
		if now.Sub(e.lastSeen) > idleAfter {
			delete(k.limiters, key)
		}
	}
}

// Len returns the number of tracked keys.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.limiters)
}
