package worker

import (
	"context"
	"fmt"
	"studyshare/pkg/llm"
	"studyshare/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// budget shares the model gateway's rate limit between concurrent review
// jobs.
//
// It tracks the last rate-limit status reported by the gateway and the number
// of calls in flight. A call may start when
//
//	remaining - inFlight > 0
//
// where remaining is last.Remaining, or last.Limit once last.ResetAt has
// passed. Otherwise reserve waits until ResetAt elapses or another call
// finishes.
//
// Before any status is known, a synthetic status of one remaining call with a
// far-future reset lets a single probe through. If the gateway answers the
// probe without rate-limit headers the budget opens up and stops gating calls
// until headers show up again.
//
// Merging prefers a changed ResetAt and otherwise the lower Remaining, so
// concurrent replies never make the view more optimistic than the gateway.
type budget struct {
	mu sync.Mutex
	// inFlight counts calls that reserved a slot and did not finish yet.
	inFlight int
	// last is the freshest status seen; nil until the first reservation.
	last *llm.RateLimitStatus
	// probing is set while the synthetic bootstrap status is in use.
	probing bool
	// unbounded is set when the gateway does not send rate-limit headers.
	unbounded bool
	// changed is closed and replaced whenever a call finishes, waking every
	// waiter to re-evaluate.
	changed chan struct{}
	now     func() time.Time
}

func newBudget() *budget {
	return &budget{
		changed: make(chan struct{}),
		now:     time.Now,
	}
}

// reserve takes one slot from the budget, blocking until one is available
// or ctx is done.
func (b *budget) reserve(ctx context.Context) error {
	for {
		b.mu.Lock()

		if b.unbounded {
			b.inFlight++
			b.mu.Unlock()

			return nil
		}

		if b.last == nil {
			b.last = &llm.RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   b.now().Add(365 * 24 * time.Hour),
			}
			b.probing = true
		}

		remaining := b.last.Remaining
		if b.now().After(b.last.ResetAt) {
			remaining = b.last.Limit
		}

		if remaining-b.inFlight > 0 {
			logger.Debug(ctx, "reserved rate limit slot",
				zap.Int("remaining", remaining),
				zap.Int("limit", b.last.Limit),
				zap.Time("resetAt", b.last.ResetAt),
				zap.Int("inFlight", b.inFlight))
			b.inFlight++
			b.mu.Unlock()

			return nil
		}

		resetAt := b.last.ResetAt
		inFlight := b.inFlight
		changed := b.changed
		b.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-changed:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// finished releases a slot and merges the status reported by the call.
func (b *budget) finished(ctx context.Context, status llm.RateLimitStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inFlight > 0 {
		b.inFlight--
	}

	close(b.changed)
	b.changed = make(chan struct{})

	if !status.Known() {
		if b.probing {
			logger.Info(ctx, "model gateway sent no rate limit headers, not gating review calls")
			b.unbounded = true
			b.probing = false
		}

		return
	}
	if status.ResetAt.IsZero() {
		// Limit without a window; keep the previous reset time if any.
		status.ResetAt = b.now().Add(time.Minute)
		if b.last != nil && !b.probing {
			status.ResetAt = b.last.ResetAt
		}
	}

	b.unbounded = false
	defer func() {
		logger.Debug(ctx, "received rate limit status",
			zap.Int("limit", b.last.Limit),
			zap.Int("remaining", b.last.Remaining),
			zap.Time("resetAt", b.last.ResetAt),
			zap.Int("inFlight", b.inFlight))
	}()

	if b.last == nil || b.probing || !b.last.ResetAt.Equal(status.ResetAt) {
		b.last = &status
		b.probing = false

		return
	}

	if status.Remaining < b.last.Remaining {
		b.last = &status
	}
}
