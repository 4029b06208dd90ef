package httpstore

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// defaultBackoff applies when a 429 carries no usable Retry-After.
const defaultBackoff = 10 * time.Second

// RateLimiter throttles requests to the paste server.
// It uses a token bucket with an additional backoff after 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	clock   clockwork.Clock
	retryAt time.Time
}

// NewRateLimiter creates a limiter allowing rps sustained requests per
// second with a burst of twice that (at least 1). rps <= 0 disables the
// token bucket.
func NewRateLimiter(rps float64, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = int(rps * 2)
		if burst < 1 {
			burst = 1
		}
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		clock:   clock,
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := retryAt.Sub(r.clock.Now()); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.clock.After(wait):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError sets a backoff period after a 429 response.
func (r *RateLimiter) RecordRateLimitError(retryAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfter <= 0 {
		retryAfter = defaultBackoff
	}
	r.retryAt = r.clock.Now().Add(retryAfter)
}

// BackingOff reports whether a 429 backoff is in effect.
func (r *RateLimiter) BackingOff() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock.Now().Before(r.retryAt)
}
