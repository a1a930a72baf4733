package stubhub

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily call quota is exhausted.
var ErrDailyLimitReached = errors.New("stubhub: daily API limit reached")

// RateLimiter throttles outbound calls with a token bucket and caps them
// with a daily quota that resets 24 hours after the window opened. The
// marketplace enforces per-application quotas and answers 429 once they are
// exceeded; throttling client-side keeps a seller inside them.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst. A maxDaily of zero or less disables the daily quota.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until a call is allowed or ctx is done. A daily slot is
// reserved before waiting and given back if the wait fails.
func (r *RateLimiter) Wait(ctx context.Context) error {
	window, err := r.reserveDaily()
	if err != nil {
		return err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		r.refundDaily(window)
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// DailyCount returns the number of calls made in the current window.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.daily
}

// Remaining returns the calls left in the current window, or -1 when the
// daily quota is disabled.
func (r *RateLimiter) Remaining() int64 {
	if r.maxDaily <= 0 {
		return -1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return max(r.maxDaily-r.daily, 0)
}

// ResetAt returns when the daily counter next resets.
func (r *RateLimiter) ResetAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetAt
}

// reserveDaily charges one call to the current window and returns the
// window's reset time.
func (r *RateLimiter) reserveDaily() (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily = 0
		r.resetAt = now.Add(24 * time.Hour)
	}

	if r.maxDaily > 0 && r.daily >= r.maxDaily {
		return time.Time{}, fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily, r.maxDaily)
	}
	r.daily++
	return r.resetAt, nil
}

// refundDaily returns a reserved call unless the window has rolled over.
func (r *RateLimiter) refundDaily(window time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.resetAt.Equal(window) && r.daily > 0 {
		r.daily--
	}
}
