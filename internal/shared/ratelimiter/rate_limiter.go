package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface limits the frequency of operations such as external API calls.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter is a counting limiter: at most `limit` calls per `interval`.
type RateLimiter struct {
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter allowing `limit` calls per `interval`.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the next call is allowed under the limit.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
