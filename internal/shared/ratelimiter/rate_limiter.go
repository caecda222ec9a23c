// Package ratelimiter throttles outbound API calls to stay within
// upstream request quotas.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits how often an operation, such as an API
// call, may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces a fixed number of operations per interval.
type RateLimiter struct {
	limit     int           // maximum calls per interval
	interval  time.Duration // window after which the count resets
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded checks whether the rate limit has been reached and
// sleeps until the window resets when it has.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	// Reset the count once the interval has elapsed
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
