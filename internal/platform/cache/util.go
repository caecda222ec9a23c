package cache

import (
	"time"
)

// TimeUntilNextRefresh returns the duration until the next end-of-day data
// refresh boundary. Upstream end-of-day files are complete well before
// 6 AM US Eastern, so cached data written after that point is good until
// the next morning.
func TimeUntilNextRefresh() time.Duration {
	loc, _ := time.LoadLocation("America/New_York")
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, loc)

	// If today's boundary has passed, use tomorrow's
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
