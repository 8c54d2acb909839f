package cache

import (
	"time"
)

// TimeUntilNextMarketOpen returns the duration until the next 09:00 Tehran
// time, when TSE trading opens and daily history becomes stale.
func TimeUntilNextMarketOpen() time.Duration {
	loc, _ := time.LoadLocation("Asia/Tehran")
	now := time.Now().In(loc)

	nextOpen := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, loc)

	// Past today's open already; use tomorrow's.
	if now.After(nextOpen) {
		nextOpen = nextOpen.Add(24 * time.Hour)
	}

	return nextOpen.Sub(now)
}
