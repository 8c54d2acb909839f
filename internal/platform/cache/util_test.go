package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextMarketOpen(t *testing.T) {
	t.Parallel()

	d := TimeUntilNextMarketOpen()

	if d <= 0 {
		t.Errorf("duration must be positive, got %v", d)
	}
	if d > 24*time.Hour {
		t.Errorf("duration must be within 24 hours, got %v", d)
	}
}
