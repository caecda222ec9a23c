package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextRefresh(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextRefresh()

	// Duration should always be positive and less than 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration less than 24 hours, got %v", duration)
	}
}

func TestTimeUntilNextRefresh_ReturnsValidDuration(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextRefresh()

	// Calculate what the next refresh boundary should be
	now := time.Now()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load America/New_York timezone: %v", err)
	}

	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), 6, 0, 0, 0, loc)
	if local.After(next) {
		next = next.Add(24 * time.Hour)
	}

	// The calculated time should be approximately the same
	expectedDuration := next.Sub(local)
	diff := duration - expectedDuration
	if diff < 0 {
		diff = -diff
	}

	// Allow 1 second tolerance for test execution time
	if diff > time.Second {
		t.Errorf("duration %v differs from expected %v by more than 1 second", duration, expectedDuration)
	}
}

func TestTimeUntilNextRefresh_AlwaysPositive(t *testing.T) {
	t.Parallel()

	// Run multiple times to ensure consistency
	for i := 0; i < 10; i++ {
		duration := TimeUntilNextRefresh()
		if duration <= 0 {
			t.Errorf("iteration %d: expected positive duration, got %v", i, duration)
		}
	}
}
