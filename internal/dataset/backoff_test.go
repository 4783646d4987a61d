package dataset

import (
	"testing"
	"time"
)

func TestBackoffDelayIsLinear(t *testing.T) {
	f := NewFetcher(FetcherConfig{BackoffStep: 300 * time.Millisecond})
	for attempt, want := range map[int]time.Duration{1: 300 * time.Millisecond, 2: 600 * time.Millisecond, 3: 900 * time.Millisecond} {
		if got := f.backoffDelay(attempt); got != want {
			t.Fatalf("backoffDelay(%d) = %s, want %s", attempt, got, want)
		}
	}
}
