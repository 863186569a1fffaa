package lazyload_test

import (
	"sync"
	"testing"
	"time"

	"github.com/karupanerura/lazyload"
)

func TestManualClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.December, 11, 15, 0, 0, 0, time.UTC)
	clock := lazyload.NewManualClock(start)
	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("unexpected start time: %v (expected: %v)", got, start)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
		}()
	}
	wg.Wait()

	if got, want := clock.Now(), start.Add(10*time.Second); !got.Equal(want) {
		t.Errorf("unexpected time after advance: %v (expected: %v)", got, want)
	}
}

func TestClockFunc(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)
	var clock lazyload.Clock = lazyload.ClockFunc(func() time.Time { return fixed })
	if got := clock.Now(); !got.Equal(fixed) {
		t.Errorf("unexpected time: %v (expected: %v)", got, fixed)
	}
}
