package timer

import (
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// TestRunsToLimitAndStops verifies the timer counts up and auto-stops at the limit.
func TestRunsToLimitAndStops(t *testing.T) {
	r := New(5, WithTick(time.Millisecond))
	r.Start()

	waitFor(t, func() bool { return !r.Snapshot().Active })
	s := r.Snapshot()
	if s.Seconds != 5 || s.Percent != 100 {
		t.Errorf("snapshot = %+v, want 5 seconds at 100%%", s)
	}
}

// TestStopKeepsElapsed verifies Stop pauses without clearing.
func TestStopKeepsElapsed(t *testing.T) {
	r := New(1000, WithTick(time.Millisecond))
	r.Start()
	waitFor(t, func() bool { return r.Snapshot().Seconds >= 3 })
	r.Stop()

	s := r.Snapshot()
	if s.Active {
		t.Error("timer still active after Stop")
	}
	time.Sleep(10 * time.Millisecond)
	if got := r.Snapshot().Seconds; got != s.Seconds {
		t.Errorf("seconds advanced after Stop: %d -> %d", s.Seconds, got)
	}
}

// TestResetClears verifies Reset stops and zeroes the count.
func TestResetClears(t *testing.T) {
	r := New(1000, WithTick(time.Millisecond))
	r.Start()
	waitFor(t, func() bool { return r.Snapshot().Seconds >= 2 })
	r.Reset()
	if s := r.Snapshot(); s.Active || s.Seconds != 0 {
		t.Errorf("snapshot after Reset = %+v", s)
	}
}

// TestRestartFromZero verifies Start while running restarts the count.
func TestRestartFromZero(t *testing.T) {
	r := New(1000, WithTick(time.Hour))
	r.Start()
	r.Start()
	if s := r.Snapshot(); !s.Active || s.Seconds != 0 {
		t.Errorf("snapshot = %+v, want active at 0", s)
	}
	r.Reset()
}

// TestDefaultLimit verifies a non-positive limit falls back to 90 seconds.
func TestDefaultLimit(t *testing.T) {
	if got := New(0).Snapshot().Limit; got != DefaultLimit {
		t.Errorf("limit = %d, want %d", got, DefaultLimit)
	}
}
