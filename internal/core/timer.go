package core

import (
	"math"
	"time"
)

// IntervalTimer fires once every fixed number of simulation ticks.
// It expresses a wall-clock interval in ticks so the game stays
// deterministic regardless of frame timing.
type IntervalTimer struct {
	period  int
	elapsed int
}

// NewIntervalTimer creates a timer firing every interval at the given tick rate.
// The period is rounded to the nearest tick and is never shorter than one tick.
func NewIntervalTimer(interval time.Duration, tickRate int) *IntervalTimer {
	ticks := int(math.Round(interval.Seconds() * float64(tickRate)))
	if ticks < 1 {
		ticks = 1
	}
	return &IntervalTimer{period: ticks}
}

// Period returns the number of ticks between two firings.
func (t *IntervalTimer) Period() int {
	return t.period
}

// Tick advances the timer by one tick and reports whether it fired.
func (t *IntervalTimer) Tick() bool {
	t.elapsed++
	if t.elapsed >= t.period {
		t.elapsed = 0
		return true
	}
	return false
}

// Reset restarts the current period.
func (t *IntervalTimer) Reset() {
	t.elapsed = 0
}
