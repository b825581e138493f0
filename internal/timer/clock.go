// Package timer implements the phase state machine and wall-clock-accurate
// countdown engine behind the focus cycle: schedule building, start/pause/
// skip transitions, milestone detection, and per-set statistics.
package timer

import "time"

// Clock supplies wall-clock time. Remaining time is derived from an
// absolute target timestamp against this clock, so a throttled or
// suspended refresh loop cannot drift the countdown.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
