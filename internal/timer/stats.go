package timer

import "github.com/letsDanceDB/pomodoro-timer/internal/models"

// statsTracker accumulates work-phase outcomes for the in-progress set.
// Break phases never touch the counters.
type statsTracker struct {
	current models.SessionStats
}

// finalize records the outcome of a phase being left. A naturally
// completed work phase always credits at least its nominal duration, so
// rounding in the elapsed computation can never short-change the user.
func (t *statsTracker) finalize(phase models.Phase, elapsedSeconds int, completed bool) {
	if phase.Kind != models.PhaseWork {
		return
	}
	switch {
	case completed:
		t.current.CompletedWorkPhases++
		credit := elapsedSeconds
		if credit < phase.DurationSeconds {
			credit = phase.DurationSeconds
		}
		t.current.TotalFocusedSeconds += credit
	case elapsedSeconds > 0:
		t.current.SkippedPartialWorkPhases++
		t.current.TotalFocusedSeconds += elapsedSeconds
	default:
		t.current.SkippedUnstartedWorkPhases++
	}
}

// reset zeroes all counters. Called only on milestone acknowledgement.
func (t *statsTracker) reset() {
	t.current = models.SessionStats{}
}
