package timer

import "github.com/letsDanceDB/pomodoro-timer/internal/models"

// EventSink receives notifications at phase lifecycle points: start,
// natural completion, manual skip, settings commit, and end of a full set.
// Implementations must not block; persistence failures are logged and
// dropped, never surfaced into the state machine.
type EventSink interface {
	StartPomodoro(phase models.PhaseKind, isResume bool)
	CompletePomodoro(durationSeconds, spentSeconds int)
	PhaseSkip(phase models.PhaseKind)
	SettingsChange(cfg models.TimerConfig)
	MilestoneReached(stats models.SessionStats)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) StartPomodoro(models.PhaseKind, bool) {}
func (NopSink) CompletePomodoro(int, int)            {}
func (NopSink) PhaseSkip(models.PhaseKind)           {}
func (NopSink) SettingsChange(models.TimerConfig)    {}
func (NopSink) MilestoneReached(models.SessionStats) {}
