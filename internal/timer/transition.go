package timer

import "github.com/letsDanceDB/pomodoro-timer/internal/models"

// Advance leaves the current phase. Statistics for the phase are
// finalized strictly before any index mutation, so an outcome can never
// be attributed to the wrong phase. Leaving the long break does not
// advance the index; it parks the engine in the milestone-pending state
// until the user acknowledges the finished set.
//
// completed marks a natural expiry; a manual skip passes false.
// autoStart arms a delayed start of the next phase, cancellable by any
// intervening user action.
func (e *Engine) Advance(autoStart, completed bool) {
	switch e.status {
	case models.StatusInSettings:
		return
	case models.StatusMilestonePending:
		// Stray timer fire after the set already closed; just make sure
		// nothing is still counting down.
		e.target = nil
		return
	}

	if e.status == models.StatusRunning && e.target != nil {
		e.remaining = e.remainingFromTarget()
	}
	e.target = nil
	e.cancelAutoStart()

	leaving := e.schedule[e.idx]
	elapsed := leaving.DurationSeconds - e.remaining
	if elapsed < 0 {
		elapsed = 0
	}
	e.stats.finalize(leaving, elapsed, completed)
	if completed && leaving.Kind == models.PhaseWork {
		e.sink.CompletePomodoro(leaving.DurationSeconds, elapsed)
	}

	if leaving.Kind == models.PhaseLongBreak {
		e.status = models.StatusMilestonePending
		e.sink.MilestoneReached(e.stats.current)
		return
	}

	e.idx = (e.idx + 1) % len(e.schedule)
	e.remaining = e.schedule[e.idx].DurationSeconds
	e.status = models.StatusIdle
	if autoStart {
		e.autoStartArmed = true
		e.autoStartGen++
	}
}

// OpenSettings pauses any countdown and enters the settings state,
// remembering the prior run status so closing the panel can restore it.
// No-op while a milestone is pending.
func (e *Engine) OpenSettings() bool {
	switch e.status {
	case models.StatusInSettings, models.StatusMilestonePending:
		return false
	}
	e.cancelAutoStart()
	e.settingsReturn = e.status
	if e.status == models.StatusRunning {
		e.remaining = e.remainingFromTarget()
		e.target = nil
	}
	e.status = models.StatusInSettings
	return true
}

// CommitSettings atomically applies a clamped draft: durations and colors
// replace the live configuration together, the schedule is rebuilt, the
// current phase keeps its position (falling back to phase zero if the
// index no longer fits), remaining time resets to the phase's full new
// duration, and the engine resumes running if it was running when the
// panel opened. Returns the applied configuration and whether any value
// had to be clamped.
func (e *Engine) CommitSettings(draft models.TimerConfig) (models.TimerConfig, bool) {
	if e.status != models.StatusInSettings {
		return e.cfg, false
	}
	applied, adjusted := ClampDraft(draft)
	e.cfg = applied
	e.schedule = BuildSchedule(applied.WorkMinutes, applied.ShortBreakMinutes, applied.LongBreakMinutes)
	if e.idx >= len(e.schedule) {
		e.idx = 0
	}
	e.remaining = e.schedule[e.idx].DurationSeconds
	e.target = nil
	e.sink.SettingsChange(applied)
	e.leaveSettings()
	return applied, adjusted
}

// CancelSettings discards the draft and restores the prior run state,
// resuming the countdown from where it was paused.
func (e *Engine) CancelSettings() {
	if e.status != models.StatusInSettings {
		return
	}
	e.leaveSettings()
}

func (e *Engine) leaveSettings() {
	prior := e.settingsReturn
	e.settingsReturn = models.StatusIdle
	if prior == models.StatusRunning {
		e.status = models.StatusIdle
		e.Start()
		return
	}
	e.status = prior
}
