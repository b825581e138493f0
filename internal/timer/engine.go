package timer

import (
	"time"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// Engine owns the countdown state: current phase index, remaining time,
// and run status. While running, remaining time is recomputed from the
// target timestamp on every tick; it is never decremented, so the display
// stays correct no matter how irregularly ticks arrive.
//
// The engine is single-threaded by design. The caller (the Bubble Tea
// update loop) serializes all method calls.
type Engine struct {
	clock Clock
	sink  EventSink

	cfg      models.TimerConfig
	schedule []models.Phase

	idx       int
	remaining int
	target    *time.Time
	status    models.RunStatus

	stats statsTracker

	// Pending delayed auto-start. The generation counter invalidates any
	// scheduled callback the moment a user action supersedes it; a stale
	// callback carrying an old generation is a no-op.
	autoStartGen   int
	autoStartArmed bool

	// Run status to restore when the settings view closes.
	settingsReturn models.RunStatus
}

// NewEngine builds an engine positioned at the first work phase, idle,
// with zeroed statistics. A nil clock falls back to the system clock and
// a nil sink discards events.
func NewEngine(cfg models.TimerConfig, clock Clock, sink EventSink) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if sink == nil {
		sink = NopSink{}
	}
	cfg, _ = ClampDraft(cfg)
	schedule := BuildSchedule(cfg.WorkMinutes, cfg.ShortBreakMinutes, cfg.LongBreakMinutes)
	return &Engine{
		clock:     clock,
		sink:      sink,
		cfg:       cfg,
		schedule:  schedule,
		remaining: schedule[0].DurationSeconds,
		status:    models.StatusIdle,
	}
}

// Start begins or resumes the countdown for the current phase. Redundant
// calls (already running, in settings, milestone pending) are no-ops.
// Returns whether the countdown actually started, so the caller knows to
// schedule refresh ticks.
func (e *Engine) Start() bool {
	switch e.status {
	case models.StatusRunning, models.StatusInSettings, models.StatusMilestonePending:
		return false
	}
	e.cancelAutoStart()

	phase := e.schedule[e.idx]
	isResume := e.remaining > 0 && e.remaining < phase.DurationSeconds
	target := e.clock.Now().Add(time.Duration(e.remaining) * time.Second)
	e.target = &target
	e.status = models.StatusRunning
	e.sink.StartPomodoro(phase.Kind, isResume)
	return true
}

// Tick recomputes remaining time from the target timestamp. When the
// countdown reaches zero the phase completes naturally and the engine
// advances with auto-start. Harmless outside the running state.
func (e *Engine) Tick() {
	if e.status != models.StatusRunning || e.target == nil {
		return
	}
	e.remaining = e.remainingFromTarget()
	if e.remaining == 0 {
		e.Advance(true, true)
	}
}

// Pause freezes the countdown, clearing the target timestamp so a later
// Start recomputes it from the remaining seconds. A second Pause in a row
// is a no-op. Pausing always cancels a pending delayed auto-start.
func (e *Engine) Pause() bool {
	e.cancelAutoStart()
	if e.status != models.StatusRunning {
		return false
	}
	e.remaining = e.remainingFromTarget()
	e.target = nil
	e.status = models.StatusPaused
	return true
}

// ResetCurrentPhase pauses if running and restores the current phase to
// its full duration. The phase index does not change.
func (e *Engine) ResetCurrentPhase() {
	switch e.status {
	case models.StatusInSettings, models.StatusMilestonePending:
		return
	}
	e.cancelAutoStart()
	if e.status == models.StatusRunning {
		e.status = models.StatusPaused
	}
	e.remaining = e.schedule[e.idx].DurationSeconds
	e.target = nil
}

// Skip abandons the current phase and advances without auto-start. A
// skipped phase never counts as completed; time already on the clock is
// still credited to statistics.
func (e *Engine) Skip() {
	switch e.status {
	case models.StatusInSettings, models.StatusMilestonePending:
		return
	}
	e.sink.PhaseSkip(e.schedule[e.idx].Kind)
	e.Advance(false, false)
}

// AcknowledgeMilestone closes the finished set: index back to phase zero,
// statistics cleared, status idle. Returns the statistics of the set just
// closed. A no-op unless a milestone is actually pending.
func (e *Engine) AcknowledgeMilestone() (models.SessionStats, bool) {
	if e.status != models.StatusMilestonePending {
		return models.SessionStats{}, false
	}
	closed := e.stats.current
	e.idx = 0
	e.remaining = e.schedule[0].DurationSeconds
	e.target = nil
	e.stats.reset()
	e.status = models.StatusIdle
	return closed, true
}

// PendingAutoStart reports whether a delayed auto-start is armed and the
// generation token the eventual callback must present.
func (e *Engine) PendingAutoStart() (gen int, armed bool) {
	return e.autoStartGen, e.autoStartArmed
}

// AutoStart fires a previously armed delayed auto-start. A stale token
// (user paused, skipped, or opened settings in the meantime) is ignored.
func (e *Engine) AutoStart(gen int) bool {
	if !e.autoStartArmed || gen != e.autoStartGen {
		return false
	}
	e.autoStartArmed = false
	return e.Start()
}

func (e *Engine) cancelAutoStart() {
	e.autoStartArmed = false
	e.autoStartGen++
}

func (e *Engine) remainingFromTarget() int {
	d := e.target.Sub(e.clock.Now())
	if d < 0 {
		d = 0
	}
	// Round to the nearest whole second.
	return int((d + 500*time.Millisecond) / time.Second)
}

// --- Read-only accessors ---

// Status returns the current run status.
func (e *Engine) Status() models.RunStatus { return e.status }

// CurrentPhase returns the phase the countdown is positioned on.
func (e *Engine) CurrentPhase() models.Phase { return e.schedule[e.idx] }

// PhaseIndex returns the current index into the schedule.
func (e *Engine) PhaseIndex() int { return e.idx }

// Remaining returns the remaining seconds for the current phase.
func (e *Engine) Remaining() int {
	if e.status == models.StatusRunning && e.target != nil {
		return e.remainingFromTarget()
	}
	return e.remaining
}

// Progress returns completion of the current phase in [0, 1].
func (e *Engine) Progress() float64 {
	duration := e.schedule[e.idx].DurationSeconds
	if duration <= 0 {
		return 0
	}
	return float64(duration-e.Remaining()) / float64(duration)
}

// Stats returns a copy of the in-progress set statistics.
func (e *Engine) Stats() models.SessionStats { return e.stats.current }

// Config returns the committed timer configuration.
func (e *Engine) Config() models.TimerConfig { return e.cfg }

// Schedule returns a copy of the active schedule.
func (e *Engine) Schedule() []models.Phase {
	out := make([]models.Phase, len(e.schedule))
	copy(out, e.schedule)
	return out
}
