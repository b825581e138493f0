package timer

import (
	"testing"
	"time"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// fakeClock is a manually advanced Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingSink captures emitted events for assertions.
type recordingSink struct {
	starts      []models.PhaseKind
	resumes     []bool
	completions [][2]int
	skips       []models.PhaseKind
	settings    []models.TimerConfig
	milestones  []models.SessionStats
}

func (s *recordingSink) StartPomodoro(phase models.PhaseKind, isResume bool) {
	s.starts = append(s.starts, phase)
	s.resumes = append(s.resumes, isResume)
}

func (s *recordingSink) CompletePomodoro(durationSeconds, spentSeconds int) {
	s.completions = append(s.completions, [2]int{durationSeconds, spentSeconds})
}

func (s *recordingSink) PhaseSkip(phase models.PhaseKind) {
	s.skips = append(s.skips, phase)
}

func (s *recordingSink) SettingsChange(cfg models.TimerConfig) {
	s.settings = append(s.settings, cfg)
}

func (s *recordingSink) MilestoneReached(stats models.SessionStats) {
	s.milestones = append(s.milestones, stats)
}

func newTestEngine(t *testing.T) (*Engine, *fakeClock, *recordingSink) {
	t.Helper()
	clock := newFakeClock()
	sink := &recordingSink{}
	return NewEngine(DefaultConfig(), clock, sink), clock, sink
}

func TestStartComputesTargetAndRuns(t *testing.T) {
	e, _, sink := newTestEngine(t)
	if !e.Start() {
		t.Fatalf("Start should succeed from idle")
	}
	if e.Status() != models.StatusRunning {
		t.Fatalf("status = %v, want running", e.Status())
	}
	if e.target == nil {
		t.Fatalf("target timestamp must be set while running")
	}
	if len(sink.starts) != 1 || sink.starts[0] != models.PhaseWork {
		t.Fatalf("expected one start event for the work phase, got %v", sink.starts)
	}
	if sink.resumes[0] {
		t.Fatalf("fresh start must not be flagged as a resume")
	}
}

func TestStartIsNoOpWhileRunning(t *testing.T) {
	e, clock, sink := newTestEngine(t)
	e.Start()
	clock.advance(10 * time.Second)
	e.Start()
	if len(sink.starts) != 1 {
		t.Fatalf("redundant Start must not emit a second event")
	}
	if got := e.Remaining(); got != 25*60-10 {
		t.Fatalf("redundant Start changed remaining: %d", got)
	}
}

func TestWallClockAccuracyRegardlessOfTicks(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()

	// No intermediate ticks at all: the display still reads true.
	clock.advance(7 * time.Minute)
	if got := e.Remaining(); got != 18*60 {
		t.Fatalf("remaining = %d, want %d", got, 18*60)
	}

	// A burst of redundant ticks changes nothing.
	for i := 0; i < 50; i++ {
		e.Tick()
	}
	if got := e.Remaining(); got != 18*60 {
		t.Fatalf("remaining after tick burst = %d, want %d", got, 18*60)
	}
}

func TestPauseIdempotent(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.advance(90 * time.Second)

	if !e.Pause() {
		t.Fatalf("first Pause should succeed")
	}
	want := e.Remaining()
	if e.target != nil {
		t.Fatalf("target must be cleared while paused")
	}

	clock.advance(5 * time.Minute)
	if e.Pause() {
		t.Fatalf("second Pause must be a no-op")
	}
	if got := e.Remaining(); got != want {
		t.Fatalf("second Pause changed remaining: %d != %d", got, want)
	}
}

func TestPauseResumePreservesRemaining(t *testing.T) {
	e, clock, sink := newTestEngine(t)
	e.Start()
	clock.advance(2 * time.Minute)
	e.Pause()

	// Wall time passing while paused must not drain the countdown.
	clock.advance(30 * time.Minute)
	if got := e.Remaining(); got != 23*60 {
		t.Fatalf("remaining while paused = %d, want %d", got, 23*60)
	}

	e.Start()
	if !sink.resumes[len(sink.resumes)-1] {
		t.Fatalf("restart of a partly elapsed phase must be flagged as resume")
	}
	clock.advance(3 * time.Minute)
	if got := e.Remaining(); got != 20*60 {
		t.Fatalf("remaining after resume = %d, want %d", got, 20*60)
	}
}

func TestResetCurrentPhase(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.advance(4 * time.Minute)
	e.ResetCurrentPhase()

	if e.Status() != models.StatusPaused {
		t.Fatalf("reset while running should pause, got %v", e.Status())
	}
	if got := e.Remaining(); got != 25*60 {
		t.Fatalf("remaining after reset = %d, want full duration", got)
	}
	if e.PhaseIndex() != 0 {
		t.Fatalf("reset must not change the phase index")
	}
	if e.target != nil {
		t.Fatalf("reset must clear the target timestamp")
	}
}

func TestNaturalCompletionAdvancesAndArmsAutoStart(t *testing.T) {
	e, clock, sink := newTestEngine(t)
	e.Start()
	clock.advance(25 * time.Minute)
	e.Tick()

	if e.PhaseIndex() != 1 {
		t.Fatalf("index after completion = %d, want 1", e.PhaseIndex())
	}
	if e.CurrentPhase().Kind != models.PhaseShortBreak {
		t.Fatalf("phase after first work phase should be a short break")
	}
	if got := e.Remaining(); got != 5*60 {
		t.Fatalf("remaining = %d, want full short break", got)
	}
	if _, armed := e.PendingAutoStart(); !armed {
		t.Fatalf("natural completion must arm the delayed auto-start")
	}
	if len(sink.completions) != 1 || sink.completions[0] != [2]int{1500, 1500} {
		t.Fatalf("completion event = %v", sink.completions)
	}
	if s := e.Stats(); s.CompletedWorkPhases != 1 || s.TotalFocusedSeconds != 1500 {
		t.Fatalf("stats after natural completion = %+v", s)
	}
}

func TestAutoStartFiresWithFreshToken(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.advance(25 * time.Minute)
	e.Tick()

	gen, armed := e.PendingAutoStart()
	if !armed {
		t.Fatalf("expected pending auto-start")
	}
	if !e.AutoStart(gen) {
		t.Fatalf("auto-start with the current token should fire")
	}
	if e.Status() != models.StatusRunning {
		t.Fatalf("status after auto-start = %v", e.Status())
	}
}

func TestStaleAutoStartIsIgnored(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.advance(25 * time.Minute)
	e.Tick()

	gen, _ := e.PendingAutoStart()
	e.Pause() // user intervened; token is now stale
	if e.AutoStart(gen) {
		t.Fatalf("stale auto-start token must be a no-op")
	}
	if e.Status() == models.StatusRunning {
		t.Fatalf("ghost start fired after manual pause")
	}
}

func TestManualStartInvalidatesPendingAutoStart(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Start()
	clock.advance(25 * time.Minute)
	e.Tick()

	gen, _ := e.PendingAutoStart()
	e.Start() // user starts the break by hand before the delay fires
	if e.AutoStart(gen) {
		t.Fatalf("pending auto-start must be cancelled by a manual start")
	}
}

func TestTickOutsideRunningIsHarmless(t *testing.T) {
	e, clock, _ := newTestEngine(t)
	e.Tick()
	if e.Status() != models.StatusIdle {
		t.Fatalf("tick while idle changed status to %v", e.Status())
	}
	e.Start()
	clock.advance(time.Minute)
	e.Pause()
	want := e.Remaining()
	e.Tick()
	if e.Remaining() != want {
		t.Fatalf("tick while paused changed remaining")
	}
}
