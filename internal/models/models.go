package models

import "time"

// PhaseKind enumerates the scheduled segment types.
type PhaseKind string

const (
	PhaseWork       PhaseKind = "work"
	PhaseShortBreak PhaseKind = "shortBreak"
	PhaseLongBreak  PhaseKind = "longBreak"
)

// Label returns the display text for a phase kind.
func (k PhaseKind) Label() string {
	switch k {
	case PhaseWork:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	}
	return "Unknown"
}

// RunStatus enumerates the possible states of the countdown.
type RunStatus int

const (
	StatusIdle RunStatus = iota
	StatusRunning
	StatusPaused
	StatusInSettings
	StatusMilestonePending
)

func (s RunStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusInSettings:
		return "in-settings"
	case StatusMilestonePending:
		return "milestone-pending"
	}
	return "unknown"
}

// Phase is one scheduled countdown segment. Duration is fixed when the
// schedule is built and never mutated in place.
type Phase struct {
	Kind            PhaseKind
	DurationSeconds int
}

// Label returns the display text for this phase.
func (p Phase) Label() string { return p.Kind.Label() }

// PhaseColors maps each phase kind to its accent color.
type PhaseColors struct {
	Work       string
	ShortBreak string
	LongBreak  string
}

// For returns the color configured for a phase kind.
func (c PhaseColors) For(kind PhaseKind) string {
	switch kind {
	case PhaseWork:
		return c.Work
	case PhaseShortBreak:
		return c.ShortBreak
	case PhaseLongBreak:
		return c.LongBreak
	}
	return c.Work
}

// TimerConfig is the committed timer configuration. Drafts of this struct
// are edited in the settings view and clamped on commit.
type TimerConfig struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	Colors            PhaseColors
}

// SessionStats accumulates work-phase outcomes across one set. All fields
// reset together on milestone acknowledgement, never on a plain transition.
type SessionStats struct {
	CompletedWorkPhases        int
	SkippedUnstartedWorkPhases int
	SkippedPartialWorkPhases   int
	TotalFocusedSeconds        int
}

// WorkPhasesLeft is the number of work phases exited since the last
// milestone acknowledgement, however they ended.
func (s SessionStats) WorkPhasesLeft() int {
	return s.CompletedWorkPhases + s.SkippedUnstartedWorkPhases + s.SkippedPartialWorkPhases
}

// SetRecord is one finished traversal of the schedule, persisted to history.
type SetRecord struct {
	ID               string
	FinishedAt       time.Time
	Completed        int
	SkippedUnstarted int
	SkippedPartial   int
	FocusedSeconds   int
}
