package config

import "time"

// Built-in phase durations (minutes), used until the user commits settings.
const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Clamping bounds applied to a settings draft on commit.
const (
	MinWorkMinutes       = 10
	MinShortBreakMinutes = 1
	MaxShortBreakMinutes = 10
	MinLongBreakMinutes  = 5

	// MaxInputMinutes is the generic input ceiling for any duration field.
	MaxInputMinutes = 60
)

// Schedule topology: four work phases interleaved with short breaks,
// closed by a single long break.
const (
	WorkPhasesPerSet = 4
	SchedulePhases   = 8
)

// Timing.
const (
	// RefreshInterval drives the display refresh while running. Display
	// cadence only; remaining time is always derived from the target
	// timestamp, never from counting ticks.
	RefreshInterval = 250 * time.Millisecond

	// AutoStartDelay is the presentation pause between a phase expiring
	// and the next one auto-starting.
	AutoStartDelay = 1200 * time.Millisecond
)

// Database/application settings.
const (
	AppName        = "pomodoro-timer"
	DBFileName     = "timer.db"
	ConfigFileName = "config.yaml"

	// TimerConfigKey is the settings-table key holding the persisted
	// timer configuration document.
	TimerConfigKey = "timer_config"
)

// Default per-phase accent colors (hex), overridable via settings.
const (
	DefaultWorkColor       = "#e05252"
	DefaultShortBreakColor = "#52a7e0"
	DefaultLongBreakColor  = "#7bc96f"
)
