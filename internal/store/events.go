package store

import (
	"context"
	"encoding/json"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

// EventLog records the engine's outbound events in the events table and
// keeps the persisted configuration in sync with settings commits. It
// implements timer.EventSink. Insert failures are logged and swallowed
// so the state machine never blocks on storage.
type EventLog struct {
	ctx   context.Context
	store *Store
}

// NewEventLog builds a sink writing through the given store.
func NewEventLog(ctx context.Context, store *Store) *EventLog {
	return &EventLog{ctx: ctx, store: store}
}

func (l *EventLog) StartPomodoro(phase models.PhaseKind, isResume bool) {
	l.record("start_pomodoro", map[string]any{
		"phase":     string(phase),
		"is_resume": util.BoolToInt(isResume),
	})
}

func (l *EventLog) CompletePomodoro(durationSeconds, spentSeconds int) {
	l.record("complete_pomodoro", map[string]any{
		"duration_seconds": durationSeconds,
		"spent_seconds":    spentSeconds,
	})
}

func (l *EventLog) PhaseSkip(phase models.PhaseKind) {
	l.record("phase_skip", map[string]any{"phase": string(phase)})
}

func (l *EventLog) SettingsChange(cfg models.TimerConfig) {
	util.LogError("persist timer config", l.store.SaveTimerConfig(l.ctx, cfg))
	l.record("settings_change", map[string]any{
		"work_minutes":        cfg.WorkMinutes,
		"short_break_minutes": cfg.ShortBreakMinutes,
		"long_break_minutes":  cfg.LongBreakMinutes,
		"work_color":          cfg.Colors.Work,
		"short_break_color":   cfg.Colors.ShortBreak,
		"long_break_color":    cfg.Colors.LongBreak,
	})
}

func (l *EventLog) MilestoneReached(stats models.SessionStats) {
	l.record("milestone_reached", map[string]any{
		"completed":         stats.CompletedWorkPhases,
		"skipped_unstarted": stats.SkippedUnstartedWorkPhases,
		"skipped_partial":   stats.SkippedPartialWorkPhases,
		"focused_seconds":   stats.TotalFocusedSeconds,
	})
}

func (l *EventLog) record(name string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		util.LogError("encode event "+name, err)
		return
	}
	_, err = l.store.db.ExecContext(l.ctx, "INSERT INTO events (name, payload) VALUES (?, ?)", name, string(data))
	util.LogError("record event "+name, err)
}

// EventCount returns the number of recorded events with the given name.
// Used by reports and tests.
func (s *Store) EventCount(ctx context.Context, name string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM events WHERE name = ?", name).Scan(&count)
	if err != nil {
		return 0, &OpError{Op: "count", Resource: "event", Err: err}
	}
	return count, nil
}
