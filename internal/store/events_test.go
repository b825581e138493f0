package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
	"github.com/letsDanceDB/pomodoro-timer/internal/timer"
)

// EventLog must satisfy the engine's sink contract.
var _ timer.EventSink = (*EventLog)(nil)

func TestEventLogRecordsLifecycleEvents(t *testing.T) {
	s, ctx := openTestStore(t)
	sink := NewEventLog(ctx, s)

	sink.StartPomodoro(models.PhaseWork, false)
	sink.StartPomodoro(models.PhaseWork, true)
	sink.CompletePomodoro(1500, 1500)
	sink.PhaseSkip(models.PhaseShortBreak)
	sink.MilestoneReached(models.SessionStats{CompletedWorkPhases: 4})

	for name, want := range map[string]int{
		"start_pomodoro":    2,
		"complete_pomodoro": 1,
		"phase_skip":        1,
		"milestone_reached": 1,
	} {
		count, err := s.EventCount(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, want, count, name)
	}
}

func TestEventLogSettingsChangePersistsConfig(t *testing.T) {
	s, ctx := openTestStore(t)
	sink := NewEventLog(ctx, s)

	cfg := timer.DefaultConfig()
	cfg.WorkMinutes = 50
	sink.SettingsChange(cfg)

	assert.Equal(t, 50, s.LoadTimerConfig(ctx).WorkMinutes)

	count, err := s.EventCount(ctx, "settings_change")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEventCountUnknownName(t *testing.T) {
	s, ctx := openTestStore(t)
	count, err := s.EventCount(ctx, "no_such_event")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
