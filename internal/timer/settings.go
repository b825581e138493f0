package timer

import (
	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/models"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

// DefaultConfig returns the built-in timer configuration used when no
// stored configuration exists or a stored field is unusable.
func DefaultConfig() models.TimerConfig {
	return models.TimerConfig{
		WorkMinutes:       config.DefaultWorkMinutes,
		ShortBreakMinutes: config.DefaultShortBreakMinutes,
		LongBreakMinutes:  config.DefaultLongBreakMinutes,
		Colors: models.PhaseColors{
			Work:       config.DefaultWorkColor,
			ShortBreak: config.DefaultShortBreakColor,
			LongBreak:  config.DefaultLongBreakColor,
		},
	}
}

// ClampDraft applies the per-kind duration bounds to a settings draft.
// Out-of-range values are clamped, not rejected; empty colors fall back
// to the defaults. The second return reports whether any duration was
// adjusted, so the UI can show an advisory message.
func ClampDraft(draft models.TimerConfig) (models.TimerConfig, bool) {
	out := draft
	out.WorkMinutes = util.Clamp(draft.WorkMinutes, config.MinWorkMinutes, config.MaxInputMinutes)
	out.ShortBreakMinutes = util.Clamp(draft.ShortBreakMinutes, config.MinShortBreakMinutes, config.MaxShortBreakMinutes)
	out.LongBreakMinutes = util.Clamp(draft.LongBreakMinutes, config.MinLongBreakMinutes, config.MaxInputMinutes)

	if out.Colors.Work == "" {
		out.Colors.Work = config.DefaultWorkColor
	}
	if out.Colors.ShortBreak == "" {
		out.Colors.ShortBreak = config.DefaultShortBreakColor
	}
	if out.Colors.LongBreak == "" {
		out.Colors.LongBreak = config.DefaultLongBreakColor
	}

	adjusted := out.WorkMinutes != draft.WorkMinutes ||
		out.ShortBreakMinutes != draft.ShortBreakMinutes ||
		out.LongBreakMinutes != draft.LongBreakMinutes
	return out, adjusted
}
