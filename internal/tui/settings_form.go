package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

const (
	fieldWorkMinutes = iota
	fieldShortBreakMinutes
	fieldLongBreakMinutes
	fieldWorkColor
	fieldShortBreakColor
	fieldLongBreakColor
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Focus minutes",
	"Short break minutes",
	"Long break minutes",
	"Focus color",
	"Short break color",
	"Long break color",
}

// settingsForm is the editable settings draft. Inputs hold raw text;
// nothing is validated until the form is committed.
type settingsForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
}

func newSettingsForm(cfg models.TimerConfig) settingsForm {
	var f settingsForm
	values := [fieldCount]string{
		strconv.Itoa(cfg.WorkMinutes),
		strconv.Itoa(cfg.ShortBreakMinutes),
		strconv.Itoa(cfg.LongBreakMinutes),
		cfg.Colors.Work,
		cfg.Colors.ShortBreak,
		cfg.Colors.LongBreak,
	}
	for i := range f.inputs {
		in := textinput.New()
		in.SetValue(values[i])
		in.CharLimit = 16
		in.Width = 20
		if i < fieldWorkColor {
			in.CharLimit = 2
			in.Width = 6
		}
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *settingsForm) next() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *settingsForm) prev() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + fieldCount - 1) % fieldCount
	f.inputs[f.focused].Focus()
}

// Draft assembles a config from the form fields. Unparseable minute
// fields fall back to the values in cur rather than failing the commit.
func (f *settingsForm) Draft(cur models.TimerConfig) models.TimerConfig {
	draft := models.TimerConfig{
		WorkMinutes:       minutesOr(f.inputs[fieldWorkMinutes].Value(), cur.WorkMinutes),
		ShortBreakMinutes: minutesOr(f.inputs[fieldShortBreakMinutes].Value(), cur.ShortBreakMinutes),
		LongBreakMinutes:  minutesOr(f.inputs[fieldLongBreakMinutes].Value(), cur.LongBreakMinutes),
		Colors: models.PhaseColors{
			Work:       f.inputs[fieldWorkColor].Value(),
			ShortBreak: f.inputs[fieldShortBreakColor].Value(),
			LongBreak:  f.inputs[fieldLongBreakColor].Value(),
		},
	}
	return draft
}

func minutesOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > config.MaxInputMinutes {
		return fallback
	}
	return n
}
