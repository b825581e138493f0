package store

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/models"
	"github.com/letsDanceDB/pomodoro-timer/internal/timer"
)

// configDoc is the persisted configuration schema. The short break is
// stored as breakMinutes for compatibility with documents written by
// earlier releases.
type configDoc struct {
	WorkMinutes      int            `json:"workMinutes"`
	BreakMinutes     int            `json:"breakMinutes"`
	LongBreakMinutes int            `json:"longBreakMinutes"`
	PhaseColors      phaseColorsDoc `json:"phaseColors"`
}

type phaseColorsDoc struct {
	Work       string `json:"work"`
	ShortBreak string `json:"shortBreak"`
	LongBreak  string `json:"longBreak"`
}

// LoadTimerConfig reads the stored configuration document. Malformed or
// out-of-range fields are ignored individually and fall back to the
// built-in defaults; loading never fails.
func (s *Store) LoadTimerConfig(ctx context.Context) models.TimerConfig {
	doc, ok := s.GetSetting(ctx, config.TimerConfigKey)
	if !ok {
		return timer.DefaultConfig()
	}
	return parseTimerConfig(doc)
}

// SaveTimerConfig writes the configuration document.
func (s *Store) SaveTimerConfig(ctx context.Context, cfg models.TimerConfig) error {
	doc := configDoc{
		WorkMinutes:      cfg.WorkMinutes,
		BreakMinutes:     cfg.ShortBreakMinutes,
		LongBreakMinutes: cfg.LongBreakMinutes,
		PhaseColors: phaseColorsDoc{
			Work:       cfg.Colors.Work,
			ShortBreak: cfg.Colors.ShortBreak,
			LongBreak:  cfg.Colors.LongBreak,
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return wrapSettingErr("encode config", err)
	}
	return s.SetSetting(ctx, config.TimerConfigKey, string(data))
}

// parseTimerConfig extracts each field tolerantly so one bad value never
// poisons the rest of the document.
func parseTimerConfig(doc string) models.TimerConfig {
	cfg := timer.DefaultConfig()
	if !gjson.Valid(doc) {
		return cfg
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return cfg
	}

	if n, ok := minutesField(root, "workMinutes"); ok {
		cfg.WorkMinutes = n
	}
	if n, ok := minutesField(root, "breakMinutes"); ok {
		cfg.ShortBreakMinutes = n
	}
	if n, ok := minutesField(root, "longBreakMinutes"); ok {
		cfg.LongBreakMinutes = n
	}

	colors := root.Get("phaseColors")
	if colors.IsObject() {
		if v := colors.Get("work"); v.Type == gjson.String && v.Str != "" {
			cfg.Colors.Work = v.Str
		}
		shortBreak := colors.Get("shortBreak")
		if shortBreak.Type != gjson.String || shortBreak.Str == "" {
			// Documents written before the rename stored this under "break".
			shortBreak = colors.Get("break")
		}
		if shortBreak.Type == gjson.String && shortBreak.Str != "" {
			cfg.Colors.ShortBreak = shortBreak.Str
		}
		if v := colors.Get("longBreak"); v.Type == gjson.String && v.Str != "" {
			cfg.Colors.LongBreak = v.Str
		}
	}

	// Stored values from unknown writers still obey the commit bounds.
	cfg, _ = timer.ClampDraft(cfg)
	return cfg
}

func minutesField(root gjson.Result, name string) (int, bool) {
	v := root.Get(name)
	if !v.Exists() || v.Type != gjson.Number {
		return 0, false
	}
	n := int(v.Int())
	if n < 1 || n > config.MaxInputMinutes {
		return 0, false
	}
	return n, true
}
