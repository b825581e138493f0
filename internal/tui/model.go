package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/letsDanceDB/pomodoro-timer/internal/timer"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

type viewState int

const (
	viewTimer viewState = iota
	viewSettings
	viewMilestone
)

// Model is the root Bubble Tea model for the timer application.
type Model struct {
	ctx    context.Context
	store  Store
	engine *timer.Engine

	view     viewState
	progress progress.Model
	form     settingsForm

	setCount int
	Message  string

	width  int
	height int
}

func NewModel(ctx context.Context, st Store, engine *timer.Engine, themeName string) Model {
	SetTheme(themeName)
	SetPhaseColors(engine.Config().Colors)

	count, err := st.CompletedSetCount(ctx)
	if err != nil {
		util.LogError("counting completed sets", err)
	}

	return Model{
		ctx:      ctx,
		store:    st,
		engine:   engine,
		view:     viewTimer,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		setCount: count,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
