package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/letsDanceDB/pomodoro-timer/internal/config"
)

// --- Messages ---

// TickMsg drives the display refresh while the countdown runs.
type TickMsg time.Time

// AutoStartMsg fires the delayed auto-start for the next phase. The
// generation token is checked by the engine; a stale token does nothing.
type AutoStartMsg struct {
	Gen int
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.RefreshInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func autoStartCmd(gen int) tea.Cmd {
	return tea.Tick(config.AutoStartDelay, func(time.Time) tea.Msg { return AutoStartMsg{Gen: gen} })
}
