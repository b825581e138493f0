package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := 40
			if m.width < 60 {
				target = m.width / 2
			}
			if target < 10 {
				target = 10
			}
			m.progress.Width = target
		}
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	case AutoStartMsg:
		return m.handleAutoStart(msg)
	case tea.KeyMsg:
		if m.Message != "" {
			m.Message = ""
		}
		switch m.view {
		case viewSettings:
			return m.handleSettingsKeys(msg)
		case viewMilestone:
			return m.handleMilestoneKeys(msg)
		default:
			return m.handleTimerKeys(msg)
		}
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.engine.Tick()
	switch m.engine.Status() {
	case models.StatusRunning:
		newProg, progCmd := m.progress.Update(msg)
		m.progress = newProg.(progress.Model)
		return m, tea.Batch(tickCmd(), progCmd)
	case models.StatusMilestonePending:
		m.view = viewMilestone
		return m, nil
	case models.StatusIdle:
		if gen, armed := m.engine.PendingAutoStart(); armed {
			return m, autoStartCmd(gen)
		}
	}
	return m, nil
}

func (m Model) handleAutoStart(msg AutoStartMsg) (tea.Model, tea.Cmd) {
	if m.engine.AutoStart(msg.Gen) {
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		if m.engine.Status() == models.StatusRunning {
			m.engine.Pause()
			return m, nil
		}
		if m.engine.Start() {
			return m, tickCmd()
		}
		return m, nil
	case "n":
		m.engine.Skip()
		if m.engine.Status() == models.StatusMilestonePending {
			m.view = viewMilestone
			return m, nil
		}
		if gen, armed := m.engine.PendingAutoStart(); armed {
			return m, autoStartCmd(gen)
		}
		return m, nil
	case "x":
		m.engine.ResetCurrentPhase()
		return m, nil
	case "o":
		if m.engine.OpenSettings() {
			m.form = newSettingsForm(m.engine.Config())
			m.view = viewSettings
		}
		return m, nil
	case "ctrl+r":
		path, err := m.writeReport()
		if err != nil {
			util.LogError("writing session report", err)
			m.Message = fmt.Sprintf("Report failed: %v", err)
			return m, nil
		}
		m.Message = "Report saved to " + path
		return m, nil
	}
	return m, nil
}

func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.engine.CancelSettings()
		return m.leaveSettings()
	case "enter":
		committed, adjusted := m.engine.CommitSettings(m.form.Draft(m.engine.Config()))
		SetPhaseColors(committed.Colors)
		if err := m.store.SaveTimerConfig(m.ctx, committed); err != nil {
			util.LogError("saving timer config", err)
		}
		if adjusted {
			m.Message = "Some durations were adjusted to allowed bounds"
		}
		return m.leaveSettings()
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
	return m, cmd
}

// leaveSettings returns to the timer view and revives the tick chain
// when the countdown resumed on exit.
func (m Model) leaveSettings() (tea.Model, tea.Cmd) {
	m.view = viewTimer
	if m.engine.Status() == models.StatusRunning {
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleMilestoneKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		stats, ok := m.engine.AcknowledgeMilestone()
		if !ok {
			return m, nil
		}
		if _, err := m.store.RecordSet(m.ctx, stats, time.Now()); err != nil {
			util.LogError("recording completed set", err)
		}
		count, err := m.store.CompletedSetCount(m.ctx)
		if err != nil {
			util.LogError("counting completed sets", err)
		} else {
			m.setCount = count
		}
		m.view = viewTimer
		return m, nil
	}
	return m, nil
}
