package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

func (m Model) View() string {
	var body string
	switch m.view {
	case viewSettings:
		body = m.renderSettings()
	case viewMilestone:
		body = m.renderMilestone()
	default:
		body = m.renderTimer()
	}
	if m.Message != "" {
		body += "\n" + CurrentTheme.Highlight.Render(m.Message)
	}
	return CurrentTheme.Base.Render(body)
}

func (m Model) renderTimer() string {
	phase := m.engine.CurrentPhase()
	accent := PhaseStyle(phase.Kind)

	status := m.engine.Status().String()
	header := fmt.Sprintf("%s  |  %s  |  %s",
		accent.Render(phase.Kind.Label()),
		FormatTimeRemaining(time.Duration(m.engine.Remaining())*time.Second),
		status)

	bar := m.progress.ViewAs(m.engine.Progress())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 2)
	box := frame.Render(header + "\n" + bar)

	stats := m.engine.Stats()
	statsLine := CurrentTheme.Dim.Render(fmt.Sprintf(
		"Focus phases done: %d/4  |  Skipped: %d  |  Focused: %s  |  Sets finished: %d",
		stats.CompletedWorkPhases,
		stats.SkippedUnstartedWorkPhases+stats.SkippedPartialWorkPhases,
		FormatFocused(stats.TotalFocusedSeconds),
		m.setCount))

	help := CurrentTheme.Dim.Render(
		"[s] start/pause  [n] skip  [x] reset  [o] settings  [ctrl+r] report  [q] quit  v" + versionLabel())

	return box + "\n" + statsLine + "\n" + help
}

func (m Model) renderSettings() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Settings"))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		label := fieldLabels[i]
		if i == m.form.focused {
			b.WriteString(CurrentTheme.Focused.Render("> " + label))
		} else {
			b.WriteString(CurrentTheme.Dim.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render("[tab] next field  [enter] apply  [esc] cancel"))
	return CurrentTheme.Input.Render(b.String())
}

func (m Model) renderMilestone() string {
	stats := m.engine.Stats()

	summary := fmt.Sprintf(
		"Set complete! Focus phases: %d completed, %d skipped before starting, %d skipped mid-phase. Total focused time this set: %s.",
		stats.CompletedWorkPhases,
		stats.SkippedUnstartedWorkPhases,
		stats.SkippedPartialWorkPhases,
		FormatFocused(stats.TotalFocusedSeconds))

	width := m.width - 8
	if width < 20 || width > 72 {
		width = 72
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Milestone.Render("★ Milestone reached ★"))
	b.WriteString("\n\n")
	b.WriteString(ansi.Wrap(summary, width, ""))
	b.WriteString("\n\n")
	b.WriteString(CurrentTheme.Dim.Render("[enter] start a fresh set  [q] quit"))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(PhaseColor(models.PhaseLongBreak))).
		Padding(1, 2)
	return frame.Render(b.String())
}

// PhaseColor resolves the configured color string for a phase kind,
// falling back to the theme border when unset.
func PhaseColor(kind models.PhaseKind) string {
	if c := currentColors.For(kind); c != "" {
		return c
	}
	return string(CurrentTheme.Border)
}
