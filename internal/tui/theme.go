package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Input     lipgloss.Style
	Highlight lipgloss.Style
	Milestone lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Milestone: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Milestone: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
// Initialized to default to avoid nil dereferences.
var CurrentTheme = Themes["default"]

// currentColors are the user-configured per-phase accent colors, applied
// on top of whichever named theme is active.
var currentColors = models.PhaseColors{}

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// SetPhaseColors installs the committed per-phase colors.
func SetPhaseColors(c models.PhaseColors) {
	currentColors = c
}

// PhaseStyle returns the accent style for a phase kind.
func PhaseStyle(kind models.PhaseKind) lipgloss.Style {
	color := currentColors.For(kind)
	if color == "" {
		return CurrentTheme.Focused
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
