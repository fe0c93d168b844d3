package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorWork    = lipgloss.Color("#E5534B")
	colorBreak   = lipgloss.Color("#2EC4B6")
	colorMuted   = lipgloss.Color("#6E7681")
	colorSuccess = lipgloss.Color("#3FB950")
	colorWarning = lipgloss.Color("#D29922")
	colorError   = lipgloss.Color("#F85149")
	colorFg      = lipgloss.Color("#E6EDF3")
	colorSubtle  = lipgloss.Color("#30363D")
	colorAccent  = lipgloss.Color("#79C0FF")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWork).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorWork).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWork).
				Padding(1, 2)

	// Countdown, colored by mode and dimmed while paused
	workClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWork).
			Align(lipgloss.Center)

	breakClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBreak).
			Align(lipgloss.Center)

	idleClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMuted).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorWork).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

func modeColor(breakMode bool) lipgloss.Color {
	if breakMode {
		return colorBreak
	}
	return colorWork
}
