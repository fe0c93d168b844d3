package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start       key.Binding
	Pause       key.Binding
	Reset       key.Binding
	Skip        key.Binding
	Edit        key.Binding
	MinutesUp   key.Binding
	MinutesDown key.Binding
	MinuteUp    key.Binding
	MinuteDown  key.Binding
	HoursUp     key.Binding
	HoursDown   key.Binding
	HoursUp5    key.Binding
	HoursDown5  key.Binding
	Delete      key.Binding
	Export      key.Binding
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	Tab4        key.Binding
	Tab         key.Binding
	Help        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Skip: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "skip"),
	),
	Edit: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "set time"),
	),
	MinutesUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "+5 min"),
	),
	MinutesDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "-5 min"),
	),
	MinuteUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "+1 min"),
	),
	MinuteDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "-1 min"),
	),
	HoursUp: key.NewBinding(
		key.WithKeys(">", "."),
		key.WithHelp(">", "+1 hour"),
	),
	HoursDown: key.NewBinding(
		key.WithKeys("<", ","),
		key.WithHelp("<", "-1 hour"),
	),
	HoursUp5: key.NewBinding(
		key.WithKeys("}"),
		key.WithHelp("}", "+5 hours"),
	),
	HoursDown5: key.NewBinding(
		key.WithKeys("{"),
		key.WithHelp("{", "-5 hours"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "timer"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "history"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "reports"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.Skip, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset, k.Skip},
		{k.Edit, k.MinutesUp, k.MinutesDown, k.MinuteUp, k.MinuteDown, k.HoursUp, k.HoursDown, k.HoursUp5, k.HoursDown5},
		{k.Delete, k.Export},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4},
		{k.Up, k.Down, k.Enter, k.Back, k.Quit},
	}
}
