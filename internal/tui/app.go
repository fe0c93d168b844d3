// Package tui hosts the session engine in a Bubble Tea program. The update
// loop is the engine's only thread: clock ticks arrive as messages and
// engine events are collected and rendered after each Update.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/export"
	"github.com/sadopc/pomo/internal/logger"
	"github.com/sadopc/pomo/internal/records"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

var exportFormats = []string{"CSV", "JSON", "YAML"}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	engine *session.Engine
	sched  *teaScheduler
	inbox  *eventInbox
	log    *logger.Logger
	bell   io.Writer

	width  int
	height int
	now    time.Time

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string

	timer    timerModel
	history  historyModel
	reports  reportsModel
	settings settingsModel

	help      help.Model
	status    string
	statusErr bool
}

// NewApp builds the engine on a Bubble Tea scheduler, using the work
// duration stored in s.
func NewApp(s *store.Store, recs *records.Log, log *logger.Logger) App {
	if log == nil {
		log = logger.New(logger.LevelOff, nil)
	}

	work, err := s.WorkDuration()
	if err != nil {
		log.Warn("work duration setting: %v, using %s", err, session.DefaultWorkDuration)
		work = session.DefaultWorkDuration
	}

	sched := newTeaScheduler()
	inbox := &eventInbox{}
	eng := session.New(sched, recs,
		session.WithLogger(log),
		session.WithWorkDuration(work),
	)
	eng.Subscribe(inbox.push)

	h := help.New()
	h.ShowAll = false

	home, _ := os.UserHomeDir()

	return App{
		store:      s,
		engine:     eng,
		sched:      sched,
		inbox:      inbox,
		log:        log,
		bell:       os.Stdout,
		now:        time.Now(),
		activeView: viewTimer,
		exportDir:  home,
		timer:      newTimerModel(eng),
		history:    newHistoryModel(eng),
		reports:    newReportsModel(eng, s),
		settings:   newSettingsModel(s, eng),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.history.refresh(),
		a.reports.refresh(),
		a.settings.refresh(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update routes msg, then turns engine events into status updates and
// hands any clock ticks the engine scheduled back to Bubble Tea.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.update(msg)
	evCmd := next.handleEvents()
	return next, tea.Batch(cmd, evCmd, next.sched.drain())
}

func (a App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.timer.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.reports.buildChart()
		return a, nil

	case firedMsg:
		a.sched.fire(msg.handle)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewHistory
			return a, a.history.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewReports
			return a, a.reports.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab) && a.activeView != viewReports:
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		a.now = time.Time(msg)
		return a, tickCmd()

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		if msg.isError {
			a.log.Warn("%s", msg.text)
		}
		return a, nil

	case settingsSavedMsg:
		a.status = "Settings saved"
		a.statusErr = false
		return a, a.reports.refresh()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case historyDataMsg:
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg)
		return a, cmd

	case reportsDataMsg:
		var cmd tea.Cmd
		a.reports, cmd = a.reports.update(msg)
		return a, cmd

	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd
	}

	return a.updateActiveView(msg)
}

// handleEvents drains the engine events raised during the last update.
func (a *App) handleEvents() tea.Cmd {
	var (
		refresh bool
		bell    bool
		errText string
		parts   []string
	)
	for _, ev := range a.inbox.take() {
		switch ev.Type {
		case session.EventExpired:
			bell = true
		case session.EventRecorded:
			refresh = true
			parts = append(parts, fmt.Sprintf("Logged %s session as %s", ev.Record.Countdown, ev.Record.Status()))
		case session.EventPersistFailed:
			errText = fmt.Sprintf("Could not save records: %v", ev.Err)
		case session.EventModeChange:
			if ev.Mode == session.ModeBreak {
				parts = append(parts, "Break time")
			} else {
				parts = append(parts, "Back to work")
			}
		}
	}
	if len(parts) > 0 {
		a.status = strings.Join(parts, ". ")
		a.statusErr = false
	}
	if errText != "" {
		a.status = errText
		a.statusErr = true
	}

	var cmds []tea.Cmd
	if bell {
		cmds = append(cmds, ringBell(a.bell))
	}
	if refresh {
		cmds = append(cmds, a.history.refresh(), a.reports.refresh())
	}
	return tea.Batch(cmds...)
}

// ringBell writes a single BEL to w. It runs once per expiry, outside the
// rendered view.
func ringBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		if w != nil {
			fmt.Fprint(w, "\a")
		}
		return nil
	}
}

func (a App) updateActiveView(msg tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTimer:
		return a.timer.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewHistory:
		return a.history.refresh()
	case viewReports:
		return a.reports.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTimer:
		content = a.timer.view(a.now)
	case viewHistory:
		content = a.history.view()
	case viewReports:
		content = a.reports.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorWork).Render("pomo")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	// Countdown indicator when the timer view is hidden
	timerInfo := ""
	st := a.engine.State()
	if a.activeView != viewTimer && st.Armed {
		label := st.Mode.String() + " " + st.Remaining.String()
		if st.Running {
			timerInfo = successStyle.Render(" ● " + label)
		} else {
			timerInfo = warningStyle.Render(" ⏸ " + label)
		}
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	var rows []string
	rows = append(rows, titleStyle.Render("Export Format"), "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (App, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	recs := a.engine.Records().List()
	dir := a.exportDir
	return func() tea.Msg {
		dateStr := time.Now().Format("2006-01-02")
		base := filepath.Join(dir, "pomo-export-"+dateStr)

		var path string
		var err error
		switch format {
		case 0:
			path = base + ".csv"
			err = export.ToCSV(recs, path)
		case 1:
			path = base + ".json"
			err = export.ToJSON(recs, path)
		default:
			path = base + ".yaml"
			err = export.ToYAML(recs, path)
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("%s export error: %v", exportFormats[format], err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
