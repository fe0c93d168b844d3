package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/records"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

type reportMode int

const (
	reportDaily reportMode = iota
	reportWeekly
)

type reportsModel struct {
	engine *session.Engine
	store  *store.Store
	width  int
	height int

	mode      reportMode
	summaries []records.DailySummary
	offset    int // weeks or 7-day blocks offset from today (0 = current)
	goal      time.Duration
	weekStart time.Weekday
	now       func() time.Time

	chart barchart.Model
}

func newReportsModel(e *session.Engine, s *store.Store) reportsModel {
	return reportsModel{
		engine:    e,
		store:     s,
		goal:      2 * time.Hour,
		weekStart: time.Monday,
		now:       time.Now,
		chart:     barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	summaries []records.DailySummary
	goal      time.Duration
	weekStart time.Weekday
}

func (r reportsModel) refresh() tea.Cmd {
	recs := r.engine.Records().List()
	return func() tea.Msg {
		goal, err := r.store.DailyGoal()
		if err != nil {
			goal = r.goal
		}
		r.weekStart = r.store.WeekStart()
		from, to := r.dateRange()
		return reportsDataMsg{
			summaries: records.Summarize(recs, from, to),
			goal:      goal,
			weekStart: r.weekStart,
		}
	}
}

func (r reportsModel) dateRange() (time.Time, time.Time) {
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r.mode {
	case reportWeekly:
		back := (int(today.Weekday()) - int(r.weekStart) + 7) % 7
		startOfWeek := today.AddDate(0, 0, -back-7*r.offset)
		return startOfWeek, startOfWeek.AddDate(0, 0, 7)
	default:
		// Daily: last 7 days
		end := today.AddDate(0, 0, 1-7*r.offset)
		start := end.AddDate(0, 0, -7)
		return start, end
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.summaries = msg.summaries
		r.goal = msg.goal
		r.weekStart = msg.weekStart
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		case key.Matches(msg, keys.Tab):
			if r.mode == reportDaily {
				r.mode = reportWeekly
			} else {
				r.mode = reportDaily
			}
			r.offset = 0
			return r, r.refresh()
		}
	}
	return r, nil
}

func (r reportsModel) summaryFor(day string) (records.DailySummary, bool) {
	for _, s := range r.summaries {
		if s.Date == day {
			return s, true
		}
	}
	return records.DailySummary{}, false
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	from, to := r.dateRange()
	goalSecs := int64(r.goal / time.Second)

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		s, _ := r.summaryFor(d.Format("2006-01-02"))
		color := colorWork
		if goalSecs > 0 && s.FocusSeconds >= goalSecs {
			color = colorSuccess
		}
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  "Focus",
				Value: float64(s.FocusSeconds) / 60.0,
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	// Mode tabs
	dailyTab := inactiveTabStyle.Render("Daily")
	weeklyTab := inactiveTabStyle.Render("Weekly")
	if r.mode == reportDaily {
		dailyTab = activeTabStyle.Render("Daily")
	} else {
		weeklyTab = activeTabStyle.Render("Weekly")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, dailyTab, weeklyTab)

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s to %s", from.Format("Jan 02"), to.AddDate(0, 0, -1).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", modeTabs, "  ", dateLabel,
	)

	goalLine := mutedStyle.Render(fmt.Sprintf("  Focus minutes per day, daily goal %s", formatHours(int64(r.goal/time.Second))))

	nav := mutedStyle.Render("  ←/→: navigate  tab: switch mode")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), goalLine, "", r.renderSummaryTable(w), "", nav,
		),
	)
}

func (r reportsModel) renderSummaryTable(w int) string {
	if len(r.summaries) == 0 {
		return mutedStyle.Render("  No sessions in this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %10s %10s %10s", "Date", "Focus", "Completed", "Incomplete")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 46))))

	var total int64
	var completed, incomplete int
	for _, s := range r.summaries {
		rows = append(rows, fmt.Sprintf("  %-12s %10s %10d %10d",
			s.Date, formatSeconds(s.FocusSeconds), s.Completed, s.Incomplete,
		))
		total += s.FocusSeconds
		completed += s.Completed
		incomplete += s.Incomplete
	}
	rows = append(rows, highlightStyle.Render(fmt.Sprintf("  %-12s %10s %10d %10d",
		"Total", formatSeconds(total), completed, incomplete,
	)))

	return strings.Join(rows, "\n")
}
