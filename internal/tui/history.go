package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/records"
	"github.com/sadopc/pomo/internal/session"
)

type historyModel struct {
	engine *session.Engine
	width  int
	height int

	records []records.Record // newest first
	cursor  int
	offset  int
}

func newHistoryModel(e *session.Engine) historyModel {
	return historyModel{engine: e}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

type historyDataMsg struct {
	records []records.Record
}

func (h historyModel) refresh() tea.Cmd {
	recs := h.engine.Records().List()
	return func() tea.Msg {
		// Newest first for display.
		for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
			recs[i], recs[j] = recs[j], recs[i]
		}
		return historyDataMsg{records: recs}
	}
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.records = msg.records
		if h.cursor >= len(h.records) {
			h.cursor = max(0, len(h.records)-1)
		}
		h.clampOffset()
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(h.records)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Delete):
			return h, h.deleteSelected()
		}
		h.clampOffset()
	}
	return h, nil
}

func (h historyModel) deleteSelected() tea.Cmd {
	if h.cursor >= len(h.records) {
		return nil
	}
	rec := h.records[h.cursor]
	ok, err := h.engine.RemoveRecord(rec.Key)
	if err != nil {
		return tea.Batch(h.refresh(), statusCmd(fmt.Sprintf("Could not save records: %v", err), true))
	}
	if !ok {
		return h.refresh()
	}
	return tea.Batch(h.refresh(), statusCmd(fmt.Sprintf("Deleted %s %s session", rec.Date, rec.Time), false))
}

func (h historyModel) visibleRows() int {
	// panel border + padding, title, today line, blank, header, rule, blank, hint
	n := h.height - 12
	if n < 3 {
		n = 3
	}
	return n
}

func (h *historyModel) clampOffset() {
	rows := h.visibleRows()
	if h.cursor < h.offset {
		h.offset = h.cursor
	}
	if h.cursor >= h.offset+rows {
		h.offset = h.cursor - rows + 1
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

func (h historyModel) view() string {
	w := h.width - 4

	title := titleStyle.Render("History")
	today := records.Today(h.records, time.Now())
	todayLine := mutedStyle.Render(fmt.Sprintf("Today: %d completed, %d incomplete, %s focused",
		today.Completed, today.Incomplete, formatSeconds(today.FocusSeconds)))

	var rows []string
	rows = append(rows, title, todayLine, "")

	if len(h.records) == 0 {
		rows = append(rows, mutedStyle.Render("  No sessions logged yet"))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-6s %-10s %s", "Date", "Time", "Countdown", "Status")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 44))))

	end := min(h.offset+h.visibleRows(), len(h.records))
	for i := h.offset; i < end; i++ {
		r := h.records[i]
		status := successStyle.Render(r.Status())
		if !r.Complete {
			status = warningStyle.Render(r.Status())
		}
		line := fmt.Sprintf("%-12s %-6s %-10s ", r.Date, r.Time, r.Countdown)
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+line)+status)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d records  ↑/↓: move  d: delete  e: export", len(h.records))))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
