package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/clock"
)

// firedMsg is delivered when a scheduled callback is due.
type firedMsg struct {
	handle clock.Handle
}

// teaScheduler runs clock callbacks on the Bubble Tea update loop. Each
// ScheduleAfter queues a tea.Tick command; the app drains the queue after
// every Update and runs the callback when the matching firedMsg arrives.
type teaScheduler struct {
	next    clock.Handle
	pending map[clock.Handle]func()
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[clock.Handle]func())}
}

func (s *teaScheduler) ScheduleAfter(d time.Duration, fn func()) clock.Handle {
	s.next++
	h := s.next
	s.pending[h] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return firedMsg{handle: h}
	}))
	return h
}

// Cancel forgets h. Its tick still arrives and is dropped.
func (s *teaScheduler) Cancel(h clock.Handle) {
	delete(s.pending, h)
}

// fire runs the callback for h. It reports false for cancelled handles.
func (s *teaScheduler) fire(h clock.Handle) bool {
	fn, ok := s.pending[h]
	if !ok {
		return false
	}
	delete(s.pending, h)
	fn()
	return true
}

// drain returns the ticks queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}
