package clock

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay on the host's event loop.
// Implementations must invoke callbacks one at a time, never concurrently
// with other engine calls.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

type pendingCall struct {
	handle Handle
	at     time.Duration
	fn     func()
}

// ManualScheduler is a Scheduler driven by virtual time. Nothing fires
// until Advance or RunNext is called.
type ManualScheduler struct {
	now     time.Duration
	next    Handle
	pending []pendingCall
}

// NewManualScheduler returns a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleAfter registers fn to run once d of virtual time has passed.
func (s *ManualScheduler) ScheduleAfter(d time.Duration, fn func()) Handle {
	s.next++
	s.pending = append(s.pending, pendingCall{handle: s.next, at: s.now + d, fn: fn})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].at < s.pending[j].at
	})
	return s.next
}

// Cancel drops a pending callback. Unknown handles are ignored.
func (s *ManualScheduler) Cancel(h Handle) {
	for i, p := range s.pending {
		if p.handle == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, including ones scheduled by earlier callbacks.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for len(s.pending) > 0 && s.pending[0].at <= target {
		s.RunNext()
	}
	s.now = target
}

// RunNext jumps to the earliest pending callback and runs it. It reports
// false when nothing is pending.
func (s *ManualScheduler) RunNext() bool {
	if len(s.pending) == 0 {
		return false
	}
	p := s.pending[0]
	s.pending = s.pending[1:]
	if p.at > s.now {
		s.now = p.at
	}
	p.fn()
	return true
}

// Pending returns the number of callbacks waiting to run.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Now returns the current virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}
