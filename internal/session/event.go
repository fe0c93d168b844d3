package session

import (
	"github.com/sadopc/pomo/internal/clock"
	"github.com/sadopc/pomo/internal/records"
)

// EventType defines the kind of Engine event.
type EventType string

const (
	EventTick          EventType = "tick"
	EventExpired       EventType = "expired"
	EventModeChange    EventType = "mode_change"
	EventRecorded      EventType = "recorded"
	EventPersistFailed EventType = "persist_failed"
)

// Event is delivered to subscribers on the scheduler's thread.
type Event struct {
	Type      EventType
	Mode      Mode
	Remaining clock.Countdown
	Running   bool
	Record    *records.Record // EventRecorded and EventPersistFailed
	Err       error           // EventPersistFailed
}
