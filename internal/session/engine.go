// Package session implements the work/break controller that drives the
// countdown clock and writes finished or abandoned work sessions to the
// record log.
package session

import (
	"time"

	"github.com/sadopc/pomo/internal/clock"
	"github.com/sadopc/pomo/internal/logger"
	"github.com/sadopc/pomo/internal/records"
)

// Mode is the kind of session being counted down.
type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
)

func (m Mode) String() string {
	if m == ModeBreak {
		return "Break Session"
	}
	return "Work Session"
}

// Default durations.
var (
	DefaultWorkDuration = clock.Countdown{Minutes: 25}
	BreakDuration       = clock.Countdown{Minutes: 5}
)

// State is a read-only view of the engine.
type State struct {
	Mode        Mode
	Remaining   clock.Countdown
	Running     bool
	Armed       bool   // a countdown was started and has not finished, been reset or skipped
	Snapshot    string // work countdown captured when armed
	WorkDefault clock.Countdown
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithWorkDuration sets the work default. Invalid durations are ignored.
func WithWorkDuration(c clock.Countdown) Option {
	return func(e *Engine) {
		if c.Validate() == nil {
			e.workDefault = c
		}
	}
}

// WithTickInterval changes how often the clock ticks.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.clockOpts = append(e.clockOpts, clock.WithInterval(d))
	}
}

// Engine owns the countdown clock, the current mode and the record log.
// All methods, and all scheduler callbacks, must run on one goroutine.
type Engine struct {
	clock   *clock.Clock
	records *records.Log
	log     *logger.Logger

	clockOpts   []clock.Option
	mode        Mode
	workDefault clock.Countdown

	armed    bool
	snapshot string
	logged   bool // completed guard for the armed work countdown

	subscribers []func(Event)
}

// New creates an engine in work mode showing the work default.
func New(sched clock.Scheduler, recs *records.Log, opts ...Option) *Engine {
	e := &Engine{
		records:     recs,
		log:         logger.New(logger.LevelOff, nil),
		mode:        ModeWork,
		workDefault: DefaultWorkDuration,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.clock = clock.NewClock(sched, e.clockOpts...)
	e.clock.OnTick(e.handleTick)
	e.clock.OnExpire(e.handleExpire)
	e.setRemaining(e.workDefault)
	return e
}

// Subscribe registers fn for every engine event.
func (e *Engine) Subscribe(fn func(Event)) {
	e.subscribers = append(e.subscribers, fn)
}

// Records returns the record log.
func (e *Engine) Records() *records.Log { return e.records }

// State returns the current engine state.
func (e *Engine) State() State {
	return State{
		Mode:        e.mode,
		Remaining:   e.clock.Remaining(),
		Running:     e.clock.Running(),
		Armed:       e.armed,
		Snapshot:    e.snapshot,
		WorkDefault: e.workDefault,
	}
}

// Start runs the countdown. A paused countdown resumes with its snapshot
// intact. Otherwise the countdown is validated, snapshotted and armed. A
// *clock.ValidationError leaves the engine untouched.
func (e *Engine) Start() error {
	if e.clock.Running() {
		return nil
	}
	if err := e.clock.Remaining().Validate(); err != nil {
		return err
	}
	if e.armed {
		e.log.Debug("resume %s at %s", e.mode, e.clock.Remaining())
		e.clock.Start()
		return nil
	}
	e.arm()
	return nil
}

// Pause stops the countdown without finishing the session.
func (e *Engine) Pause() {
	if !e.clock.Running() {
		return
	}
	e.clock.Stop()
	e.log.Debug("pause %s at %s", e.mode, e.clock.Remaining())
}

// Reset stops the countdown and restores the work default. An armed work
// session that was not logged yet is logged as incomplete. Resetting a
// break returns to work without logging.
func (e *Engine) Reset() {
	prev := e.mode
	e.clock.Stop()
	if prev == ModeWork {
		e.recordIncomplete()
	}
	e.disarm()

	if prev == ModeBreak {
		e.switchMode(ModeWork)
		return
	}
	e.setRemaining(e.workDefault)
	e.log.Debug("reset work countdown to %s", e.workDefault)
}

// Skip ends the current session early. Leaving work logs the session as
// incomplete and starts a break; leaving a break returns to an idle work
// countdown.
func (e *Engine) Skip() {
	e.clock.Stop()
	if e.mode == ModeWork {
		e.recordIncomplete()
		e.disarm()
		e.switchMode(ModeBreak)
		e.arm()
		return
	}
	e.disarm()
	e.switchMode(ModeWork)
}

// SetCountdown replaces the remaining time, clamping each field. It fails
// with clock.ErrRunning while the countdown runs.
func (e *Engine) SetCountdown(hours, minutes, seconds int) error {
	return e.clock.Set(hours, minutes, seconds)
}

// Adjust steps hours or minutes while the countdown is not running.
func (e *Engine) Adjust(f clock.Field, delta int) error {
	return e.clock.Adjust(f, delta)
}

// SetWorkDefault changes the work default. When idle in work mode with
// nothing armed the new default is shown immediately.
func (e *Engine) SetWorkDefault(c clock.Countdown) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e.workDefault = c
	if e.mode == ModeWork && !e.armed && !e.clock.Running() {
		e.setRemaining(c)
	}
	e.log.Info("work default set to %s", c)
	return nil
}

// RemoveRecord deletes a record by key. Unknown keys are ignored.
func (e *Engine) RemoveRecord(key string) (bool, error) {
	ok, err := e.records.Remove(key)
	if err != nil {
		e.log.Error("remove record %s: %v", key, err)
	}
	return ok, err
}

func (e *Engine) arm() {
	e.armed = true
	e.logged = false
	if e.mode == ModeWork {
		e.snapshot = e.clock.Remaining().String()
	} else {
		e.snapshot = ""
	}
	e.log.Info("start %s (%s)", e.mode, e.clock.Remaining())
	e.clock.Start()
}

func (e *Engine) disarm() {
	e.armed = false
	e.snapshot = ""
}

func (e *Engine) switchMode(m Mode) {
	e.mode = m
	if m == ModeBreak {
		e.setRemaining(BreakDuration)
	} else {
		e.setRemaining(e.workDefault)
	}
	e.log.Info("switched to %s", m)
	e.emit(Event{Type: EventModeChange})
}

// setRemaining loads c into the stopped clock.
func (e *Engine) setRemaining(c clock.Countdown) {
	if err := e.clock.Set(c.Hours, c.Minutes, c.Seconds); err != nil {
		e.log.Error("set countdown %s: %v", c, err)
	}
}

func (e *Engine) recordIncomplete() {
	if e.mode != ModeWork || !e.armed || e.logged {
		return
	}
	e.record(false)
}

func (e *Engine) record(complete bool) {
	e.logged = true
	rec, err := e.records.Append(e.snapshot, complete)
	e.log.Info("recorded %s session %s complete=%t", rec.Countdown, rec.Key, complete)
	e.emit(Event{Type: EventRecorded, Record: &rec})
	if err != nil {
		e.log.Error("save records: %v", err)
		e.emit(Event{Type: EventPersistFailed, Record: &rec, Err: err})
	}
}

func (e *Engine) handleTick(clock.Countdown) {
	e.emit(Event{Type: EventTick})
}

func (e *Engine) handleExpire() {
	finished := e.mode
	e.emit(Event{Type: EventExpired})

	if finished == ModeWork {
		if e.armed && !e.logged {
			e.record(true)
		}
		e.disarm()
		e.switchMode(ModeBreak)
		e.arm()
		return
	}
	e.disarm()
	e.switchMode(ModeWork)
}

func (e *Engine) emit(ev Event) {
	ev.Mode = e.mode
	ev.Remaining = e.clock.Remaining()
	ev.Running = e.clock.Running()
	for _, fn := range e.subscribers {
		fn(ev)
	}
}
