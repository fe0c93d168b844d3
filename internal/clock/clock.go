package clock

import "time"

// State is the clock's run state.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Option configures a Clock.
type Option func(*Clock)

// WithInterval sets the time between ticks. Each tick removes one second
// from the countdown regardless of the interval.
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// Clock counts a Countdown down on a Scheduler. It never blocks: running
// means a tick callback is registered, pausing cancels it.
type Clock struct {
	sched    Scheduler
	interval time.Duration

	remaining Countdown
	state     State
	handle    Handle

	onTick   func(Countdown)
	onExpire func()
}

// NewClock returns an idle clock at zero.
func NewClock(sched Scheduler, opts ...Option) *Clock {
	c := &Clock{
		sched:    sched,
		interval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnTick registers fn to run after every tick with the new remaining time.
func (c *Clock) OnTick(fn func(Countdown)) { c.onTick = fn }

// OnExpire registers fn to run when the countdown reaches zero. The clock
// is already idle when fn runs, so fn may restart it.
func (c *Clock) OnExpire(fn func()) { c.onExpire = fn }

// Start moves the clock to running. Starting a running clock does nothing.
func (c *Clock) Start() {
	if c.state == StateRunning {
		return
	}
	c.state = StateRunning
	c.schedule()
}

// Stop pauses the clock without firing expiry. The remaining time is kept.
func (c *Clock) Stop() {
	if c.state != StateRunning {
		return
	}
	if c.handle != 0 {
		c.sched.Cancel(c.handle)
		c.handle = 0
	}
	c.state = StateIdle
}

// Set replaces the remaining time, clamping each field.
func (c *Clock) Set(hours, minutes, seconds int) error {
	if c.state == StateRunning {
		return ErrRunning
	}
	c.remaining = New(hours, minutes, seconds)
	return nil
}

// Adjust steps one field of the remaining time. See Countdown.Adjust.
func (c *Clock) Adjust(f Field, delta int) error {
	if c.state == StateRunning {
		return ErrRunning
	}
	c.remaining = c.remaining.Adjust(f, delta)
	return nil
}

// Remaining returns the time left.
func (c *Clock) Remaining() Countdown { return c.remaining }

// Running reports whether a tick is scheduled.
func (c *Clock) Running() bool { return c.state == StateRunning }

// State returns the current run state.
func (c *Clock) State() State { return c.state }

func (c *Clock) schedule() {
	c.handle = c.sched.ScheduleAfter(c.interval, c.tick)
}

func (c *Clock) tick() {
	c.handle = 0
	if c.state != StateRunning {
		return
	}

	next, expired := c.remaining.Tick()
	c.remaining = next
	if c.onTick != nil {
		c.onTick(next)
		if c.state != StateRunning {
			return
		}
	}

	if expired {
		c.state = StateIdle
		if c.onExpire != nil {
			c.onExpire()
		}
		return
	}
	c.schedule()
}
