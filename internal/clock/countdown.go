// Package clock implements the countdown value and the tick-driven clock
// that counts it down.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Countdown is a remaining duration split into base-60 fields.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

// Field selects which part of a Countdown Adjust changes.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
)

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// New builds a Countdown with every field clamped to its valid range.
func New(hours, minutes, seconds int) Countdown {
	return Countdown{Hours: hours, Minutes: minutes, Seconds: seconds}.Clamp()
}

// FromDuration converts d, truncated to whole seconds, into a Countdown.
// Negative durations yield the zero Countdown.
func FromDuration(d time.Duration) Countdown {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return Countdown{Hours: secs / 3600, Minutes: (secs % 3600) / 60, Seconds: secs % 60}
}

// Parse reads the "HH:MM:SS" form produced by String. Hours may have more
// than two digits.
func Parse(s string) (Countdown, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Countdown{}, fmt.Errorf("parse countdown %q: want HH:MM:SS", s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Countdown{}, fmt.Errorf("parse countdown %q: %w", s, err)
		}
		vals[i] = n
	}
	c := Countdown{Hours: vals[0], Minutes: vals[1], Seconds: vals[2]}
	if c.Hours < 0 || c.Minutes < 0 || c.Minutes > 59 || c.Seconds < 0 || c.Seconds > 59 {
		return Countdown{}, fmt.Errorf("parse countdown %q: field out of range", s)
	}
	return c, nil
}

// Total returns the countdown as a time.Duration.
func (c Countdown) Total() time.Duration {
	return time.Duration(c.Hours)*time.Hour +
		time.Duration(c.Minutes)*time.Minute +
		time.Duration(c.Seconds)*time.Second
}

// IsZero reports whether no time remains.
func (c Countdown) IsZero() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}

// String formats the countdown as HH:MM:SS.
func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// Clamp forces each field into its valid range.
func (c Countdown) Clamp() Countdown {
	c.Hours = max(c.Hours, 0)
	c.Minutes = min(max(c.Minutes, 0), 59)
	c.Seconds = min(max(c.Seconds, 0), 59)
	return c
}

// Validate checks that c can be armed: non-negative hours, minutes and
// seconds within 0-59, and a total greater than zero.
func (c Countdown) Validate() error {
	switch {
	case c.Hours < 0:
		return &ValidationError{Field: "hours", Reason: "must not be negative"}
	case c.Minutes < 0 || c.Minutes > 59:
		return &ValidationError{Field: "minutes", Reason: "must be between 0 and 59"}
	case c.Seconds < 0 || c.Seconds > 59:
		return &ValidationError{Field: "seconds", Reason: "must be between 0 and 59"}
	case c.IsZero():
		return &ValidationError{Field: "duration", Reason: "must be greater than zero"}
	}
	return nil
}

// Tick removes one second, borrowing from minutes and then hours. The
// second result reports expiry: it is true when the countdown was already
// zero (the countdown is returned unchanged) or has just reached zero.
func (c Countdown) Tick() (Countdown, bool) {
	if c.IsZero() {
		return c, true
	}
	switch {
	case c.Seconds > 0:
		c.Seconds--
	case c.Minutes > 0:
		c.Minutes--
		c.Seconds = 59
	case c.Hours > 0:
		c.Hours--
		c.Minutes = 59
		c.Seconds = 59
	}
	return c, c.IsZero()
}

// Adjust steps one field by delta.
//
// Hours never drop below zero. Raising minutes past 59 adds an hour and
// resets minutes to zero. Lowering minutes by n subtracts when at least n
// minutes remain and otherwise floors at zero; only when minutes are
// already zero is an hour borrowed. Lowering 3 minutes by 5 on 1:03 gives
// 1:00, not 0:58.
//
// Steps of an hour or more carry and borrow whole hours so minutes stay
// within 0..59, flooring the total at zero.
func (c Countdown) Adjust(f Field, delta int) Countdown {
	switch f {
	case FieldHours:
		c.Hours = max(c.Hours+delta, 0)
	case FieldMinutes:
		switch {
		case delta >= 60 || delta <= -60:
			total := max(c.Hours*60+c.Minutes+delta, 0)
			c.Hours, c.Minutes = total/60, total%60
			if total == 0 {
				c.Seconds = 0
			}
		case delta >= 0:
			c.Minutes += delta
			if c.Minutes > 59 {
				c.Hours++
				c.Minutes = 0
			}
		case c.Minutes >= -delta:
			c.Minutes += delta
		case c.Minutes > 0:
			c.Minutes = 0
		case c.Hours > 0:
			c.Hours--
			c.Minutes = 60 + delta
		default:
			c.Minutes = 0
		}
	}
	return c
}
