package clock

import (
	"errors"
	"fmt"
)

// ErrRunning is returned when the countdown is edited while the clock runs.
var ErrRunning = errors.New("countdown is running")

// ValidationError reports a countdown that cannot be armed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
