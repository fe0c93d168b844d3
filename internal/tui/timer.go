package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/clock"
	"github.com/sadopc/pomo/internal/session"
)

const (
	minuteStep = 5
	hourStep   = 5
)

type timerModel struct {
	engine *session.Engine
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formHours   *string
	formMinutes *string
}

func newTimerModel(e *session.Engine) timerModel {
	h, m := "", ""
	return timerModel{
		engine:      e,
		formHours:   &h,
		formMinutes: &m,
	}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(km, keys.Start):
		return t, t.start()
	case key.Matches(km, keys.Pause):
		if t.engine.State().Running {
			t.engine.Pause()
			return t, statusCmd("Paused", false)
		}
		return t, t.start()
	case key.Matches(km, keys.Reset):
		t.engine.Reset()
		return t, statusCmd("Reset", false)
	case key.Matches(km, keys.Skip):
		t.engine.Skip()
		return t, nil
	case key.Matches(km, keys.MinutesUp):
		return t, t.adjust(clock.FieldMinutes, minuteStep)
	case key.Matches(km, keys.MinutesDown):
		return t, t.adjust(clock.FieldMinutes, -minuteStep)
	case key.Matches(km, keys.MinuteUp):
		return t, t.adjust(clock.FieldMinutes, 1)
	case key.Matches(km, keys.MinuteDown):
		return t, t.adjust(clock.FieldMinutes, -1)
	case key.Matches(km, keys.HoursUp):
		return t, t.adjust(clock.FieldHours, 1)
	case key.Matches(km, keys.HoursDown):
		return t, t.adjust(clock.FieldHours, -1)
	case key.Matches(km, keys.HoursUp5):
		return t, t.adjust(clock.FieldHours, hourStep)
	case key.Matches(km, keys.HoursDown5):
		return t, t.adjust(clock.FieldHours, -hourStep)
	case key.Matches(km, keys.Edit):
		return t.showForm()
	}
	return t, nil
}

func (t timerModel) start() tea.Cmd {
	if err := t.engine.Start(); err != nil {
		return statusCmd(errorText(err), true)
	}
	return nil
}

func (t timerModel) adjust(f clock.Field, delta int) tea.Cmd {
	if err := t.engine.Adjust(f, delta); err != nil {
		return statusCmd(errorText(err), true)
	}
	return nil
}

func (t timerModel) showForm() (timerModel, tea.Cmd) {
	st := t.engine.State()
	if st.Running {
		return t, statusCmd(errorText(clock.ErrRunning), true)
	}
	*t.formHours = strconv.Itoa(st.Remaining.Hours)
	*t.formMinutes = strconv.Itoa(st.Remaining.Minutes)

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Hours").Value(t.formHours).Validate(validateField(0, -1)),
			huh.NewInput().Title("Minutes").Value(t.formMinutes).Validate(validateField(0, 59)),
		).Title("Set countdown"),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t timerModel) updateForm(msg tea.Msg) (timerModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		return t, t.applyForm()
	}

	return t, cmd
}

func (t timerModel) applyForm() tea.Cmd {
	h, _ := strconv.Atoi(strings.TrimSpace(*t.formHours))
	m, _ := strconv.Atoi(strings.TrimSpace(*t.formMinutes))
	c := clock.Countdown{Hours: h, Minutes: m}
	if err := c.Validate(); err != nil {
		return statusCmd(errorText(err), true)
	}
	if err := t.engine.SetCountdown(h, m, 0); err != nil {
		return statusCmd(errorText(err), true)
	}
	return statusCmd("Countdown set to "+c.String(), false)
}

// validateField returns a huh validator accepting integers in [lo, hi].
// A negative hi means no upper bound.
func validateField(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || (hi >= 0 && n > hi) {
			if hi < 0 {
				return fmt.Errorf("must be at least %d", lo)
			}
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func errorText(err error) string {
	var verr *clock.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Cannot use countdown: " + verr.Error()
	case errors.Is(err, clock.ErrRunning):
		return "Pause the timer first"
	}
	return fmt.Sprintf("Error: %v", err)
}

func (t timerModel) view(now time.Time) string {
	w := t.width - 4
	st := t.engine.State()

	if t.formActive && t.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Timer"), "", t.form.View()),
		)
	}

	breakMode := st.Mode == session.ModeBreak
	modeLabel := lipgloss.NewStyle().Bold(true).Foreground(modeColor(breakMode)).Render(st.Mode.String())
	dateLine := mutedStyle.Render(now.Format("Monday, 02 January 2006"))

	style := idleClockStyle
	switch {
	case st.Running && breakMode:
		style = breakClockStyle
	case st.Running:
		style = workClockStyle
	}
	// An idle zero countdown shows the wall clock instead.
	idle := !st.Running && !st.Armed && st.Remaining.IsZero()
	digits := st.Remaining.String()
	if idle {
		digits = now.Format("15:04:05")
	}
	countdown := style.Width(w - 6).Render(bigDigits(digits))

	var stateLine string
	switch {
	case idle:
		stateLine = mutedStyle.Render("clock")
	case st.Running:
		stateLine = successStyle.Render("● running")
	case st.Armed:
		stateLine = warningStyle.Render("⏸ paused")
	default:
		stateLine = mutedStyle.Render("ready")
	}

	var controls string
	switch {
	case st.Running:
		controls = mutedStyle.Render("space: pause  r: reset  n: skip")
	case st.Armed:
		controls = mutedStyle.Render("space: resume  r: reset  n: skip  +/- [/]: minutes  </> {/}: hours")
	default:
		controls = mutedStyle.Render("s: start  i: set time  +/- [/]: minutes  </> {/}: hours  n: skip")
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			modeLabel,
			dateLine,
			"",
			countdown,
			"",
			stateLine,
			"",
			controls,
		),
	)
}

var glyphs = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// bigDigits renders s five rows tall. Unknown runes are skipped.
func bigDigits(s string) string {
	var rows [5][]string
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	lines := make([]string, len(rows))
	for i, parts := range rows {
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}
