package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/clock"
	"github.com/sadopc/pomo/internal/records"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) App {
	t.Helper()
	recs, err := records.Open("")
	if err != nil {
		t.Fatal(err)
	}
	app := NewApp(newTestStore(t), recs, nil)
	app.exportDir = t.TempDir()
	return app
}

func press(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return next
}

// fireNext delivers the tick for the oldest pending handle.
func fireNext(t *testing.T, a App) App {
	t.Helper()
	var next clock.Handle
	for h := range a.sched.pending {
		if next == 0 || h < next {
			next = h
		}
	}
	if next == 0 {
		t.Fatal("no pending tick")
	}
	return step(t, a, firedMsg{handle: next})
}

// ============================================================
// Scheduler
// ============================================================

func TestTeaSchedulerFire(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	h1 := s.ScheduleAfter(time.Second, func() { calls++ })
	h2 := s.ScheduleAfter(time.Second, func() { calls += 10 })
	if h1 == 0 || h2 <= h1 {
		t.Fatalf("handles should increase from 1, got %d and %d", h1, h2)
	}

	if !s.fire(h1) {
		t.Fatal("fire should run a pending callback")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if s.fire(h1) {
		t.Fatal("a callback must run only once")
	}
}

func TestTeaSchedulerCancel(t *testing.T) {
	s := newTeaScheduler()
	ran := false
	h := s.ScheduleAfter(time.Second, func() { ran = true })
	s.Cancel(h)
	if s.fire(h) || ran {
		t.Fatal("cancelled callback should be dropped")
	}
	s.Cancel(999) // unknown handle is a no-op
}

func TestTeaSchedulerDrain(t *testing.T) {
	s := newTeaScheduler()
	if s.drain() != nil {
		t.Fatal("empty queue should drain to nil")
	}
	s.ScheduleAfter(time.Millisecond, func() {})
	if s.drain() == nil {
		t.Fatal("expected a tick command")
	}
	if s.drain() != nil {
		t.Fatal("queue should be empty after drain")
	}
}

// ============================================================
// Timer view driving the engine
// ============================================================

func TestStartKeyRunsEngine(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("s"))

	st := a.engine.State()
	if !st.Running || !st.Armed {
		t.Fatalf("engine should be running and armed: %+v", st)
	}
	if st.Snapshot != "00:25:00" {
		t.Fatalf("snapshot = %q, want 00:25:00", st.Snapshot)
	}
	if len(a.sched.pending) != 1 {
		t.Fatalf("expected one pending tick, got %d", len(a.sched.pending))
	}

	a = fireNext(t, a)
	if got := a.engine.State().Remaining.String(); got != "00:24:59" {
		t.Fatalf("remaining = %s, want 00:24:59", got)
	}
}

func TestWorkSessionExpiresIntoBreak(t *testing.T) {
	a := newTestApp(t)
	if err := a.engine.SetCountdown(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	a = step(t, a, press("s"))
	a = fireNext(t, a)
	a = fireNext(t, a)

	st := a.engine.State()
	if st.Mode != session.ModeBreak || !st.Running {
		t.Fatalf("expected running break, got %+v", st)
	}
	if st.Remaining != (clock.Countdown{Minutes: 5}) {
		t.Fatalf("break countdown = %s, want 00:05:00", st.Remaining)
	}

	list := a.engine.Records().List()
	if len(list) != 1 || list[0].Countdown != "00:00:02" || !list[0].Complete {
		t.Fatalf("unexpected records: %+v", list)
	}
	want := "Logged 00:00:02 session as Completed. Break time"
	if a.status != want {
		t.Fatalf("status = %q, want %q", a.status, want)
	}
}

// runCmd executes cmd and any batched commands it expands into.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}

func TestExpiryRingsBellOnce(t *testing.T) {
	a := newTestApp(t)
	var bell strings.Builder
	a.bell = &bell
	a = step(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	if err := a.engine.SetCountdown(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	a = step(t, a, press("s"))

	var h clock.Handle
	for k := range a.sched.pending {
		h = k
	}
	a, _ = a.update(firedMsg{handle: h})
	runCmd(a.handleEvents())
	if bell.String() != "\a" {
		t.Fatalf("bell output = %q, want one BEL", bell.String())
	}
	if strings.Contains(a.status, "\a") {
		t.Fatalf("status must not carry the bell: %q", a.status)
	}

	// Break ticks re-render the footer without ringing again.
	a = fireNext(t, a)
	a = fireNext(t, a)
	if strings.Contains(a.renderFooter(), "\a") || strings.Contains(a.View(), "\a") {
		t.Fatal("rendered output must not contain BEL")
	}
	runCmd(a.handleEvents())
	if bell.String() != "\a" {
		t.Fatalf("bell rang again: %q", bell.String())
	}
}

func TestPauseDropsPendingTick(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("s"))
	var h clock.Handle
	for k := range a.sched.pending {
		h = k
	}

	a = step(t, a, press(" "))
	if a.engine.State().Running {
		t.Fatal("space should pause")
	}

	a = step(t, a, firedMsg{handle: h})
	if got := a.engine.State().Remaining.String(); got != "00:25:00" {
		t.Fatalf("stale tick changed the countdown to %s", got)
	}

	a = step(t, a, press(" "))
	st := a.engine.State()
	if !st.Running || st.Snapshot != "00:25:00" {
		t.Fatalf("space should resume with the snapshot kept: %+v", st)
	}
}

func TestResetLogsIncompleteOnce(t *testing.T) {
	a := newTestApp(t)
	a.engine.SetCountdown(0, 10, 0)
	a = step(t, a, press("s"))
	a = fireNext(t, a)
	a = fireNext(t, a)
	a = fireNext(t, a)

	a = step(t, a, press("r"))
	a = step(t, a, press("r"))

	list := a.engine.Records().List()
	if len(list) != 1 || list[0].Countdown != "00:10:00" || list[0].Complete {
		t.Fatalf("unexpected records: %+v", list)
	}
	st := a.engine.State()
	if st.Mode != session.ModeWork || st.Remaining != (clock.Countdown{Minutes: 25}) {
		t.Fatalf("unexpected state after reset: %+v", st)
	}
}

func TestSkipKeyStartsBreak(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("s"))
	a = step(t, a, press("n"))

	st := a.engine.State()
	if st.Mode != session.ModeBreak || !st.Running {
		t.Fatalf("expected running break: %+v", st)
	}
	if a.engine.Records().Len() != 1 {
		t.Fatal("skipping an armed work session should log it")
	}

	a = step(t, a, press("n"))
	st = a.engine.State()
	if st.Mode != session.ModeWork || st.Running {
		t.Fatalf("skipping a break should return to idle work: %+v", st)
	}
	if a.engine.Records().Len() != 1 {
		t.Fatal("breaks are never logged")
	}
}

func TestStartRejectsZeroCountdown(t *testing.T) {
	a := newTestApp(t)
	a.engine.SetCountdown(0, 0, 0)

	_, cmd := a.timer.update(press("s"))
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
	if a.engine.State().Armed {
		t.Fatal("failed start must not arm the engine")
	}
}

func TestAdjustKeys(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("+"))
	if got := a.engine.State().Remaining.String(); got != "00:30:00" {
		t.Fatalf("after + got %s, want 00:30:00", got)
	}
	a = step(t, a, press(">"))
	if got := a.engine.State().Remaining.String(); got != "01:30:00" {
		t.Fatalf("after > got %s, want 01:30:00", got)
	}
	a = step(t, a, press("]"))
	a = step(t, a, press("["))
	a = step(t, a, press("-"))
	a = step(t, a, press("<"))
	if got := a.engine.State().Remaining.String(); got != "00:25:00" {
		t.Fatalf("after - and < got %s, want 00:25:00", got)
	}
}

func TestHourStepKeys(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("}"))
	if got := a.engine.State().Remaining.String(); got != "05:25:00" {
		t.Fatalf("after } got %s, want 05:25:00", got)
	}
	a = step(t, a, press("{"))
	if got := a.engine.State().Remaining.String(); got != "00:25:00" {
		t.Fatalf("after { got %s, want 00:25:00", got)
	}
	a = step(t, a, press("{"))
	if got := a.engine.State().Remaining.String(); got != "00:25:00" {
		t.Fatalf("hours should floor at zero, got %s", got)
	}
}

func TestIdleZeroCountdownShowsWallClock(t *testing.T) {
	a := newTestApp(t)
	a.timer.setSize(80, 30)
	now := time.Date(2026, 10, 19, 12, 34, 56, 0, time.Local)
	row := func(s string) string {
		return strings.TrimSpace(strings.Split(bigDigits(s), "\n")[1])
	}

	if err := a.engine.SetCountdown(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	view := a.timer.view(now)
	if !strings.Contains(view, row("12:34:56")) || !strings.Contains(view, "clock") {
		t.Fatalf("idle zero countdown should show the wall clock:\n%s", view)
	}

	if err := a.engine.SetCountdown(0, 25, 0); err != nil {
		t.Fatal(err)
	}
	view = a.timer.view(now)
	if strings.Contains(view, row("12:34:56")) || !strings.Contains(view, "ready") {
		t.Fatalf("a set countdown should hide the wall clock:\n%s", view)
	}
}

func TestAdjustWhileRunningReportsError(t *testing.T) {
	a := newTestApp(t)
	a.engine.Start()

	_, cmd := a.timer.update(press("+"))
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isError || msg.text != "Pause the timer first" {
		t.Fatalf("unexpected status: %#v", msg)
	}
}

func TestApplyForm(t *testing.T) {
	a := newTestApp(t)
	*a.timer.formHours = "1"
	*a.timer.formMinutes = "15"
	msg := a.timer.applyForm()().(statusMsg)
	if msg.isError {
		t.Fatalf("unexpected error: %s", msg.text)
	}
	if got := a.engine.State().Remaining.String(); got != "01:15:00" {
		t.Fatalf("remaining = %s, want 01:15:00", got)
	}

	*a.timer.formHours = "0"
	*a.timer.formMinutes = "0"
	msg = a.timer.applyForm()().(statusMsg)
	if !msg.isError {
		t.Fatal("zero duration should be rejected")
	}
	if got := a.engine.State().Remaining.String(); got != "01:15:00" {
		t.Fatalf("rejected form changed the countdown to %s", got)
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		in     string
		lo, hi int
		ok     bool
	}{
		{"0", 0, 59, true},
		{"59", 0, 59, true},
		{"60", 0, 59, false},
		{"-1", 0, 59, false},
		{"abc", 0, 59, false},
		{" 12 ", 0, 59, true},
		{"500", 0, -1, true},
		{"0", 1, -1, false},
	}
	for _, tt := range tests {
		err := validateField(tt.lo, tt.hi)(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("validateField(%d, %d)(%q) = %v, want ok=%t", tt.lo, tt.hi, tt.in, err, tt.ok)
		}
	}
}

func TestErrorText(t *testing.T) {
	if got := errorText(clock.ErrRunning); got != "Pause the timer first" {
		t.Fatalf("got %q", got)
	}
	verr := &clock.ValidationError{Field: "duration", Reason: "must be greater than zero"}
	if got := errorText(verr); !strings.Contains(got, "invalid duration") {
		t.Fatalf("got %q", got)
	}
	if got := errorText(errors.New("boom")); got != "Error: boom" {
		t.Fatalf("got %q", got)
	}
}

func TestBigDigits(t *testing.T) {
	out := bigDigits("01:23:45")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if len([]rune(lines[i])) != len([]rune(lines[0])) {
			t.Fatalf("row %d has a different width", i)
		}
	}
}

// ============================================================
// Engine events
// ============================================================

func TestPersistFailureShownInStatus(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	recs, _ := records.Open(filepath.Join(blocker, "records.json"))
	a := NewApp(newTestStore(t), recs, nil)

	a.engine.SetCountdown(0, 0, 1)
	a = step(t, a, press("s"))
	a = fireNext(t, a)

	if !a.statusErr || !strings.Contains(a.status, "Could not save records") {
		t.Fatalf("status = %q (err=%t)", a.status, a.statusErr)
	}
	if recs.Len() != 1 {
		t.Fatal("record should stay in memory after a failed save")
	}
}

// ============================================================
// History
// ============================================================

func TestHistoryNewestFirstAndDelete(t *testing.T) {
	a := newTestApp(t)
	recs := a.engine.Records()
	first, _ := recs.Append("00:25:00", true)
	second, _ := recs.Append("00:10:00", false)

	h := a.history
	h, _ = h.update(h.refresh()())
	if len(h.records) != 2 || h.records[0].Key != second.Key {
		t.Fatalf("history should list newest first: %+v", h.records)
	}

	h, _ = h.update(press("j"))
	if h.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", h.cursor)
	}
	cmd := h.deleteSelected()
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if _, ok := recs.Get(first.Key); ok {
		t.Fatal("selected record should be deleted")
	}
	if recs.Len() != 1 {
		t.Fatalf("len = %d, want 1", recs.Len())
	}
}

func TestHistoryDeleteEmpty(t *testing.T) {
	a := newTestApp(t)
	if a.history.deleteSelected() != nil {
		t.Fatal("delete on empty history should do nothing")
	}
}

// ============================================================
// Reports
// ============================================================

func TestReportsDateRange(t *testing.T) {
	a := newTestApp(t)
	r := a.reports
	// Wednesday
	r.now = func() time.Time { return time.Date(2026, 3, 18, 15, 0, 0, 0, time.Local) }

	from, to := r.dateRange()
	if from.Format("2006-01-02") != "2026-03-12" || to.Format("2006-01-02") != "2026-03-19" {
		t.Fatalf("daily range = %s..%s", from, to)
	}

	r.mode = reportWeekly
	from, _ = r.dateRange()
	if from.Format("2006-01-02") != "2026-03-16" {
		t.Fatalf("monday week start = %s", from.Format("2006-01-02"))
	}
	r.weekStart = time.Sunday
	from, _ = r.dateRange()
	if from.Format("2006-01-02") != "2026-03-15" {
		t.Fatalf("sunday week start = %s", from.Format("2006-01-02"))
	}
	r.offset = 1
	from, _ = r.dateRange()
	if from.Format("2006-01-02") != "2026-03-08" {
		t.Fatalf("previous week start = %s", from.Format("2006-01-02"))
	}
}

func TestReportsRefreshSummarizes(t *testing.T) {
	a := newTestApp(t)
	a.engine.Records().Append("00:25:00", true)
	a.engine.Records().Append("00:25:00", false)
	a.store.SetSetting(store.KeyWeekStart, "sunday")

	r := a.reports
	r.setSize(120, 40)
	msg := r.refresh()().(reportsDataMsg)
	if msg.weekStart != time.Sunday || msg.goal != 2*time.Hour {
		t.Fatalf("settings not loaded: %+v", msg)
	}
	r, _ = r.update(msg)
	if len(r.summaries) != 1 {
		t.Fatalf("expected one day, got %d", len(r.summaries))
	}
	s := r.summaries[0]
	if s.Completed != 1 || s.Incomplete != 1 || s.FocusSeconds != 1500 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if !strings.Contains(r.view(), "Total") {
		t.Fatal("report should render a total row")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSaveSettingsAppliesWorkDuration(t *testing.T) {
	a := newTestApp(t)
	s := a.settings
	*s.workMinutes = "50"
	*s.dailyGoal = "3"
	*s.weekStart = "sunday"

	if err := s.saveSettings(); err != nil {
		t.Fatal(err)
	}
	if got := a.engine.State().Remaining.String(); got != "00:50:00" {
		t.Fatalf("idle work countdown = %s, want 00:50:00", got)
	}
	val, _ := a.store.GetSetting(store.KeyPomodoroWork)
	if val != "3000" {
		t.Fatalf("pomodoro_work = %s, want 3000", val)
	}
	goal, _ := a.store.DailyGoal()
	if goal != 3*time.Hour {
		t.Fatalf("daily goal = %s", goal)
	}
	if a.store.WeekStart() != time.Sunday {
		t.Fatal("week start not saved")
	}
}

func TestSaveSettingsRejectsBadMinutes(t *testing.T) {
	a := newTestApp(t)
	s := a.settings
	*s.workMinutes = "0"
	*s.dailyGoal = "2"
	*s.weekStart = "monday"
	if err := s.saveSettings(); err == nil {
		t.Fatal("zero minutes should be rejected")
	}
	*s.workMinutes = "abc"
	if err := s.saveSettings(); err == nil {
		t.Fatal("non-numeric minutes should be rejected")
	}
}

func TestNewAppUsesStoredWorkDuration(t *testing.T) {
	st := newTestStore(t)
	st.SetWorkDuration(clock.Countdown{Minutes: 45})
	recs, _ := records.Open("")
	a := NewApp(st, recs, nil)
	if got := a.engine.State().Remaining.String(); got != "00:45:00" {
		t.Fatalf("remaining = %s, want 00:45:00", got)
	}
}

func TestSettingConversions(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{secsToMin, "1500", "25"},
		{secsToMin, "abc", "abc"},
		{secsToHours, "7200", "2.0"},
		{secsToHours, "5400", "1.5"},
		{hoursToSecs, "2", "7200"},
		{hoursToSecs, " 1.5 ", "5400"},
		{hoursToSecs, "x", "x"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Fatalf("conversion of %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSettingValue(t *testing.T) {
	if got := formatSettingValue(store.KeyPomodoroWork, "1500"); got != "25 min" {
		t.Fatalf("got %q", got)
	}
	if got := formatSettingValue(store.KeyDailyGoal, "7200"); got != "2.0 hours" {
		t.Fatalf("got %q", got)
	}
	if got := formatSettingValue(store.KeyWeekStart, "monday"); got != "monday" {
		t.Fatalf("got %q", got)
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{25 * time.Minute, "00:25:00"},
		{26*time.Hour + 61*time.Second, "26:01:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Fatalf("formatDuration(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
	if got := formatSeconds(1500); got != "00:25:00" {
		t.Fatalf("formatSeconds = %q", got)
	}
	if got := formatHours(5400); got != "1.5h" {
		t.Fatalf("formatHours = %q", got)
	}
}

// ============================================================
// Export
// ============================================================

func TestDoExport(t *testing.T) {
	a := newTestApp(t)
	a.engine.Records().Append("00:25:00", true)

	for i, ext := range []string{".csv", ".json", ".yaml"} {
		msg := a.doExport(i)()
		done, ok := msg.(exportDoneMsg)
		if !ok {
			t.Fatalf("format %d: expected exportDoneMsg, got %#v", i, msg)
		}
		if filepath.Ext(done.path) != ext {
			t.Fatalf("path %q, want extension %s", done.path, ext)
		}
		if _, err := os.Stat(done.path); err != nil {
			t.Fatalf("export file missing: %v", err)
		}
	}
}

func TestExportPickerNavigation(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, press("e"))
	if !a.exportPicking {
		t.Fatal("e should open the export picker")
	}
	for i := 0; i < 5; i++ {
		a = step(t, a, press("j"))
	}
	if a.exportCursor != len(exportFormats)-1 {
		t.Fatalf("cursor = %d, want %d", a.exportCursor, len(exportFormats)-1)
	}
	a = step(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.exportPicking {
		t.Fatal("esc should close the picker")
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	a := newTestApp(t)

	if a.activeView != viewTimer {
		t.Fatal("default view should be the timer")
	}
	if a.showHelp || a.exportPicking {
		t.Fatal("help and export picker should be hidden by default")
	}
	if a.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppTabKeys(t *testing.T) {
	a := newTestApp(t)
	want := []viewState{viewHistory, viewReports, viewSettings, viewTimer}
	for i, k := range []string{"2", "3", "4", "1"} {
		a = step(t, a, press(k))
		if a.activeView != want[i] {
			t.Fatalf("key %s: view = %d, want %d", k, a.activeView, want[i])
		}
	}
}

func TestAppViewStates(t *testing.T) {
	a := newTestApp(t)
	a = step(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	for _, v := range []viewState{viewTimer, viewHistory, viewReports, viewSettings} {
		a.activeView = v
		if a.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	a := newTestApp(t)
	a.width = 120
	a.height = 40

	header := a.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppFooterShowsCountdownOffTimerView(t *testing.T) {
	a := newTestApp(t)
	a.width = 160
	a.height = 40
	a.engine.Start()
	a.activeView = viewHistory

	footer := a.renderFooter()
	if !strings.Contains(footer, "Work Session 00:25:00") {
		t.Fatalf("footer should show the running countdown: %q", footer)
	}
}

func TestAppLoadingState(t *testing.T) {
	a := newTestApp(t)
	if out := a.View(); out != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", out)
	}
}

func TestAppStatusMessage(t *testing.T) {
	a := newTestApp(t)
	a.width = 160
	a.height = 40
	a = step(t, a, statusMsg{text: "test status"})

	if !strings.Contains(a.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test, just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := map[string]func() string{
		"activeTab":   func() string { return activeTabStyle.Render("test") },
		"inactiveTab": func() string { return inactiveTabStyle.Render("test") },
		"panel":       func() string { return panelStyle.Render("test") },
		"activePanel": func() string { return activePanelStyle.Render("test") },
		"workClock":   func() string { return workClockStyle.Render("test") },
		"breakClock":  func() string { return breakClockStyle.Render("test") },
		"idleClock":   func() string { return idleClockStyle.Render("test") },
		"title":       func() string { return titleStyle.Render("test") },
		"error":       func() string { return errorStyle.Render("test") },
		"highlight":   func() string { return highlightStyle.Render("test") },
		"footer":      func() string { return footerStyle.Render("test") },
	}
	for name, fn := range styles {
		if fn() == "" {
			t.Fatalf("style %q rendered empty", name)
		}
	}
}
