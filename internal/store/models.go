package store

// Setting keys.
const (
	KeyPomodoroWork = "pomodoro_work" // seconds
	KeyDailyGoal    = "daily_goal"    // seconds
	KeyWeekStart    = "week_start"    // monday or sunday
)

type Setting struct {
	Key   string
	Value string
}
