package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sadopc/pomo/internal/clock"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// WorkDuration returns the configured work countdown.
func (s *Store) WorkDuration() (clock.Countdown, error) {
	secs, err := s.intSetting(KeyPomodoroWork)
	if err != nil {
		return clock.Countdown{}, err
	}
	c := clock.FromDuration(time.Duration(secs) * time.Second)
	if err := c.Validate(); err != nil {
		return clock.Countdown{}, fmt.Errorf("setting %q: %w", KeyPomodoroWork, err)
	}
	return c, nil
}

// SetWorkDuration stores the work countdown after validating it.
func (s *Store) SetWorkDuration(c clock.Countdown) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.SetSetting(KeyPomodoroWork, strconv.Itoa(int(c.Total()/time.Second)))
}

// DailyGoal returns the daily focus goal.
func (s *Store) DailyGoal() (time.Duration, error) {
	secs, err := s.intSetting(KeyDailyGoal)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// WeekStart returns the first day of the reporting week.
func (s *Store) WeekStart() time.Weekday {
	v, err := s.GetSetting(KeyWeekStart)
	if err == nil && v == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

func (s *Store) intSetting(key string) (int, error) {
	v, err := s.GetSetting(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("setting %q: %w", key, err)
	}
	return n, nil
}
