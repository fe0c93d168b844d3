// Package logger provides the leveled logger used by the engine and the TUI.
// The terminal belongs to the TUI while it runs, so output normally goes to
// a file. The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

var levelNames = map[Level]string{
	LevelOff:     "off",
	LevelNormal:  "normal",
	LevelVerbose: "verbose",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel reads a level name as used by POMO_LOG_LEVEL. "quiet" and
// "debug" are accepted as aliases for off and verbose.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet":
		return LevelOff, nil
	case "normal", "info", "":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	}
	return LevelNormal, fmt.Errorf("unknown log level %q", s)
}

// Logger writes "date time [TAG] message" lines at or below its level.
type Logger struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level: level,
		out:   log.New(out, "", log.Ldate|log.Ltime),
	}
}

// OpenFile opens (or creates) path for appending and returns a logger
// writing to it along with the file so the caller can close it.
func OpenFile(level Level, path string) (*Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f, nil
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs a message only visible in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	l.logf(LevelVerbose, "[DBG] ", format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(LevelNormal, "[INF] ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(LevelNormal, "[WRN] ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(LevelNormal, "[ERR] ", format, args...)
}

func (l *Logger) logf(at Level, tag, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level < at {
		return
	}
	l.out.Output(3, tag+fmt.Sprintf(format, args...))
}
