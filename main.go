// pomo is a terminal pomodoro timer that logs every work session.
//
// Usage:
//
//	pomo [-records file] [-db file] [-log-file file] [-verbose] [-quiet]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/sadopc/pomo/internal/logger"
	"github.com/sadopc/pomo/internal/records"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/tui"
)

const (
	// envHome overrides the directory holding the records, database and log.
	envHome = "POMO_HOME"
	// envLogLevel sets the base log level. -verbose and -quiet win over it.
	envLogLevel = "POMO_LOG_LEVEL"
)

func main() {
	_ = godotenv.Load()

	recordsPath := flag.String("records", "", "records file (default: $POMO_HOME/records.json or the user config dir)")
	dbPath := flag.String("db", "", "settings database (default: $POMO_HOME/pomo.db or the user config dir)")
	logFile := flag.String("log-file", "", "file to write logs to (default: pomo.log next to the records)")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	flag.Parse()

	if err := resolvePaths(recordsPath, dbPath, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logLevel, err := logger.ParseLevel(os.Getenv(envLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", envLogLevel, err)
	}
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// The TUI owns the terminal, so logs go to a file.
	log, f, err := logger.OpenFile(logLevel, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (logging disabled)\n", err)
		log = logger.New(logger.LevelOff, nil)
	} else {
		defer f.Close()
	}

	recs, err := records.Open(*recordsPath)
	if err != nil {
		log.Warn("load records: %v (starting with an empty log)", err)
	}
	log.Info("loaded %d records from %s", recs.Len(), *recordsPath)

	s, err := store.New(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	app := tui.NewApp(s, recs, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Error("run: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// resolvePaths fills the empty path flags from POMO_HOME or the user
// config directory.
func resolvePaths(recordsPath, dbPath, logFile *string) error {
	home := os.Getenv(envHome)

	if *recordsPath == "" {
		if home != "" {
			*recordsPath = filepath.Join(home, "records.json")
		} else {
			p, err := records.DefaultPath()
			if err != nil {
				return fmt.Errorf("records path: %w", err)
			}
			*recordsPath = p
		}
	}
	if *dbPath == "" {
		if home != "" {
			*dbPath = filepath.Join(home, "pomo.db")
		} else {
			p, err := store.DefaultDBPath()
			if err != nil {
				return fmt.Errorf("database path: %w", err)
			}
			*dbPath = p
		}
	}
	if *logFile == "" {
		*logFile = filepath.Join(filepath.Dir(*recordsPath), "pomo.log")
	}
	return nil
}
