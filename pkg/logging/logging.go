// Package logging wires zerolog for dotkeeper: a console writer on stderr
// plus an append-only log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is created under $XDG_STATE_HOME/dotkeeper.
const LogFileName = "dotkeeper.log"

var verbosityLevels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

// LevelFor maps the number of -v flags to a level. Warnings are always
// shown; anything past -vvv stays at trace.
func LevelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(verbosityLevels) {
		verbosity = len(verbosityLevels) - 1
	}
	return verbosityLevels[verbosity]
}

// SetupLogger installs the global logger for verbosity and returns the log
// file path, or "" when the file could not be opened and only stderr is
// written.
func SetupLogger(verbosity int) string {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}

	path := LogFilePath()
	file, fileErr := openLogFile(path)
	if fileErr == nil {
		out = zerolog.MultiLevelWriter(out, file)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Log file unavailable, logging to stderr only")
		return ""
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
	return path
}

// GetLogger returns the global logger tagged with component.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath is where SetupLogger appends. XDG variables are re-read on
// every call.
func LogFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, "dotkeeper", LogFileName)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs that a command began and returns the function
// that logs its completion and duration.
func LogOperationStart(logger zerolog.Logger, command string) func() {
	start := time.Now()
	logger.Debug().Str("command", command).Msgf("%s started", command)

	return func() {
		logger.Debug().
			Str("command", command).
			Dur("duration", time.Since(start)).
			Msgf("%s finished", command)
	}
}
