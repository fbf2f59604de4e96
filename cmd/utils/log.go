package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// EnvLogLevel selects the debug log level when --debug is not given.
const EnvLogLevel = "LOG_LEVEL"

var (
	debugOnce   sync.Once
	debugFile   *os.File
	debugLogger *logrus.Logger
)

// LogRequested reports whether a log file should be opened: either --debug
// was given or LOG_LEVEL is set.
func LogRequested(debug bool) bool {
	return debug || strings.TrimSpace(os.Getenv(EnvLogLevel)) != ""
}

// InitDebugLogger opens a shared file-backed logger through Bubble Tea so
// that the form can log without drawing over the screen. The level is debug
// when debug is set, otherwise LOG_LEVEL (info if unset or invalid).
// If path is empty, it defaults to "debug.log" in the effective cwd. Safe to
// call multiple times.
func InitDebugLogger(path string, debug bool) error {
	var initErr error
	debugOnce.Do(func() {
		if path == "" {
			path = filepath.Join(GetEffectiveCWD(), "debug.log")
		}

		if debug {
			if absPath, err := filepath.Abs(path); err == nil {
				path = absPath
			}
			fmt.Fprintf(os.Stderr, "[DEBUG] Logging to: %s\n", path)
		}

		f, err := tea.LogToFile(path, "dlt")
		if err != nil {
			initErr = err
			return
		}
		debugFile = f

		logger := logrus.New()
		logger.SetOutput(f)
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		logger.SetLevel(resolveLevel(debug))
		debugLogger = logger
	})
	return initErr
}

// resolveLevel maps --debug and LOG_LEVEL to a logrus level.
func resolveLevel(debug bool) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}
	raw := strings.TrimSpace(os.Getenv(EnvLogLevel))
	if raw == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// CloseDebugLogger closes the underlying debug log file if it was opened.
func CloseDebugLogger() {
	if debugFile != nil {
		_ = debugFile.Sync()
		_ = debugFile.Close()
	}
}

// ResetDebugLoggerForTesting resets the debug logger state for testing purposes.
// WARNING: This should ONLY be called from tests!
func ResetDebugLoggerForTesting() {
	CloseDebugLogger()
	debugOnce = sync.Once{}
	debugFile = nil
	debugLogger = nil
}

// Logger returns the debug logger, or nil when debug logging was never
// initialised.
func Logger() *logrus.Logger {
	return debugLogger
}

// LogDebug writes a debug line to the log file. Nothing happens until
// InitDebugLogger has run; the logger level filters the rest.
func LogDebug(msg string) {
	if debugLogger == nil {
		return
	}
	debugLogger.Debug(msg)
}

// LogFields writes a structured debug entry.
func LogFields(msg string, fields logrus.Fields) {
	if debugLogger == nil {
		return
	}
	debugLogger.WithFields(fields).Debug(msg)
}
