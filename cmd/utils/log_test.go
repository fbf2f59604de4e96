package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogDebugWritesWhenEnabled(t *testing.T) {
	ResetDebugLoggerForTesting()
	t.Cleanup(ResetDebugLoggerForTesting)

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := InitDebugLogger(path, true); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}

	LogDebug("estimate computed")
	LogFields("form update", logrus.Fields{"size": "10", "unit": "MB"})
	CloseDebugLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)
	for _, want := range []string{"estimate computed", "form update", "size=10", "unit=MB"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestLogDebugSilentWhenDisabled(t *testing.T) {
	ResetDebugLoggerForTesting()
	t.Cleanup(ResetDebugLoggerForTesting)
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := InitDebugLogger(path, false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}

	LogDebug("should not appear")
	CloseDebugLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if strings.Contains(string(data), "should not appear") {
		t.Errorf("debug line written while disabled:\n%s", data)
	}
}

func TestLogDebugWithoutInit(t *testing.T) {
	ResetDebugLoggerForTesting()
	// Must not panic or create files.
	LogDebug("nothing")
	if Logger() != nil {
		t.Error("Logger() should be nil before init")
	}
}

func TestResolveLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	if got := resolveLevel(false); got != logrus.WarnLevel {
		t.Errorf("resolveLevel(false) = %v, want warn", got)
	}
	if got := resolveLevel(true); got != logrus.DebugLevel {
		t.Errorf("resolveLevel(true) = %v, want debug", got)
	}
	t.Setenv(EnvLogLevel, "loud")
	if got := resolveLevel(false); got != logrus.InfoLevel {
		t.Errorf("resolveLevel with bad value = %v, want info", got)
	}
}

func TestLogLevelEnvEnablesDebugLines(t *testing.T) {
	ResetDebugLoggerForTesting()
	t.Cleanup(ResetDebugLoggerForTesting)
	t.Setenv(EnvLogLevel, "debug")

	path := filepath.Join(t.TempDir(), "debug.log")
	if err := InitDebugLogger(path, false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	LogFields("estimate", logrus.Fields{"result": "00:14:18"})
	CloseDebugLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=estimate") {
		t.Errorf("LOG_LEVEL=debug should let debug entries through:\n%s", data)
	}
}

func TestLogRequested(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	if LogRequested(false) {
		t.Error("no flag and no LOG_LEVEL should not request a log")
	}
	if !LogRequested(true) {
		t.Error("--debug should request a log")
	}
	t.Setenv(EnvLogLevel, "warn")
	if !LogRequested(false) {
		t.Error("LOG_LEVEL should request a log")
	}
}
