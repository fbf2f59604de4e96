package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvHomeDir overrides the per-user dlt directory.
const EnvHomeDir = "DLT_HOME"

// OverrideCwd is set from the global --cwd flag.
var OverrideCwd string

// GetEffectiveCWD returns the directory to treat as the working directory.
// If the global --cwd flag is provided, it returns its absolute path; otherwise os.Getwd().
func GetEffectiveCWD() string {
	if strings.TrimSpace(OverrideCwd) != "" {
		if filepath.IsAbs(OverrideCwd) {
			return OverrideCwd
		}
		abs, err := filepath.Abs(OverrideCwd)
		if err != nil {
			return "."
		}
		return abs
	}

	wd, _ := os.Getwd()
	if wd == "" {
		return "."
	}

	return wd
}

// GetDltHomeDir returns the per-user directory searched for dlt config.
func GetDltHomeDir() (string, error) {
	if dir := os.Getenv(EnvHomeDir); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("GetDltHomeDir: could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".dlt"), nil
}
