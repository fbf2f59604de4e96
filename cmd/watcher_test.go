package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dltime-cli/cmd/config"

	tea "github.com/charmbracelet/bubbletea"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func waitForReload(t *testing.T, msgs <-chan tea.Msg) configReloadedMsg {
	t.Helper()
	select {
	case msg := <-msgs:
		reloaded, ok := msg.(configReloadedMsg)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		return reloaded
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
	return configReloadedMsg{}
}

func TestConfigWatcherReloadsOnWrite(t *testing.T) {
	t.Setenv(config.EnvSizeUnit, "")
	t.Setenv(config.EnvSpeedUnit, "")
	dir := t.TempDir()
	path := writeFile(t, dir, "dlt.yaml", "defaults:\n  size_unit: MB\n")

	msgs := make(chan tea.Msg, 4)
	w, err := startConfigWatcher(path, "", func(msg tea.Msg) { msgs <- msg })
	if err != nil {
		t.Fatalf("startConfigWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "dlt.yaml", "speed_presets:\n  - name: Office\n    speed: 250\n    unit: Mbps\n")

	reloaded := waitForReload(t, msgs)
	if reloaded.path != path {
		t.Errorf("path = %q, want %q", reloaded.path, path)
	}
	presets := reloaded.cfg.Presets()
	if len(presets) != 1 || presets[0].Name != "Office" {
		t.Errorf("presets = %+v", presets)
	}
}

func TestConfigWatcherPicksUpNewFile(t *testing.T) {
	t.Setenv(config.EnvSizeUnit, "")
	t.Setenv(config.EnvSpeedUnit, "")
	dir := t.TempDir()

	msgs := make(chan tea.Msg, 4)
	w, err := startConfigWatcher("", dir, func(msg tea.Msg) { msgs <- msg })
	if err != nil {
		t.Fatalf("startConfigWatcher: %v", err)
	}
	defer w.Close()

	// Files that are not dlt configs are ignored.
	writeFile(t, dir, "notes.txt", "hello")
	path := writeFile(t, dir, "dlt.toml", "[defaults]\nspeed_unit = \"Gbps\"\n")

	reloaded := waitForReload(t, msgs)
	if reloaded.path != path {
		t.Errorf("path = %q, want %q", reloaded.path, path)
	}
	if unit, _ := reloaded.cfg.DefaultSpeedUnit(); unit != "Gbps" {
		t.Errorf("speed unit = %s, want Gbps", unit)
	}
}

func TestConfigWatcherSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dlt.yaml", "defaults:\n  size_unit: MB\n")

	msgs := make(chan tea.Msg, 4)
	w, err := startConfigWatcher(path, "", func(msg tea.Msg) { msgs <- msg })
	if err != nil {
		t.Fatalf("startConfigWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "dlt.yaml", "defaults:\n  size_unit: PB\n")

	select {
	case msg := <-msgs:
		t.Fatalf("invalid config should not be delivered, got %T", msg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestConfigWatcherCloseIsIdempotent(t *testing.T) {
	w, err := startConfigWatcher("", t.TempDir(), func(tea.Msg) {})
	if err != nil {
		t.Fatalf("startConfigWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
