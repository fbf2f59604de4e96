package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"dltime-cli/cmd/config"
	"dltime-cli/cmd/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// configReloadedMsg carries a freshly loaded config into the form.
type configReloadedMsg struct {
	cfg  *config.DltConfig
	path string
}

// configDebounce lets editors finish writing before the file is re-read.
const configDebounce = 100 * time.Millisecond

// configWatcher reloads the dlt config file when it changes on disk.
type configWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	path    string
	notify  func(tea.Msg)

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// startConfigWatcher watches path, or dir for a newly created config file
// when path is empty. Reloaded configs are delivered through notify.
func startConfigWatcher(path, dir string, notify func(tea.Msg)) (*configWatcher, error) {
	if path != "" {
		dir = filepath.Dir(path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory rather than the file; editors that save by rename
	// would otherwise drop the watch.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &configWatcher{
		watcher: watcher,
		dir:     dir,
		path:    path,
		notify:  notify,
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	utils.LogDebug(fmt.Sprintf("Watching config in %s (file: %q)", dir, path))
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *configWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *configWatcher) loop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		pending <-chan time.Time
		target  string
	)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.interested(event.Name) {
				continue
			}

			target = event.Name
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(configDebounce)
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload(target)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			utils.LogDebug(fmt.Sprintf("Watcher error: %v", err))
		}
	}
}

// interested reports whether name is the watched config file, or any
// supported config file in dir when no file was loaded yet.
func (w *configWatcher) interested(name string) bool {
	if w.path != "" {
		return filepath.Clean(name) == filepath.Clean(w.path)
	}
	return filepath.Dir(name) == filepath.Clean(w.dir) && config.IsConfigFile(name)
}

func (w *configWatcher) reload(path string) {
	cfg, err := config.LoadConfigFile(path)
	if err == nil {
		err = cfg.ApplyEnv()
	}
	if err != nil {
		// Rename-based saves briefly remove the file; the following
		// create event triggers another reload.
		utils.LogDebug(fmt.Sprintf("Config reload of %s failed: %v", path, err))
		utils.OutputWarning("Config not reloaded: %v", err)
		return
	}

	w.path = path
	utils.LogDebug(fmt.Sprintf("Reloaded config %s", path))
	w.notify(configReloadedMsg{cfg: cfg, path: path})
}
