package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is emitted when the watched config file changes.
// Err is set when the new file fails to parse or validate; Config is
// only meaningful when Err is nil.
type Reload struct {
	Path   string
	Config RunnerConfig
	Err    error
}

// Watcher reports edits of a single runner config file.
// The parent directory is watched so editors that replace the file on
// save are still noticed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Events   chan Reload
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
}

// NewWatcher starts watching path. Close must be called to release it.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:     abs,
		watcher:  w,
		Events:   make(chan Reload, 4),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Events is closed once the loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)

	// Saves often arrive as several events; load once they settle.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			if !w.emit(w.load()) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.emit(Reload{Path: w.path, Err: fmt.Errorf("config: watch %s: %w", w.path, err)}) {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) emit(r Reload) bool {
	select {
	case w.Events <- r:
		return true
	case <-w.closeCh:
		return false
	}
}

func (w *Watcher) load() Reload {
	cfg, err := LoadRunner(w.path)
	if err == nil {
		err = Validate(cfg)
	}
	return Reload{Path: w.path, Config: cfg, Err: err}
}
