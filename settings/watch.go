package settings

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the settings file must go unchanged before it is reloaded.
const debounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk. Successfully loaded settings are sent on Updates,
// and load failures on Errors. Both channels are closed once the watcher stops.
type Watcher struct {
	Updates chan Settings
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	log     *slog.Logger
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the settings file at path. The directory is watched rather than the file so that editors
// replacing the file are picked up.
func Watch(path string, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	w := &Watcher{
		Updates: make(chan Settings, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: fw,
		log:     log,
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Updates)
	defer close(w.Errors)

	// The timer is re-armed by every change, so the reload happens once the file has been quiet for debounce.
	timer := time.NewTimer(debounce)
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
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.log.Warn("settings reload failed", "path", w.path, "err", err)
		w.sendError(err)
		return
	}
	w.log.Info("settings reloaded", "path", w.path)
	select {
	case w.Updates <- s:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
	}
}
