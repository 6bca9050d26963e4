package content

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the minimum spacing between delivered reload events.
// Editors tend to fire several filesystem events per save.
const WatchDebounce = 400 * time.Millisecond

// Watcher watches a content file and signals when it changes. The parent
// directory is watched rather than the file itself, because most editors
// replace the file on save and the watch would die with the old inode.
type Watcher struct {
	Started     bool
	Waiting     bool
	Events      chan struct{}
	Done        chan struct{}
	LastRefresh time.Time

	path    string
	watcher *fsnotify.Watcher
	logf    func(string, ...any)
}

// NewWatcher creates a watcher for the given content file.
func NewWatcher(path string, logf func(string, ...any)) *Watcher {
	return &Watcher{
		path: path,
		logf: logf,
	}
}

// Start begins watching. It is a no-op when already started or when no
// path is configured.
func (w *Watcher) Start() (bool, error) {
	if w.Started || w.path == "" {
		return false, nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return false, err
	}

	w.Started = true
	w.watcher = fw
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes its channels.
func (w *Watcher) Stop() {
	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *Watcher) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *Watcher) ResetWaiting() {
	w.Waiting = false
}

// ShouldReload checks debounce timing for watcher events.
func (w *Watcher) ShouldReload(now time.Time) bool {
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < WatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			w.signal()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.debugf("content watcher error: %v", err)
		}
	}
}

func (w *Watcher) signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

func (w *Watcher) debugf(format string, args ...any) {
	if w.logf != nil {
		w.logf(format, args...)
	}
}
