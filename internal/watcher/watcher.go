// Package watcher reports edits to runcat's files made by other processes,
// such as "runcat settings set" or a text editor.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/watchfire-io/runcat/internal/logger"
)

// DefaultDebounce collapses bursts of writes to one event.
const DefaultDebounce = 100 * time.Millisecond

// EventType represents the type of file system event.
type EventType int

// Event types for file changes.
const (
	EventFileChanged EventType = iota
	EventFileRemoved
)

func (t EventType) String() string {
	if t == EventFileRemoved {
		return "removed"
	}
	return "changed"
}

// Event represents a debounced change to a watched file.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches individual files by watching their directories.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	log        logger.Logger
	delay      time.Duration

	mu    sync.RWMutex
	files map[string]bool // cleaned absolute path -> watched

	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new file watcher.
func New(log logger.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.New("[watcher]")
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		log:        log,
		delay:      DefaultDebounce,
		files:      make(map[string]bool),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// SetDebounce changes the debounce delay. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.delay = d
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// WatchFile reports changes to path. The parent directory must exist; the
// file itself may not exist yet.
func (w *Watcher) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	w.mu.Lock()
	w.files[abs] = true
	w.mu.Unlock()

	w.log.Debug("watching %s", abs)
	return nil
}

// Start starts processing events.
func (w *Watcher) Start() {
	go w.processEvents()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	// Rename covers atomic saves (write temp, rename over target).
	var typ EventType
	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
		typ = EventFileChanged
	case event.Op&fsnotify.Remove != 0:
		typ = EventFileRemoved
	default:
		return
	}

	w.log.Debug("fsnotify: %s %s", event.Op, path)
	w.debounceEvent(path, func() {
		w.emit(Event{Type: typ, Path: path})
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

func (w *Watcher) emit(e Event) {
	select {
	case w.eventsChan <- e:
	case <-w.done:
	}
}
