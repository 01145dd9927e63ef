package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ///////////////////////////////////////////////
// Watcher
// ///////////////////////////////////////////////

// Watcher monitors the configuration file for changes. It watches the
// containing directory rather than the file itself so editors that replace
// the file via rename keep being observed.
type Watcher struct {
	// events delivers a signal each time the config file changes. The
	// channel is buffered to 1 so back-to-back writes coalesce.
	events chan struct{}
	// done is closed by [Watcher.Close] to stop the forwarding goroutine.
	done chan struct{}
	// fsw is the underlying fsnotify watcher.
	fsw *fsnotify.Watcher
	// once makes [Watcher.Close] idempotent.
	once sync.Once
}

// Watch starts monitoring the configuration file inside dir. Callers that
// cannot create a watcher (some containerized filesystems) get an error and
// should treat hot-reload as unavailable rather than fatal.
func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
		fsw:    fsw,
	}
	go w.forward()
	return w, nil
}

// Events returns the channel that delivers change notifications.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// forward filters directory events down to writes of the config file and
// coalesces them onto the events channel.
func (w *Watcher) forward() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != FileName {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
}
