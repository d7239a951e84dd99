// Package watch reports on-disk changes to the files under comparison.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"nbdiff/internal/debuglog"
)

// Watcher watches a fixed set of files through their parent directories,
// so reports keep coming when an editor replaces a file instead of
// writing it in place.
type Watcher struct {
	fsw    *fsnotify.Watcher
	files  map[string]bool
	events chan string
}

// New starts watching the given files. Paths are resolved to absolute
// form once; later moves of a parent directory are not followed.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		files:  make(map[string]bool),
		events: make(chan string, 1),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	go w.loop()
	return w, nil
}

// Events delivers the absolute path of a changed file. Bursts from a
// single save coalesce into one delivery; the channel closes when the
// watcher is closed.
func (w *Watcher) Events() <-chan string { return w.events }

func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) loop() {
	defer close(w.events)
	errs := w.fsw.Errors
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// Chmod carries no content change.
			if event.Has(fsnotify.Chmod) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			debuglog.Logf("watch: %s %s", event.Op, abs)
			select {
			case w.events <- abs:
			default:
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			debuglog.Logf("watch error: %v", err)
		}
	}
}
