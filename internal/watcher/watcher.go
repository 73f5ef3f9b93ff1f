// Package watcher streams file system change events for an open workspace
// folder, feeding the editor's file tree refresh.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Event is one file system change. Type is "create", "delete", or "rename";
// content writes and metadata changes are filtered out, since the sidebar
// only cares about the shape of the tree.
type Event struct {
	Type string `json:"eventType"`
	Path string `json:"path"`
}

// Watcher watches a directory tree recursively. fsnotify watches are
// per-directory, so subdirectories are registered on startup and as they
// appear.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan Event
	errors chan error
}

// Watch starts watching root and everything beneath it. Hidden directories
// are not descended into and hidden entries never produce events.
func Watch(root string) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("watch path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path: %s is not a directory", root)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fw:     fw,
		events: make(chan Event, 64),
		errors: make(chan error, 1),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if hidden(d.Name()) && path != root {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory: %w", err)
	}

	go w.loop()
	return w, nil
}

// Events returns the change event stream. The channel is closed when the
// watcher is closed.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns watcher errors. Most callers can ignore it.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes the event channel.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if hidden(filepath.Base(ev.Name)) {
		return
	}

	var eventType string
	switch {
	case ev.Op.Has(fsnotify.Create):
		eventType = "create"
		// New directories need their own watch for recursion to hold.
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = w.fw.Add(ev.Name)
		}
	case ev.Op.Has(fsnotify.Remove):
		eventType = "delete"
	case ev.Op.Has(fsnotify.Rename):
		eventType = "rename"
	default:
		// Writes and chmods don't change the tree.
		return
	}

	select {
	case w.events <- Event{Type: eventType, Path: ev.Name}:
	default:
		// A stalled consumer drops events rather than blocking the loop;
		// the UI refreshes the whole tree on the next event anyway.
	}
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
