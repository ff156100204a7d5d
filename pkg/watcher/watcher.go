// Package watcher re-runs the pipeline when the build log changes. Editors
// and build systems rewrite logs in bursts, so raw fsnotify events are
// debounced before triggering a regeneration.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/logging"
)

// ChangeEvent represents a batch of changes to the watched log file.
type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}

// LogWatcher watches one build log for modification.
type LogWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan ChangeEvent
}

// New creates a watcher for the given log file. The containing directory is
// watched rather than the file itself, because build tools commonly replace
// the log via rename, which drops a file-level watch.
func New(logPath string) (*LogWatcher, error) {
	abs, err := filepath.Abs(logPath)
	if err != nil {
		return nil, fmt.Errorf("resolving log path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &LogWatcher{
		watcher: w,
		path:    abs,
		events:  make(chan ChangeEvent, 100),
	}, nil
}

// Start begins forwarding change events for the log file until the context
// is cancelled.
func (lw *LogWatcher) Start(ctx context.Context) {
	go lw.run(ctx)
}

// Events returns the channel of raw (un-debounced) change events.
func (lw *LogWatcher) Events() <-chan ChangeEvent {
	return lw.events
}

// Close stops the underlying fsnotify watcher.
func (lw *LogWatcher) Close() error {
	return lw.watcher.Close()
}

func (lw *LogWatcher) run(ctx context.Context) {
	defer close(lw.events)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != lw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("log file changed", "path", event.Name, "op", event.Op.String())
			select {
			case lw.events <- ChangeEvent{Path: lw.path, Timestamp: time.Now()}:
			default:
				// Channel full; a regeneration is already pending.
			}

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("watch error", "error", err)
		}
	}
}
