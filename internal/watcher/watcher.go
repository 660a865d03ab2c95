// Package watcher watches a content directory and reports settled changes.
package watcher

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/ffsite/internal/clock"
	"github.com/ziadkadry99/ffsite/internal/debounce"
)

// DefaultDebounce collapses editor save bursts into one reload.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors a directory tree for JSON document changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debouncer *debounce.Debouncer[string]
	logger    *slog.Logger
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Root        string
	DebounceDur time.Duration
	Clock       clock.Clock
	Logger      *slog.Logger
}

// New creates a watcher. onChange receives the last changed path of each
// settled burst, on a timer goroutine.
func New(cfg Config, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts := []debounce.Option[string]{}
	if cfg.Clock != nil {
		opts = append(opts, debounce.WithClock[string](cfg.Clock))
	}
	delay := cfg.DebounceDur
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsw,
		root:      cfg.Root,
		debouncer: debounce.New(delay, onChange, opts...),
		logger:    logger,
		done:      make(chan struct{}),
	}, nil
}

// Start watches Root and every directory below it.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := w.fsWatcher.Add(path); err != nil {
				return fmt.Errorf("watching directory %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop terminates the watcher and drops any pending notification.
func (w *Watcher) Stop() error {
	close(w.done)
	w.debouncer.Cancel()
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				// New group directories need their own watch.
				if err := w.fsWatcher.Add(event.Name); err == nil {
					w.logger.Debug("watching new directory", "path", event.Name)
				}
			}
			if !IsRelevant(event) {
				continue
			}
			w.debouncer.Trigger(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// IsRelevant reports whether an event can change rendered content.
func IsRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return strings.HasSuffix(base, ".json")
}
