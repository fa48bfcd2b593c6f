package dev

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blueprint-dev/blueprint/internal/errors"
)

// Change represents a detected file change.
type Change struct {
	Path string
	Op   string
}

// Change operations.
const (
	OpCreate = "create"
	OpWrite  = "write"
	OpRemove = "remove"
	OpRename = "rename"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch, recursively.
	Paths []string

	// Ignore contains base names and glob patterns to skip.
	Ignore []string

	// Debounce is the quiet period before a change is reported.
	Debounce time.Duration

	// Logger receives watcher diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher monitors document and asset directories for changes.
type Watcher struct {
	config   WatcherConfig
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	onChange func(Change)

	mu      sync.Mutex
	pending map[string]pendingChange
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

type pendingChange struct {
	at time.Time
	op string
}

// NewWatcher creates a watcher for the configured paths. The watcher is
// inert until Start is called.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.New("E082").Wrap(err)
	}
	if config.Debounce <= 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		config:  config,
		fs:      fs,
		logger:  logger,
		pending: make(map[string]pendingChange),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. It is non-blocking; events are delivered from a
// background goroutine until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, root := range w.config.Paths {
		if err := w.addRecursive(root); err != nil {
			return errors.New("E082").
				WithDetail("Cannot watch " + root).
				Wrap(err)
		}
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.fs.Close(); err != nil {
		w.logger.Error("watcher close failed", "error", err)
	}
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// addRecursive registers a directory tree with the underlying watcher.
func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		return w.fs.Add(p)
	})
}

// run is the watcher's event loop.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	flush := time.NewTicker(w.config.Debounce)
	defer flush.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)

		case <-flush.C:
			w.flushPending()
		}
	}
}

// handleEvent records one filesystem event for debounced delivery.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if w.shouldIgnore(event.Name) {
		return
	}

	var op string
	switch {
	case event.Op&fsnotify.Create != 0:
		op = OpCreate
		// New directories need their own watch.
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	case event.Op&fsnotify.Write != 0:
		op = OpWrite
	case event.Op&fsnotify.Remove != 0:
		op = OpRemove
	case event.Op&fsnotify.Rename != 0:
		op = OpRename
	default:
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = pendingChange{at: time.Now(), op: op}
	w.mu.Unlock()
}

// flushPending reports changes whose debounce window has elapsed.
func (w *Watcher) flushPending() {
	w.mu.Lock()
	callback := w.onChange
	now := time.Now()
	var ready []Change
	for path, pc := range w.pending {
		if now.Sub(pc.at) >= w.config.Debounce {
			ready = append(ready, Change{Path: path, Op: pc.op})
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	if callback == nil {
		return
	}
	for _, change := range ready {
		w.logger.Debug("file changed", "path", change.Path, "op", change.Op)
		callback(change)
	}
}

// shouldIgnore checks a path against the ignore patterns.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}
		for _, segment := range strings.Split(normalized, "/") {
			if segment == pattern {
				return true
			}
		}
	}
	return false
}
