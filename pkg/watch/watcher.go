// Package watch implements the CLI's `watch` subcommand: debounce filesystem
// events into batches and trigger a full re-run of the analysis
// pipeline. Only whole-project re-runs are ever performed, just
// re-triggered on a timer instead of by hand — incremental/partial
// analysis would break the determinism guarantee the rest of the
// pipeline relies on. Built on fsnotify's per-path debounce-timer idiom,
// trimmed down from per-file incremental reindexing to "batch whatever
// changed, then fire one callback".
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options configures the watcher.
type Options struct {
	DebounceMs     int
	IgnorePatterns []string
}

// DefaultOptions returns sensible watch defaults.
func DefaultOptions() Options {
	return Options{DebounceMs: 200}
}

// ignoredDirs are always skipped regardless of IgnorePatterns.
var ignoredDirs = map[string]bool{
	"vendor": true, ".git": true, "node_modules": true,
}

// Watcher batches filesystem change events under rootPath and invokes
// onChange once per settled batch, passing the set of changed paths.
type Watcher struct {
	fsw     *fsnotify.Watcher
	logger  *slog.Logger
	options Options

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer

	stopOnce sync.Once
	stopCh   chan struct{}

	onChange func(paths []string)
}

// New creates a Watcher. onChange is invoked (from a background
// goroutine) once per debounce window with the set of paths that
// changed.
func New(options Options, logger *slog.Logger, onChange func(paths []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	return &Watcher{
		fsw:      fsw,
		logger:   logger,
		options:  options,
		pending:  make(map[string]bool),
		stopCh:   make(chan struct{}),
		onChange: onChange,
	}, nil
}

// Start watches rootPath and every subdirectory, then runs the event
// loop in a background goroutine until Stop is called.
func (w *Watcher) Start(rootPath string) error {
	if err := w.fsw.Add(rootPath); err != nil {
		return fmt.Errorf("watch %q: %w", rootPath, err)
	}

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if w.shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %q: %w", rootPath, err)
	}

	w.logger.Info("watch mode started", "root", rootPath)
	go w.eventLoop()
	return nil
}

// Stop terminates the event loop; safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if w.shouldIgnoreFile(event.Name) {
		return
	}
	if filepath.Ext(event.Name) != ".php" && filepath.Ext(event.Name) != ".phtml" {
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(time.Duration(w.options.DebounceMs)*time.Millisecond, w.fireBatch)
	w.mu.Unlock()
}

func (w *Watcher) fireBatch() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	w.onChange(paths)
}

func (w *Watcher) shouldIgnoreDir(path string) bool {
	base := filepath.Base(path)
	if ignoredDirs[base] {
		return true
	}
	return w.shouldIgnoreFile(path)
}

func (w *Watcher) shouldIgnoreFile(path string) bool {
	for _, pattern := range w.options.IgnorePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	return false
}
</content>
