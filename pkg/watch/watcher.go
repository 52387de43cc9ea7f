// Package watch runs the automation daemon: it observes tracked files
// for changes and captures a new version for each settled change.
//
// The daemon is an ordinary Store caller. It adds no coordination
// beyond the store's own last-writer-wins persistence; a concurrent
// invocation of the CLI against the same state file can still lose
// updates, exactly as any other external caller can.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/strata/pkg/core"
	"github.com/aretw0/strata/pkg/store"
)

// Config holds the configuration for a Watcher.
type Config struct {
	Store    *store.Store
	Logger   *slog.Logger
	Debounce time.Duration     // quiet period per file; default 50ms
	Interval time.Duration     // periodic full rescan; 0 disables
	Ignore   []string          // doublestar patterns against logical paths
	Metadata map[string]string // attached to every captured version

	// OnVersion is invoked after a change was captured as a new version.
	OnVersion func(path string, v core.Version)
	// OnError is invoked for per-file capture failures and watcher errors.
	OnError func(err error)
}

// Watcher observes the directories of all tracked documents and turns
// settled file changes into Update calls on the store.
type Watcher struct {
	*worker.BaseWorker
	config    Config
	logger    *slog.Logger
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	pending   chan core.Event
	captured  chan core.Event
	cancel    context.CancelFunc
}

// New creates a Watcher for the given store.
func New(config Config) *Watcher {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("strata-watcher"),
		config:     config,
		logger:     logger,
		pending:    make(chan core.Event, 64),
		captured:   make(chan core.Event, 64),
	}
}

// Events exposes the stream of captured changes: one event per recorded
// version. The channel is closed when the watcher shuts down. Slow
// consumers drop events rather than stalling capture.
func (w *Watcher) Events() <-chan core.Event {
	return w.captured
}

// Start begins watching. It returns once the filesystem watches are
// registered; the capture loop runs until ctx is cancelled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.addTrackedDirs(watcher); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.config.Debounce)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests shutdown and waits for the capture loop to drain.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

// State implements worker state export for observability.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// addTrackedDirs registers the parent directory of every tracked
// document. Watching directories instead of files survives the
// rename-over-save dance most editors do.
func (w *Watcher) addTrackedDirs(watcher *fsnotify.Watcher) error {
	dirs := make(map[string]bool)
	for _, summary := range w.config.Store.List() {
		doc, err := w.config.Store.Get(summary.Path)
		if err != nil {
			continue
		}
		dirs[filepath.Dir(doc.Path)] = true
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.logger.Info("watching tracked documents",
		"documents", len(w.config.Store.List()), "directories", len(dirs))
	return nil
}

// shouldIgnore filters events down to tracked, non-ignored files.
func (w *Watcher) shouldIgnore(event fsnotify.Event) bool {
	key := w.config.Store.Key(event.Name)

	for _, pattern := range w.config.Ignore {
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(key)); ok {
			return true
		}
	}

	if _, err := w.config.Store.Get(event.Name); err != nil {
		return true
	}
	return false
}

// mapEventType collapses fsnotify's operation bitmask onto the domain's
// event types. Chmod-only events carry no content change and map to "".
func (w *Watcher) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove):
		return core.EventRemove
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write), event.Has(fsnotify.Rename):
		return core.EventModify
	default:
		return ""
	}
}

// processFilesystemEvent handles filtering, mapping, and debouncing of
// filesystem events. Returns true if the event was queued.
func (w *Watcher) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	if w.shouldIgnore(event) {
		return false
	}

	eType := w.mapEventType(event)
	if eType == "" {
		return false
	}

	key := w.config.Store.Key(event.Name)
	w.debouncer.add(key, func() {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.pending <- core.Event{Type: eType, Path: key, Timestamp: time.Now().Unix()}:
		case <-ctx.Done():
		}
	})
	return true
}

// capture takes a snapshot of one settled change.
func (w *Watcher) capture(event core.Event) {
	if event.Type == core.EventRemove {
		w.logger.Warn("tracked file removed", "path", event.Path)
		return
	}

	v, changed, err := w.config.Store.Update(event.Path, w.config.Metadata)
	if err != nil {
		w.logger.Error("capture failed", "path", event.Path, "error", err)
		if w.config.OnError != nil {
			w.config.OnError(fmt.Errorf("capture %s: %w", event.Path, err))
		}
		return
	}
	if !changed {
		return
	}

	w.logger.Info("change captured", "path", event.Path, "version", v.Number)
	if w.config.OnVersion != nil {
		w.config.OnVersion(event.Path, *v)
	}

	select {
	case w.captured <- core.Event{Type: core.EventModify, Path: event.Path, Timestamp: time.Now().Unix()}:
	default:
	}
}

// rescan runs an Update over every tracked document. Used by the
// periodic interval to pick up changes the event stream missed.
func (w *Watcher) rescan() {
	for _, summary := range w.config.Store.List() {
		w.capture(core.Event{
			Type:      core.EventModify,
			Path:      summary.Path,
			Timestamp: time.Now().Unix(),
		})
	}
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *Watcher) handleWatcherError(err error) {
	w.logger.Error("fsnotify error", "error", err)
	if w.config.OnError != nil {
		w.config.OnError(err)
	}
}

// run is the main event loop for the watcher worker.
func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			// Stack only under debug logging; production logs stay lean.
			var stack string
			if w.logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if stack != "" {
				w.logger.Error("watcher panic", "error", panicErr, "stack", stack)
			} else {
				w.logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Shutdown debouncer: stop accepting new events and wait for all
	// in-flight timers to complete before the pending channel dies.
	w.debouncer.stopAndWait(5 * time.Second)

	// Captures only happen in the loop above, so closing here is safe.
	close(w.captured)

	return err
}

// mainEventLoop is the core select loop. Captures run here, one at a
// time, so the store only ever sees a single caller.
func (w *Watcher) mainEventLoop(ctx context.Context) error {
	var tick <-chan time.Time
	if w.config.Interval > 0 {
		ticker := time.NewTicker(w.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-w.pending:
			w.capture(event)

		case <-tick:
			w.logger.Debug("periodic rescan")
			w.rescan()

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}
