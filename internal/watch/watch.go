// Package watch re-runs a callback when files under a set of directories change.
//
// Events are debounced: a burst of saves triggers one callback once the tree
// has been quiet for the debounce window. Callbacks run on the event loop
// goroutine, so they never overlap.
package watch

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/logging"
)

// Func is called after changes settle.
type Func func(ctx context.Context) error

// Stats tracks watcher activity.
type Stats struct {
	Events    int       // Relevant filesystem events seen
	Runs      int       // Callback invocations
	Errors    int       // Watcher and callback errors
	LastEvent time.Time // Time of the most recent relevant event
	LastPath  string    // Path of the most recent relevant event
}

// Watcher watches directories and invokes a callback when they change.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dirs     []string
	match    func(path string) bool
	onChange Func
	debounce time.Duration
	tick     time.Duration
	log      *zerolog.Logger

	pending time.Time // Last unprocessed event; zero when idle
	stats   Stats
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long changes must settle before the callback runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithFilter restricts which changed paths are relevant.
func WithFilter(match func(path string) bool) Option {
	return func(w *Watcher) {
		if match != nil {
			w.match = match
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.log = logger
		}
	}
}

// New creates a Watcher for dirs. Directories that do not exist yet are
// picked up when they are created inside another watched directory.
func New(dirs []string, onChange Func, opts ...Option) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.NewValidationError("onChange", nil, "cannot be nil")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapIO("watch", "", err)
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		match:    func(string) bool { return true },
		debounce: constants.DefaultWatchDebounce,
		tick:     constants.WatchTickInterval,
		log:      logging.NewNopLogger(),
	}
	for _, dir := range dirs {
		w.dirs = append(w.dirs, filepath.Clean(dir))
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is done. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.log.Error().Err(err).Msg("Error closing watcher")
		}
	}()

	watched := 0
	for _, dir := range w.dirs {
		if w.add(dir) {
			watched++
		}
	}
	if watched == 0 {
		return errors.NewIOError("watch", "", errors.New("none of the watched directories exist"))
	}

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug().Msg("Watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event, time.Now())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("Watcher error")
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case now := <-ticker.C:
			w.flush(ctx, now)
		}
	}
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// add starts watching dir, reporting whether it is now watched.
func (w *Watcher) add(dir string) bool {
	if err := w.watcher.Add(dir); err != nil {
		w.log.Debug().Err(err).Str("dir", dir).Msg("Directory not watched")
		return false
	}
	w.log.Debug().Str("dir", dir).Msg("Watching directory")
	return true
}

// handle records a relevant event for later processing.
func (w *Watcher) handle(event fsnotify.Event, now time.Time) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	path := filepath.Clean(event.Name)
	if event.Has(fsnotify.Create) && slices.Contains(w.dirs, path) {
		// A watched directory appeared; its contents are new sources
		w.add(path)
	} else if !w.match(path) {
		return
	}

	w.log.Debug().Str("path", path).Str("op", event.Op.String()).Msg("Source changed")

	w.mu.Lock()
	w.pending = now
	w.stats.Events++
	w.stats.LastEvent = now
	w.stats.LastPath = path
	w.mu.Unlock()
}

// flush runs the callback once pending changes have settled.
func (w *Watcher) flush(ctx context.Context, now time.Time) {
	w.mu.Lock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.stats.Runs++
	w.mu.Unlock()

	if err := w.onChange(ctx); err != nil {
		w.log.Error().Err(err).Msg("Sync after change failed")
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
	}
}
