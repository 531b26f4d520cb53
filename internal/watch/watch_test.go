package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, dirs []string, onChange Func, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(dirs, onChange, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.watcher.Close() })
	return w
}

func TestDebounce(t *testing.T) {
	dir := t.TempDir()
	var runs int
	w := newTestWatcher(t, []string{dir}, func(context.Context) error {
		runs++
		return nil
	}, WithDebounce(300*time.Millisecond))

	start := time.Now()
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "a.mdc"), Op: fsnotify.Write}, start)
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "b.mdc"), Op: fsnotify.Create}, start.Add(100*time.Millisecond))

	// Not settled yet
	w.flush(context.Background(), start.Add(300*time.Millisecond))
	assert.Equal(t, 0, runs)

	// One run for the whole burst
	w.flush(context.Background(), start.Add(450*time.Millisecond))
	assert.Equal(t, 1, runs)

	w.flush(context.Background(), start.Add(time.Second))
	assert.Equal(t, 1, runs)

	stats := w.Stats()
	assert.Equal(t, 2, stats.Events)
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, filepath.Join(dir, "b.mdc"), stats.LastPath)
}

func TestIgnoredEvents(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, []string{dir}, func(context.Context) error { return nil },
		WithFilter(func(path string) bool { return strings.HasSuffix(path, ".mdc") }))

	now := time.Now()
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "a.mdc"), Op: fsnotify.Chmod}, now)
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}, now)

	assert.Equal(t, 0, w.Stats().Events)
	assert.True(t, w.pending.IsZero())
}

func TestCallbackErrorsAreCounted(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, []string{dir}, func(context.Context) error {
		return assert.AnError
	}, WithDebounce(time.Millisecond))

	now := time.Now()
	w.handle(fsnotify.Event{Name: filepath.Join(dir, "a.mdc"), Op: fsnotify.Remove}, now)
	w.flush(context.Background(), now.Add(time.Second))

	stats := w.Stats()
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, 1, stats.Errors)
}

func TestNewRequiresCallback(t *testing.T) {
	_, err := New([]string{t.TempDir()}, nil)
	require.Error(t, err)
}

func TestRunWithoutDirectories(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "missing")}, func(context.Context) error { return nil })
	require.NoError(t, err)

	err = w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the watched directories exist")
}

func TestRunTriggersOnChange(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32

	w, err := New([]string{dir}, func(context.Context) error {
		runs.Add(1)
		return nil
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	i := 0
	require.Eventually(t, func() bool {
		i++
		_ = os.WriteFile(filepath.Join(dir, "rule.mdc"), []byte(strings.Repeat("x", i)), 0o644)
		return runs.Load() > 0
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
