package guidance_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

// faultyFS wraps a Filesystem, failing selected paths and recording writes.
type faultyFS struct {
	fsys.Filesystem

	readErrs   map[string]error
	writeErrs  map[string]error
	removeErrs map[string]error

	mu      sync.Mutex
	writes  []string
	removes []string
}

func newFaultyFS(base fsys.Filesystem) *faultyFS {
	return &faultyFS{
		Filesystem: base,
		readErrs:   map[string]error{},
		writeErrs:  map[string]error{},
		removeErrs: map[string]error{},
	}
}

func (f *faultyFS) ReadFile(path string) ([]byte, error) {
	if err, ok := f.readErrs[path]; ok {
		return nil, err
	}
	return f.Filesystem.ReadFile(path)
}

func (f *faultyFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[path]; ok {
		return err
	}
	f.mu.Lock()
	f.writes = append(f.writes, path)
	f.mu.Unlock()
	return f.Filesystem.WriteFile(path, data, perm)
}

func (f *faultyFS) Remove(path string) error {
	if err, ok := f.removeErrs[path]; ok {
		return err
	}
	f.mu.Lock()
	f.removes = append(f.removes, path)
	f.mu.Unlock()
	return f.Filesystem.Remove(path)
}

func (f *faultyFS) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = nil
	f.removes = nil
}

// recordingReporter captures everything a run reports.
type recordingReporter struct {
	events    []guidance.Event
	summaries []*guidance.Report
}

func (r *recordingReporter) Progress(e guidance.Event) {
	r.events = append(r.events, e)
}

func (r *recordingReporter) Summary(report *guidance.Report) {
	r.summaries = append(r.summaries, report)
}

func (r *recordingReporter) actions() []guidance.Action {
	actions := make([]guidance.Action, len(r.events))
	for i, e := range r.events {
		actions[i] = e.Action
	}
	return actions
}

// p joins slash-separated path elements for the host OS.
func p(path string) string {
	return filepath.FromSlash(path)
}

func writeFiles(t *testing.T, f fsys.Filesystem, files map[string]string) {
	t.Helper()
	for path, content := range files {
		path = p(path)
		require.NoError(t, f.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, f.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, f fsys.Filesystem, path string) string {
	t.Helper()
	data, err := f.ReadFile(p(path))
	require.NoError(t, err)
	return string(data)
}

func exists(t *testing.T, f fsys.Filesystem, path string) bool {
	t.Helper()
	ok, err := f.Exists(p(path))
	require.NoError(t, err)
	return ok
}
