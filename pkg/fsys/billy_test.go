package fsys_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/pkg/fsys"
)

func filesystems(t *testing.T) map[string]fsys.Filesystem {
	t.Helper()
	return map[string]fsys.Filesystem{
		"memory": fsys.NewMemory(),
		"os":     fsys.NewOS(t.TempDir()),
	}
}

func TestBillyReadWrite(t *testing.T) {
	for name, f := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, f.MkdirAll(filepath.Join(".cursor", "rules"), 0o755))

			path := filepath.Join(".cursor", "rules", "style.mdc")
			require.NoError(t, f.WriteFile(path, []byte("Be terse\n"), 0o644))

			data, err := f.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "Be terse\n", string(data))

			// Overwrite truncates
			require.NoError(t, f.WriteFile(path, []byte("x"), 0o644))
			data, err = f.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "x", string(data))
		})
	}
}

func TestBillyExists(t *testing.T) {
	for name, f := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := f.Exists("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, f.WriteFile("present.md", []byte("hi"), 0o644))
			ok, err = f.Exists("present.md")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestBillyNotExistIsPreserved(t *testing.T) {
	for name, f := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			_, err := f.ReadFile("nope.md")
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
			assert.Contains(t, err.Error(), "billy: readfile")

			_, err = f.ReadDir("nope")
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

			err = f.Remove("nope.md")
			require.Error(t, err)
		})
	}
}

func TestBillyReadDirAndRemove(t *testing.T) {
	for name, f := range filesystems(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, f.MkdirAll("rules", 0o755))
			require.NoError(t, f.WriteFile(filepath.Join("rules", "a.mdc"), []byte("a"), 0o644))
			require.NoError(t, f.WriteFile(filepath.Join("rules", "b.mdc"), []byte("b"), 0o644))

			entries, err := f.ReadDir("rules")
			require.NoError(t, err)
			assert.Len(t, entries, 2)

			require.NoError(t, f.Remove(filepath.Join("rules", "a.mdc")))
			entries, err = f.ReadDir("rules")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "b.mdc", entries[0].Name())
		})
	}
}

func TestBillyChtimes(t *testing.T) {
	root := t.TempDir()
	f := fsys.NewOS(root)
	require.NoError(t, f.WriteFile("a.md", []byte("a"), 0o644))

	mtime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, f.Chtimes("a.md", mtime, mtime))

	info, err := os.Stat(filepath.Join(root, "a.md"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime %v", info.ModTime())

	// In-memory trees accept the call even when timestamps are unsupported
	mem := fsys.NewMemory()
	require.NoError(t, mem.WriteFile("a.md", []byte("a"), 0o644))
	assert.NoError(t, mem.Chtimes("a.md", mtime, mtime))

	// Missing files are reported on OS trees
	err = f.Chtimes("missing.md", mtime, mtime)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}
