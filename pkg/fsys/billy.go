package fsys

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Billy implements Filesystem using go-billy.
type Billy struct {
	fs   billy.Filesystem
	root string // OS directory backing fs, empty for in-memory trees
}

var _ Filesystem = (*Billy)(nil)

// NewBilly wraps an existing go-billy filesystem.
func NewBilly(fs billy.Filesystem) *Billy {
	return &Billy{fs: fs}
}

// NewOS creates a filesystem rooted at the given project directory.
func NewOS(root string) *Billy {
	return &Billy{fs: osfs.New(root), root: root}
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *Billy {
	return &Billy{fs: memfs.New()}
}

// ReadDir implements Filesystem.ReadDir.
func (b *Billy) ReadDir(dir string) ([]os.FileInfo, error) {
	list, err := b.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dir, err)
	}
	return list, nil
}

// ReadFile implements Filesystem.ReadFile.
func (b *Billy) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return data, nil
}

// WriteFile implements Filesystem.WriteFile.
func (b *Billy) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, path, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", path, err)
	}
	return nil
}

// Remove implements Filesystem.Remove.
func (b *Billy) Remove(path string) error {
	if err := b.fs.Remove(path); err != nil {
		return fmt.Errorf("billy: remove %q: %w", path, err)
	}
	return nil
}

// Stat implements Filesystem.Stat.
func (b *Billy) Stat(path string) (os.FileInfo, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", path, err)
	}
	return info, nil
}

// Exists implements Filesystem.Exists.
func (b *Billy) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("billy: stat %q: %w", path, err)
	}
}

// MkdirAll implements Filesystem.MkdirAll.
func (b *Billy) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// Chtimes implements Filesystem.Chtimes. osfs does not implement
// billy.Change outside plan9, so OS trees fall back to os.Chtimes under
// the root. In-memory trees without billy.Change ignore the call.
func (b *Billy) Chtimes(path string, atime, mtime time.Time) error {
	change, ok := b.fs.(billy.Change)
	if !ok {
		if b.root == "" {
			return nil
		}
		if err := os.Chtimes(filepath.Join(b.root, path), atime, mtime); err != nil {
			return fmt.Errorf("billy: chtimes %q: %w", path, err)
		}
		return nil
	}
	if err := change.Chtimes(path, atime, mtime); err != nil {
		if errors.Is(err, billy.ErrNotSupported) {
			return nil
		}
		return fmt.Errorf("billy: chtimes %q: %w", path, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposes the adapter target.
func (b *Billy) Raw() billy.Filesystem {
	return b.fs
}
