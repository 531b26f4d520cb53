// Package fsys defines the small filesystem capability the guidance engine
// needs and a go-billy backed implementation of it.
//
// The engine never touches the os package directly, so a run can be pointed
// at the real project tree (NewOS) or an in-memory tree (NewMemory) in tests.
package fsys

import (
	"os"
	"time"
)

// Filesystem is the set of operations a synchronization run performs.
// Paths are slash- or OS-separated and relative to the filesystem root.
type Filesystem interface {
	// ReadDir lists the entries of dir.
	ReadDir(dir string) ([]os.FileInfo, error)

	// ReadFile returns the content of path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the content of path, creating it with perm if needed.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Remove deletes path.
	Remove(path string) error

	// Stat describes path.
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether path exists. Only unexpected stat failures are errors.
	Exists(path string) (bool, error)

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// Chtimes sets access and modification times. Filesystems without
	// timestamp support treat it as a no-op.
	Chtimes(path string, atime, mtime time.Time) error
}
