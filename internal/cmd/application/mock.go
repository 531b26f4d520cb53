// Package application provides test doubles for the command application interface.
package application

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/cmd/application"
	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value backed by
// an in-memory filesystem.
//
// Example Usage:
//
//	mock := &application.Mock{FS: fsys.NewMemory()}
//	cmd := sync.NewCommand(mock)
//	// ... test command
type Mock struct {
	// FS is the filesystem used by the default Filesystem and Syncer.
	FS fsys.Filesystem

	// Options are applied to every default Syncer before call-site options.
	Options []guidance.Option

	SyncerFunc        func(opts ...guidance.Option) (*guidance.Syncer, error)
	LoggerFunc        func() *zerolog.Logger
	OutputFormatFunc  func() string
	QuietFunc         func() bool
	WatchDebounceFunc func() time.Duration
	RootFunc          func() string
	VersionFunc       func() string
	CommitFunc        func() string
	DateFunc          func() string
	BuiltByFunc       func() string

	once sync.Once
}

// Syncer returns a syncer using the mock function or one over Filesystem.
func (m *Mock) Syncer(opts ...guidance.Option) (*guidance.Syncer, error) {
	if m.SyncerFunc != nil {
		return m.SyncerFunc(opts...)
	}
	all := append([]guidance.Option{guidance.WithLogger(m.Logger()), guidance.WithQuiet(m.Quiet())}, m.Options...)
	return guidance.New(m.Filesystem(), append(all, opts...)...)
}

// Filesystem returns FS, creating an in-memory filesystem on first use.
func (m *Mock) Filesystem() fsys.Filesystem {
	m.once.Do(func() {
		if m.FS == nil {
			m.FS = fsys.NewMemory()
		}
	})
	return m.FS
}

// Root returns root using the mock function or ".".
func (m *Mock) Root() string {
	if m.RootFunc != nil {
		return m.RootFunc()
	}
	return "."
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Quiet returns quiet using the mock function or false.
func (m *Mock) Quiet() bool {
	if m.QuietFunc != nil {
		return m.QuietFunc()
	}
	return false
}

// NoColor always returns true so test output is stable.
func (m *Mock) NoColor() bool {
	return true
}

// WatchDebounce returns the debounce using the mock function or the default.
func (m *Mock) WatchDebounce() time.Duration {
	if m.WatchDebounceFunc != nil {
		return m.WatchDebounceFunc()
	}
	return constants.DefaultWatchDebounce
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ application.Application = (*Mock)(nil)
