// Package app provides the application context and dependency management
// for the sheave CLI. It centralizes configuration, logging and the project
// filesystem, and hands them to commands through application.Application.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

// App represents the sheave application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Project filesystem (lazy-initialized, reset when the root changes)
	mu sync.RWMutex
	fs fsys.Filesystem
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and
// config files, which can be replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("", "")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Root returns the project root directory.
func (a *App) Root() string {
	return a.config.Root
}

// Quiet reports whether progress output is suppressed.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// WatchDebounce returns the watch mode debounce window.
func (a *App) WatchDebounce() time.Duration {
	return a.config.WatchDebounce
}

// Filesystem returns the project filesystem rooted at Root, creating it
// lazily. This is thread-safe and ensures only one instance is created.
func (a *App) Filesystem() fsys.Filesystem {
	a.mu.RLock()
	if a.fs != nil {
		f := a.fs
		a.mu.RUnlock()
		return f
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.fs == nil {
		a.fs = fsys.NewOS(a.config.Root)
	}
	return a.fs
}

// Syncer returns a guidance syncer over the project filesystem, configured
// from the application configuration. Extra options are applied last.
func (a *App) Syncer(opts ...guidance.Option) (*guidance.Syncer, error) {
	base := []guidance.Option{
		guidance.WithLayout(a.config.Layout()),
		guidance.WithLogger(a.logger),
		guidance.WithQuiet(a.config.Quiet),
	}
	return guidance.New(a.Filesystem(), append(base, opts...)...)
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// setConfig replaces the configuration and drops the cached filesystem.
func (a *App) setConfig(config *Config) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.config = config
	a.fs = nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.setConfig(config)
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFilesystem sets a custom project filesystem (useful for testing).
func WithFilesystem(f fsys.Filesystem) Option {
	return func(a *App) error {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.fs = f
		return nil
	}
}
