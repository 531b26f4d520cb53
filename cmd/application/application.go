// Package application provides the application interface for sheave commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            syncer, err := app.Syncer()
//	            if err != nil {
//	                return err
//	            }
//	            _, err = syncer.Run(cmd.Context())
//	            return err
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{}
//	mock.FS = fsys.NewMemory()
//	cmd := NewCommand(mock)
//	// ... test command behavior against the in-memory tree
package application

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Application provides the application interface that commands need.
// The App struct from cmd/sheave/app implements this interface.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Application interface {
	// Syncer returns a guidance syncer over the project filesystem, configured
	// with the layout, logger and quiet setting from configuration. Extra
	// options are applied last.
	Syncer(opts ...guidance.Option) (*guidance.Syncer, error)

	// Filesystem returns the project filesystem rooted at Root.
	Filesystem() fsys.Filesystem

	// Root returns the project root directory.
	Root() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// Quiet reports whether progress output is suppressed.
	Quiet() bool

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// WatchDebounce returns how long source changes must settle before a watch re-run.
	WatchDebounce() time.Duration

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
