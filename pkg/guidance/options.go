package guidance

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/pkg/logging"
)

// Options controls a synchronization run.
type Options struct {
	Layout   Layout          // Source and target locations
	DryRun   bool            // Compute and report changes without writing
	Quiet    bool            // Suppress progress and summary reporting
	Reporter Reporter        // Receives progress and summary
	Logger   *zerolog.Logger // Diagnostics (recovered errors, conflicts)
}

// Option is a function that configures Options.
type Option func(*Options)

// Defaults returns the default options.
func Defaults() *Options {
	return &Options{
		Layout:   DefaultLayout(),
		DryRun:   false,
		Quiet:    false,
		Reporter: NopReporter{},
		Logger:   logging.NewNopLogger(),
	}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// reporter returns the reporter to use, honoring Quiet.
func (o *Options) reporter() Reporter {
	if o.Quiet || o.Reporter == nil {
		return NopReporter{}
	}
	return o.Reporter
}

// WithLayout sets the source and target layout.
func WithLayout(layout Layout) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// WithQuiet suppresses progress and summary reporting.
func WithQuiet(quiet bool) Option {
	return func(o *Options) {
		o.Quiet = quiet
	}
}

// WithReporter sets the progress reporter.
func WithReporter(reporter Reporter) Option {
	return func(o *Options) {
		o.Reporter = reporter
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
