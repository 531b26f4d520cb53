// Package sync implements the sync command, which regenerates every tool
// target from the canonical guidance sources.
package sync

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/sheave/cmd/application"
	"github.com/agentstation/sheave/internal/cmd/emoji"
	"github.com/agentstation/sheave/internal/cmd/progress"
	"github.com/agentstation/sheave/internal/watch"
	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/guidance"
	"github.com/agentstation/sheave/pkg/logging"
)

// Flags holds the sync command flags.
type Flags struct {
	Check  bool // Report drift and fail instead of writing
	Watch  bool // Keep running and re-sync on source changes
	DryRun bool // Report what would change without writing
}

// NewCommand creates the sync command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Regenerate tool guidance from the canonical sources",
		Long: `Sync copies rule and command documents from the canonical source
directory to the verbatim mirror, stitches base rules and overrides into
the aggregate document, and removes mirror files with no source.

A second run without source changes writes nothing.`,
		Example: `  sheave sync              # Regenerate all targets
  sheave sync --dry-run    # Show what would change
  sheave sync --check      # Fail if targets are out of date (CI)
  sheave sync --watch      # Re-sync whenever sources change`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&flags.Check, "check", false, "exit non-zero if any target is out of date, without writing")
	cmd.Flags().BoolVarP(&flags.Watch, "watch", "w", false, "watch sources and re-sync on change")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "show what would change without writing")

	return cmd
}

// Execute runs a sync with the given flags, writing progress to out.
func Execute(ctx context.Context, app application.Application, flags *Flags, out io.Writer) error {
	if flags.Check && flags.Watch {
		return errors.NewValidationError("check", true, "cannot be combined with --watch")
	}

	reporter := progress.NewConsole(out, app.NoColor())
	syncer, err := app.Syncer(
		guidance.WithReporter(reporter),
		guidance.WithDryRun(flags.DryRun || flags.Check),
		guidance.WithLogger(logging.FromContext(ctx)),
	)
	if err != nil {
		return err
	}

	report, err := syncer.Run(ctx)
	if err != nil {
		return err
	}

	if flags.Check && report.HasChanges() {
		return fmt.Errorf("%w: %s", errors.ErrOutOfDate, report.Summary())
	}

	if flags.Watch {
		return watchSources(ctx, app, syncer, out)
	}
	return nil
}

// watchSources re-runs syncer whenever a source document changes.
func watchSources(ctx context.Context, app application.Application, syncer *guidance.Syncer, out io.Writer) error {
	layout := syncer.Layout()
	dirs := WatchDirs(app.Root(), layout)
	ctx = logging.WithTarget(ctx, layout.SourceDir)

	w, err := watch.New(dirs,
		func(ctx context.Context) error {
			_, err := syncer.Run(ctx)
			return err
		},
		watch.WithDebounce(app.WatchDebounce()),
		watch.WithLogger(logging.FromContext(ctx)),
		watch.WithFilter(SourceFilter(dirs, layout)),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Watching %s for changes (Ctrl+C to stop)\n", emoji.Info, filepath.ToSlash(layout.SourceDir))
	return w.Run(ctx)
}

// WatchDirs returns the directories to watch under root: the source
// directory itself plus every directory a run scans.
func WatchDirs(root string, layout guidance.Layout) []string {
	rel := append([]string{layout.SourceDir}, layout.SourceDirs()...)
	dirs := make([]string, 0, len(rel))
	for _, dir := range rel {
		dirs = append(dirs, filepath.Join(root, dir))
	}
	return dirs
}

// SourceFilter matches watched directories and files with a source extension.
func SourceFilter(dirs []string, layout guidance.Layout) func(path string) bool {
	exts := []string{layout.RuleExt, layout.CommandExt, layout.Aggregate.OverrideExt}
	return func(path string) bool {
		if slices.Contains(dirs, path) {
			return true
		}
		return slices.Contains(exts, strings.TrimPrefix(filepath.Ext(path), "."))
	}
}
