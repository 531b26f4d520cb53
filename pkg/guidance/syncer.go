// Package guidance synchronizes a canonical tree of guidance documents into
// tool-specific derived files.
//
// Rules under .ai/rules (plus mirror-tool overrides under .ai/rules/cursor)
// are copied verbatim into .cursor/rules, commands under .ai/commands into
// .cursor/commands, and base rules plus aggregate-tool overrides under
// .ai/rules/claude are stitched into .claude/CLAUDE.md. Files in the mirror
// directories that no longer have a source are removed.
//
// Example usage:
//
//	s, err := guidance.New(fsys.NewOS("."), guidance.WithReporter(r))
//	if err != nil {
//		return err
//	}
//	report, err := s.Run(ctx)
package guidance

import (
	"context"
	"fmt"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/fsys"
)

// Syncer runs synchronization passes over a filesystem.
type Syncer struct {
	fs   fsys.Filesystem
	opts *Options
	log  *zerolog.Logger
}

// New creates a Syncer for the project rooted at f.
func New(f fsys.Filesystem, opts ...Option) (*Syncer, error) {
	if f == nil {
		return nil, errors.NewValidationError("filesystem", nil, "cannot be nil")
	}

	options := Defaults().Apply(opts...)
	options.Layout = options.Layout.Normalize()
	if err := options.Layout.Validate(); err != nil {
		return nil, err
	}

	return &Syncer{
		fs:   f,
		opts: options,
		log:  options.Logger,
	}, nil
}

// Layout returns the layout in use.
func (s *Syncer) Layout() Layout {
	return s.opts.Layout
}

// Documents discovers the current source documents.
func (s *Syncer) Documents() (*Sources, error) {
	return Discover(s.fs, s.opts.Layout)
}

// Run performs one complete synchronization pass. Every step recomputes its
// desired state from the current source tree, so Run is safe to repeat,
// including after a failed run. The context is checked between steps.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	layout := s.opts.Layout
	reporter := s.opts.reporter()
	rec := newRecorder(reporter, s.opts.DryRun)

	s.log.Debug().
		Bool("dry_run", s.opts.DryRun).
		Str("source", layout.SourceDir).
		Msg("Starting guidance sync")

	if err := s.ensureDirs(layout.TargetDirs()); err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	src, err := Discover(s.fs, layout)
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	rules := s.resolveCollisions(src.BaseRules, src.MirrorOverrides, rec)
	producedRules, rulesChanged, err := s.copyDocuments(rules, layout.MirrorRulesTarget(), rec)
	if err != nil {
		return nil, err
	}
	producedCommands, commandsChanged, err := s.copyDocuments(src.Commands, layout.MirrorCommandsTarget(), rec)
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	rulesRemoved, err := s.reconcile(layout.MirrorRulesTarget(), layout.RuleExt, producedRules, rec)
	if err != nil {
		return nil, err
	}
	commandsRemoved, err := s.reconcile(layout.MirrorCommandsTarget(), layout.CommandExt, producedCommands, rec)
	if err != nil {
		return nil, err
	}
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	generated, err := s.generateAggregate(src.BaseRules, src.AggregateOverrides, rec)
	if err != nil {
		return nil, err
	}

	report := rec.report
	report.Changed = rulesChanged || commandsChanged || rulesRemoved || commandsRemoved || generated
	report.Duration = utc.Now().Sub(report.StartedAt)

	s.log.Debug().
		Int("copied", report.Copied).
		Int("generated", report.Generated).
		Int("removed", report.Removed).
		Str("started_at", report.StartedAt.RFC3339()).
		Dur("duration", report.Duration).
		Msg("Guidance sync complete")

	reporter.Summary(report)
	return report, nil
}

// resolveCollisions returns base rules followed by mirror overrides. A base
// rule sharing its name with an override is dropped in favor of the override
// and reported as a conflict.
func (s *Syncer) resolveCollisions(base, overrides []Document, rec *recorder) []Document {
	shadowed := make(map[string]Document, len(overrides))
	for _, doc := range overrides {
		shadowed[doc.Name] = doc
	}

	docs := make([]Document, 0, len(base)+len(overrides))
	for _, doc := range base {
		override, ok := shadowed[doc.Name]
		if !ok {
			docs = append(docs, doc)
			continue
		}
		s.log.Warn().
			Str("base", doc.Path).
			Str("override", override.Path).
			Msg("Tool override shadows base rule")
		rec.record(Event{Action: ActionConflict, Source: doc.Path, Target: override.Path})
	}
	return append(docs, overrides...)
}

// ensureDirs creates each directory if missing. Dry runs create nothing.
func (s *Syncer) ensureDirs(dirs []string) error {
	if s.opts.DryRun {
		return nil
	}
	for _, dir := range dirs {
		if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.NewWriteError("mkdir", dir, err)
		}
	}
	return nil
}

// Scaffold creates the source directory skeleton and the target directories.
// It returns the directories that did not exist before.
func (s *Syncer) Scaffold(ctx context.Context) ([]string, error) {
	dirs := append(s.opts.Layout.SourceDirs(), s.opts.Layout.TargetDirs()...)

	var created []string
	for _, dir := range dirs {
		if err := checkContext(ctx); err != nil {
			return created, err
		}
		exists, err := s.fs.Exists(dir)
		if err != nil {
			return created, errors.WrapIO("stat", dir, err)
		}
		if exists {
			continue
		}
		if !s.opts.DryRun {
			if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
				return created, errors.NewWriteError("mkdir", dir, err)
			}
		}
		created = append(created, dir)
	}
	return created, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}
	return nil
}
