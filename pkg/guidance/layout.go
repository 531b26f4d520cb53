package guidance

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
)

// Layout describes where source documents live and where derived
// files are written. All paths are relative to the project root.
type Layout struct {
	SourceDir   string // Source root, e.g. ".ai"
	RulesDir    string // Rules directory under SourceDir and under the mirror dir
	CommandsDir string // Commands directory under SourceDir and under the mirror dir
	RuleExt     string // Extension of rule documents, without the dot
	CommandExt  string // Extension of command documents, without the dot

	Mirror    MirrorTarget
	Aggregate AggregateTarget
}

// MirrorTarget is a tool that receives file-for-file copies.
type MirrorTarget struct {
	Tool string // Name of the override subdirectory under the rules dir
	Dir  string // Target directory, e.g. ".cursor"
}

// AggregateTarget is a tool that receives one stitched document.
type AggregateTarget struct {
	Tool        string // Name of the override subdirectory under the rules dir
	Dir         string // Target directory, e.g. ".claude"
	File        string // Stitched file name, e.g. "CLAUDE.md"
	OverrideExt string // Extension of aggregate override documents
}

// DefaultLayout returns the conventional .ai -> .cursor / .claude layout.
func DefaultLayout() Layout {
	return Layout{
		SourceDir:   constants.DefaultSourceDir,
		RulesDir:    constants.DefaultRulesDir,
		CommandsDir: constants.DefaultCommandsDir,
		RuleExt:     constants.DefaultRuleExt,
		CommandExt:  constants.DefaultCommandExt,
		Mirror: MirrorTarget{
			Tool: constants.DefaultMirrorTool,
			Dir:  constants.DefaultMirrorDir,
		},
		Aggregate: AggregateTarget{
			Tool:        constants.DefaultAggregateTool,
			Dir:         constants.DefaultAggregateDir,
			File:        constants.DefaultAggregateFile,
			OverrideExt: constants.DefaultAggregateOverrideExt,
		},
	}
}

// Normalize returns a copy with leading dots removed from extensions
// and surrounding whitespace trimmed from every field.
func (l Layout) Normalize() Layout {
	ext := func(s string) string {
		return strings.TrimLeft(strings.TrimSpace(s), ".")
	}
	l.SourceDir = strings.TrimSpace(l.SourceDir)
	l.RulesDir = strings.TrimSpace(l.RulesDir)
	l.CommandsDir = strings.TrimSpace(l.CommandsDir)
	l.RuleExt = ext(l.RuleExt)
	l.CommandExt = ext(l.CommandExt)
	l.Mirror.Tool = strings.TrimSpace(l.Mirror.Tool)
	l.Mirror.Dir = strings.TrimSpace(l.Mirror.Dir)
	l.Aggregate.Tool = strings.TrimSpace(l.Aggregate.Tool)
	l.Aggregate.Dir = strings.TrimSpace(l.Aggregate.Dir)
	l.Aggregate.File = strings.TrimSpace(l.Aggregate.File)
	l.Aggregate.OverrideExt = ext(l.Aggregate.OverrideExt)
	return l
}

// Validate checks that every field is set and that names which must be a
// single path element do not contain separators.
func (l Layout) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"SourceDir", l.SourceDir},
		{"RulesDir", l.RulesDir},
		{"CommandsDir", l.CommandsDir},
		{"RuleExt", l.RuleExt},
		{"CommandExt", l.CommandExt},
		{"Mirror.Tool", l.Mirror.Tool},
		{"Mirror.Dir", l.Mirror.Dir},
		{"Aggregate.Tool", l.Aggregate.Tool},
		{"Aggregate.Dir", l.Aggregate.Dir},
		{"Aggregate.File", l.Aggregate.File},
		{"Aggregate.OverrideExt", l.Aggregate.OverrideExt},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.NewValidationError(r.field, r.value, "cannot be empty")
		}
	}

	single := []struct {
		field string
		value string
	}{
		{"RuleExt", l.RuleExt},
		{"CommandExt", l.CommandExt},
		{"Mirror.Tool", l.Mirror.Tool},
		{"Aggregate.Tool", l.Aggregate.Tool},
		{"Aggregate.File", l.Aggregate.File},
		{"Aggregate.OverrideExt", l.Aggregate.OverrideExt},
	}
	for _, s := range single {
		if strings.ContainsAny(s.value, `/\`) {
			return errors.NewValidationError(s.field, s.value, "must not contain path separators")
		}
	}

	if l.Mirror.Tool == l.Aggregate.Tool {
		return errors.NewValidationError("Aggregate.Tool", l.Aggregate.Tool, "must differ from Mirror.Tool")
	}
	return nil
}

// RulesSource is the directory holding base rules.
func (l Layout) RulesSource() string {
	return filepath.Join(l.SourceDir, l.RulesDir)
}

// CommandsSource is the directory holding commands.
func (l Layout) CommandsSource() string {
	return filepath.Join(l.SourceDir, l.CommandsDir)
}

// MirrorOverrideSource is the directory holding rules only for the mirror tool.
func (l Layout) MirrorOverrideSource() string {
	return filepath.Join(l.RulesSource(), l.Mirror.Tool)
}

// AggregateOverrideSource is the directory holding rules only for the aggregate tool.
func (l Layout) AggregateOverrideSource() string {
	return filepath.Join(l.RulesSource(), l.Aggregate.Tool)
}

// MirrorRulesTarget is the directory receiving rule copies.
func (l Layout) MirrorRulesTarget() string {
	return filepath.Join(l.Mirror.Dir, l.RulesDir)
}

// MirrorCommandsTarget is the directory receiving command copies.
func (l Layout) MirrorCommandsTarget() string {
	return filepath.Join(l.Mirror.Dir, l.CommandsDir)
}

// AggregatePath is the path of the stitched document.
func (l Layout) AggregatePath() string {
	return filepath.Join(l.Aggregate.Dir, l.Aggregate.File)
}

// TargetDirs lists the directories a run makes sure exist. The project
// root itself is never listed.
func (l Layout) TargetDirs() []string {
	dirs := []string{l.MirrorRulesTarget(), l.MirrorCommandsTarget()}
	if aggregate := filepath.Clean(l.Aggregate.Dir); aggregate != "." {
		dirs = append(dirs, aggregate)
	}
	return dirs
}

// SourceDirs lists the source directories, in the order they are scanned.
func (l Layout) SourceDirs() []string {
	return []string{l.RulesSource(), l.MirrorOverrideSource(), l.AggregateOverrideSource(), l.CommandsSource()}
}

// extensions returns the configured extensions for header derivation.
func (l Layout) extensions() []string {
	return []string{l.RuleExt, l.CommandExt, l.Aggregate.OverrideExt}
}
