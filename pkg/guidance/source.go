package guidance

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/fsys"
)

// Category classifies a source document.
type Category string

// Document categories.
const (
	CategoryBaseRule     Category = "base-rule"
	CategoryToolOverride Category = "tool-rule-override"
	CategoryCommand      Category = "command"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Document is a source document discovered during a run.
type Document struct {
	Path     string   `json:"path" yaml:"path"`                     // Relative to the filesystem root
	Name     string   `json:"name" yaml:"name"`                     // File name
	Category Category `json:"category" yaml:"category"`             // Kind of document
	Tool     string   `json:"tool,omitempty" yaml:"tool,omitempty"` // Owning tool for overrides
}

// ListDocuments returns the paths of regular files in dir whose name ends
// in "."+ext, sorted by name. Subdirectories are not descended into.
// A missing directory yields an empty result.
func ListDocuments(f fsys.Filesystem, dir, ext string) ([]string, error) {
	return listEntries(f, dir, ext, func(path string, entry os.FileInfo) bool {
		return isRegular(f, path, entry)
	})
}

// listTargets is ListDocuments for reconciliation: symlinks are kept
// without being resolved so that dangling links are found too.
func listTargets(f fsys.Filesystem, dir, ext string) ([]string, error) {
	return listEntries(f, dir, ext, func(_ string, entry os.FileInfo) bool {
		return entry.Mode().IsRegular() || entry.Mode()&os.ModeSymlink != 0
	})
}

func listEntries(f fsys.Filesystem, dir, ext string, keep func(path string, entry os.FileInfo) bool) ([]string, error) {
	exists, err := f.Exists(dir)
	if err != nil {
		return nil, errors.WrapIO("list", dir, err)
	}
	if !exists {
		return []string{}, nil
	}

	entries, err := f.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("list", dir, err)
	}

	suffix := "." + ext
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		if !keep(filepath.Join(dir, name), entry) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	names = slices.Compact(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(f fsys.Filesystem, path string, entry os.FileInfo) bool {
	if entry.Mode().IsRegular() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	info, err := f.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// documents converts listed paths into categorized documents.
func documents(paths []string, category Category, tool string) []Document {
	docs := make([]Document, len(paths))
	for i, p := range paths {
		docs[i] = Document{
			Path:     p,
			Name:     filepath.Base(p),
			Category: category,
			Tool:     tool,
		}
	}
	return docs
}

// Sources groups the documents found in one scan of the source tree.
type Sources struct {
	BaseRules          []Document
	MirrorOverrides    []Document
	AggregateOverrides []Document
	Commands           []Document
}

// All returns every document in scan order.
func (s *Sources) All() []Document {
	all := make([]Document, 0, len(s.BaseRules)+len(s.MirrorOverrides)+len(s.AggregateOverrides)+len(s.Commands))
	all = append(all, s.BaseRules...)
	all = append(all, s.MirrorOverrides...)
	all = append(all, s.AggregateOverrides...)
	all = append(all, s.Commands...)
	return all
}

// Discover lists every source document described by layout.
func Discover(f fsys.Filesystem, layout Layout) (*Sources, error) {
	list := func(dir, ext string, category Category, tool string) ([]Document, error) {
		paths, err := ListDocuments(f, dir, ext)
		if err != nil {
			return nil, err
		}
		return documents(paths, category, tool), nil
	}

	var (
		src Sources
		err error
	)
	if src.BaseRules, err = list(layout.RulesSource(), layout.RuleExt, CategoryBaseRule, ""); err != nil {
		return nil, err
	}
	if src.MirrorOverrides, err = list(layout.MirrorOverrideSource(), layout.RuleExt, CategoryToolOverride, layout.Mirror.Tool); err != nil {
		return nil, err
	}
	if src.AggregateOverrides, err = list(layout.AggregateOverrideSource(), layout.Aggregate.OverrideExt, CategoryToolOverride, layout.Aggregate.Tool); err != nil {
		return nil, err
	}
	if src.Commands, err = list(layout.CommandsSource(), layout.CommandExt, CategoryCommand, ""); err != nil {
		return nil, err
	}
	return &src, nil
}
