package guidance_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
)

func TestListDocuments(t *testing.T) {
	f := fsys.NewMemory()
	writeFiles(t, f, map[string]string{
		".ai/rules/zeta.mdc":        "z",
		".ai/rules/alpha.mdc":       "a",
		".ai/rules/Beta.mdc":        "b",
		".ai/rules/notes.md":        "not a rule",
		".ai/rules/cursor/only.mdc": "nested",
	})
	require.NoError(t, f.MkdirAll(p(".ai/rules/dir.mdc"), 0o755))

	paths, err := guidance.ListDocuments(f, p(".ai/rules"), "mdc")
	require.NoError(t, err)
	assert.Equal(t, []string{
		p(".ai/rules/Beta.mdc"),
		p(".ai/rules/alpha.mdc"),
		p(".ai/rules/zeta.mdc"),
	}, paths)
}

func TestListDocumentsMissingDir(t *testing.T) {
	paths, err := guidance.ListDocuments(fsys.NewMemory(), p(".ai/commands"), "md")
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestDiscover(t *testing.T) {
	f := fsys.NewMemory()
	writeFiles(t, f, map[string]string{
		".ai/rules/base.mdc":         "base",
		".ai/rules/cursor/ui.mdc":    "cursor only",
		".ai/rules/claude/memory.md": "claude only",
		".ai/rules/claude/skip.mdc":  "wrong extension for claude",
		".ai/commands/review.md":     "review",
	})

	src, err := guidance.Discover(f, guidance.DefaultLayout())
	require.NoError(t, err)

	require.Len(t, src.BaseRules, 1)
	assert.Equal(t, guidance.Document{
		Path:     p(".ai/rules/base.mdc"),
		Name:     "base.mdc",
		Category: guidance.CategoryBaseRule,
	}, src.BaseRules[0])

	require.Len(t, src.MirrorOverrides, 1)
	assert.Equal(t, guidance.CategoryToolOverride, src.MirrorOverrides[0].Category)
	assert.Equal(t, "cursor", src.MirrorOverrides[0].Tool)

	require.Len(t, src.AggregateOverrides, 1)
	assert.Equal(t, "memory.md", src.AggregateOverrides[0].Name)
	assert.Equal(t, "claude", src.AggregateOverrides[0].Tool)

	require.Len(t, src.Commands, 1)
	assert.Equal(t, guidance.CategoryCommand, src.Commands[0].Category)

	want := []guidance.Document{
		{Path: p(".ai/rules/base.mdc"), Name: "base.mdc", Category: guidance.CategoryBaseRule},
		{Path: p(".ai/rules/cursor/ui.mdc"), Name: "ui.mdc", Category: guidance.CategoryToolOverride, Tool: "cursor"},
		{Path: p(".ai/rules/claude/memory.md"), Name: "memory.md", Category: guidance.CategoryToolOverride, Tool: "claude"},
		{Path: p(".ai/commands/review.md"), Name: "review.md", Category: guidance.CategoryCommand},
	}
	if diff := cmp.Diff(want, src.All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverEmptyTree(t *testing.T) {
	src, err := guidance.Discover(fsys.NewMemory(), guidance.DefaultLayout())
	require.NoError(t, err)
	assert.Empty(t, src.All())
}
