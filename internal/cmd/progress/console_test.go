package progress

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/sheave/pkg/guidance"
)

func TestConsoleProgress(t *testing.T) {
	tests := []struct {
		name     string
		event    guidance.Event
		expected string
	}{
		{
			name: "copied",
			event: guidance.Event{
				Action: guidance.ActionCopied,
				Source: filepath.FromSlash(".ai/rules/a.mdc"),
				Target: filepath.FromSlash(".cursor/rules/a.mdc"),
			},
			expected: "✓ Copied: .ai/rules/a.mdc -> .cursor/rules/a.mdc\n",
		},
		{
			name:     "removed",
			event:    guidance.Event{Action: guidance.ActionRemoved, Target: filepath.FromSlash(".cursor/rules/old.mdc")},
			expected: "✗ Removed old file: .cursor/rules/old.mdc\n",
		},
		{
			name:     "generated",
			event:    guidance.Event{Action: guidance.ActionGenerated, Target: filepath.FromSlash(".claude/CLAUDE.md")},
			expected: "✓ Generated: .claude/CLAUDE.md\n",
		},
		{
			name:     "generated dry run",
			event:    guidance.Event{Action: guidance.ActionGenerated, Target: filepath.FromSlash(".claude/CLAUDE.md"), DryRun: true},
			expected: "✓ Would generate: .claude/CLAUDE.md\n",
		},
		{
			name: "conflict",
			event: guidance.Event{
				Action: guidance.ActionConflict,
				Source: filepath.FromSlash(".ai/rules/style.mdc"),
				Target: filepath.FromSlash(".ai/rules/cursor/style.mdc"),
			},
			expected: "! Conflict: .ai/rules/style.mdc is shadowed by .ai/rules/cursor/style.mdc\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, false).Progress(tt.event)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestConsoleSummary(t *testing.T) {
	t.Run("no changes", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Summary(&guidance.Report{})
		assert.Equal(t, "No changes to make\n", buf.String())
	})

	t.Run("changes already reported", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Summary(&guidance.Report{Changed: true, Copied: 1})
		assert.Empty(t, buf.String())
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, true).Summary(&guidance.Report{Changed: true, Copied: 1, DryRun: true})
		assert.Equal(t, "i Summary: 1 copied, 0 generated, 0 removed (Dry run)\n", buf.String())
	})
}
