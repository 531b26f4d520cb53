package initialize_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/cmd/sheave/cmd/initialize"
	"github.com/agentstation/sheave/internal/cmd/application"
)

func run(t *testing.T, mock *application.Mock, args ...string) string {
	t.Helper()
	cmd := initialize.NewCommand(mock)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return buf.String()
}

func TestInit(t *testing.T) {
	mock := &application.Mock{}

	out := run(t, mock)
	for _, dir := range []string{
		".ai/rules",
		".ai/rules/cursor",
		".ai/rules/claude",
		".ai/commands",
		".cursor/rules",
		".cursor/commands",
		".claude",
	} {
		assert.Contains(t, out, "✓ Created: "+dir+"\n")

		exists, err := mock.Filesystem().Exists(filepath.FromSlash(dir))
		require.NoError(t, err)
		assert.True(t, exists, dir)
	}

	assert.Equal(t, "Nothing to create\n", run(t, mock))
}

func TestInitDryRun(t *testing.T) {
	mock := &application.Mock{}

	out := run(t, mock, "--dry-run")
	assert.Contains(t, out, "✓ Would create: .ai/rules\n")

	exists, err := mock.Filesystem().Exists(filepath.FromSlash(".ai/rules"))
	require.NoError(t, err)
	assert.False(t, exists)
}
