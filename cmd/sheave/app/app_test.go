package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/fsys"
	"github.com/agentstation/sheave/pkg/guidance"
	"github.com/agentstation/sheave/pkg/logging"
)

// newTestApp creates an app whose configuration is isolated from the
// developer's environment.
func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	root := isolate(t)
	config, err := LoadConfig("", root)
	require.NoError(t, err)

	opts = append([]Option{WithConfig(config), WithLogger(logging.NewNopLogger())}, opts...)
	app, err := New("1.0.0", "abc123", "2025-01-01", "test", opts...)
	require.NoError(t, err)
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2025-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
	assert.Equal(t, app.Config().Root, app.Root())
	assert.Equal(t, app.Config().WatchDebounce, app.WatchDebounce())
	assert.False(t, app.Quiet())
}

// TestApp_Filesystem_Singleton verifies concurrent Filesystem calls share one instance.
func TestApp_Filesystem_Singleton(t *testing.T) {
	app := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]fsys.Filesystem, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = app.Filesystem()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

// TestApp_Syncer verifies the syncer uses the configured layout.
func TestApp_Syncer(t *testing.T) {
	mem := fsys.NewMemory()
	app := newTestApp(t, WithFilesystem(mem))
	app.Config().AggregateFile = "AGENTS.md"

	syncer, err := app.Syncer()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".claude", "AGENTS.md"), syncer.Layout().AggregatePath())

	app.Config().MirrorTool = app.Config().AggregateTool
	_, err = app.Syncer()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

// TestApp_Syncer_Options verifies call-site options win.
func TestApp_Syncer_Options(t *testing.T) {
	mem := fsys.NewMemory()
	require.NoError(t, mem.MkdirAll(filepath.Join(".ai", "rules"), 0o755))
	require.NoError(t, mem.WriteFile(filepath.Join(".ai", "rules", "intro.mdc"), []byte("Hello"), 0o644))

	app := newTestApp(t, WithFilesystem(mem))
	syncer, err := app.Syncer(guidance.WithDryRun(true))
	require.NoError(t, err)

	report, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.DryRun)

	exists, err := mem.Exists(filepath.Join(".cursor", "rules", "intro.mdc"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestApp_Execute runs the CLI end to end against a temporary project.
func TestApp_Execute(t *testing.T) {
	app := newTestApp(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".ai", "rules", "intro.mdc"), "---\ndescription: Intro\n---\nHello")
	writeFile(t, filepath.Join(root, ".ai", "rules", "style.mdc"), "Be terse")
	writeFile(t, filepath.Join(root, ".cursor", "rules", "old.mdc"), "stale")

	ctx := context.Background()

	// Out of date before the first sync
	err := app.Execute(ctx, []string{"--root", root, "-q", "sync", "--check"})
	require.Error(t, err)
	assert.True(t, errors.IsOutOfDate(err))

	// The root command syncs by default
	require.NoError(t, app.Execute(ctx, []string{"--root", root, "-q"}))

	data, err := os.ReadFile(filepath.Join(root, ".claude", "CLAUDE.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Intro\n\nHello\n\n# Style\n\nBe terse\n\n", string(data))

	copied, err := os.ReadFile(filepath.Join(root, ".cursor", "rules", "intro.mdc"))
	require.NoError(t, err)
	assert.Equal(t, "---\ndescription: Intro\n---\nHello", string(copied))

	_, err = os.Stat(filepath.Join(root, ".cursor", "rules", "old.mdc"))
	assert.True(t, os.IsNotExist(err))

	// Up to date afterwards
	assert.NoError(t, app.Execute(ctx, []string{"--root", root, "-q", "sync", "--check"}))
}

// TestApp_Execute_RejectsArgs verifies unknown positional arguments fail.
func TestApp_Execute_RejectsArgs(t *testing.T) {
	app := newTestApp(t)
	err := app.Execute(context.Background(), []string{"--root", t.TempDir(), "bogus"})
	assert.Error(t, err)
}

// TestApp_SetupCommand_ContextLogger verifies subcommands receive the
// configured logger through their context, tagged with the command name.
func TestApp_SetupCommand_ContextLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	app := newTestApp(t)
	logPath := filepath.Join(t.TempDir(), "sheave.log")
	app.Config().LogFormat = "json"
	app.Config().LogOutput = logPath

	var got *zerolog.Logger
	rootCmd := app.createRootCommand()
	rootCmd.AddCommand(&cobra.Command{
		Use: "capture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = logging.FromContext(cmd.Context())
			return nil
		},
	})
	rootCmd.SetArgs([]string{"capture"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	require.NotNil(t, got)
	got.Info().Msg("from context")
	logging.Default().Info().Msg("from default")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"operation":"capture"`)
	assert.Contains(t, string(data), "from context")
	assert.Contains(t, string(data), "from default")
}

// TestApp_Shutdown verifies shutdown is a clean no-op.
func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t)
	assert.NoError(t, app.Shutdown(context.Background()))
}

// TestChangedFlags verifies only explicitly set flags are reported.
func TestChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", "", "")
	cmd.Flags().Bool("quiet", false, "")
	require.NoError(t, cmd.ParseFlags([]string{"--format", "json"}))

	assert.Equal(t, map[string]string{"format": "json"}, changedFlags(cmd))
}
