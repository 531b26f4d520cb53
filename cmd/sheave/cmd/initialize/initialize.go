// Package initialize implements the init command, which creates the canonical
// source directory skeleton and the tool target directories.
package initialize

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/sheave/cmd/application"
	"github.com/agentstation/sheave/internal/cmd/emoji"
	"github.com/agentstation/sheave/pkg/guidance"
)

// NewCommand creates the init command.
func NewCommand(app application.Application) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "init",
		GroupID: "management",
		Short:   "Create the guidance source directories",
		Long: `Init creates the canonical source directories (rules, per-tool rule
overrides and commands) and the tool target directories. Existing
directories are left alone.`,
		Example: `  sheave init             # Create missing directories
  sheave init --dry-run   # Show what would be created`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			syncer, err := app.Syncer(guidance.WithDryRun(dryRun))
			if err != nil {
				return err
			}

			created, err := syncer.Scaffold(cmd.Context())
			out := cmd.OutOrStdout()
			label := "Created"
			if dryRun {
				label = "Would create"
			}
			for _, dir := range created {
				fmt.Fprintf(out, "%s %s: %s\n", emoji.Success, label, filepath.ToSlash(dir))
			}
			if err != nil {
				return err
			}

			if len(created) == 0 {
				fmt.Fprintln(out, "Nothing to create")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be created without writing")

	return cmd
}
