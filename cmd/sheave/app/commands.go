package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/sheave/cmd/sheave/cmd/initialize"
	"github.com/agentstation/sheave/cmd/sheave/cmd/list"
	"github.com/agentstation/sheave/cmd/sheave/cmd/man"
	synccmd "github.com/agentstation/sheave/cmd/sheave/cmd/sync"
	"github.com/agentstation/sheave/cmd/sheave/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(synccmd.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(initialize.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(man.NewCommand())
}

// runDefault runs a plain sync when no subcommand is given.
func (a *App) runDefault(cmd *cobra.Command, _ []string) error {
	return synccmd.Execute(cmd.Context(), a, &synccmd.Flags{}, cmd.OutOrStdout())
}
