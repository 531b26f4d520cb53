// Package man implements the hidden man command, which renders a man page
// for the whole command tree.
package man

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/sheave/pkg/constants"
)

// NewCommand creates the man command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Long:   `Generate the man page for the sheave CLI tool.`,
		Hidden: true, // Mainly for packaging
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   strings.ToUpper(constants.ProgramName),
				Section: "1",
				Source:  constants.ProgramName,
				Manual:  constants.ProgramDisplay + " Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
