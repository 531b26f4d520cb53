// Package list implements the list command, which shows the guidance
// documents a sync would read.
package list

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/sheave/cmd/application"
	"github.com/agentstation/sheave/internal/cmd/output"
	"github.com/agentstation/sheave/internal/cmd/table"
	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Flags holds the list command flags.
type Flags struct {
	Category string
}

// Entry is one listed document in structured output.
type Entry struct {
	Category    guidance.Category `json:"category" yaml:"category"`
	Tool        string            `json:"tool,omitempty" yaml:"tool,omitempty"`
	Name        string            `json:"name" yaml:"name"`
	Path        string            `json:"path" yaml:"path"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Globs       []string          `json:"globs,omitempty" yaml:"globs,omitempty"`
	AlwaysApply bool              `json:"alwaysApply,omitempty" yaml:"alwaysApply,omitempty"`
}

var categories = []guidance.Category{
	guidance.CategoryBaseRule,
	guidance.CategoryToolOverride,
	guidance.CategoryCommand,
}

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List canonical guidance documents",
		Long: `List shows every source document a sync reads, with its category
and the description from its metadata block.

Metadata is informational only; it never changes what sync writes.`,
		Example: `  sheave list                       # Table of all documents
  sheave list -o wide               # Include globs and alwaysApply
  sheave list -o json               # Machine-readable output
  sheave list --category command    # Only command documents`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Category, "category", "", "only list one category: base-rule, tool-rule-override, command")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return errors.WrapValidation("format", err)
	}
	format = output.DetectFormat(string(format))

	if flags.Category != "" && !slices.Contains(categories, guidance.Category(flags.Category)) {
		return errors.NewValidationError("category", flags.Category, "must be one of: base-rule, tool-rule-override, command")
	}

	syncer, err := app.Syncer()
	if err != nil {
		return err
	}
	sources, err := syncer.Documents()
	if err != nil {
		return err
	}

	docs := sources.All()
	if flags.Category != "" {
		docs = slices.DeleteFunc(docs, func(d guidance.Document) bool {
			return string(d.Category) != flags.Category
		})
	}

	metadata := loadMetadata(app, docs)

	var data any
	if format.IsTabular() {
		data = table.DocumentsToTableData(docs, metadata, format == output.FormatWide)
	} else {
		data = entries(docs, metadata)
	}

	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

// loadMetadata decodes the metadata block of every document. Unreadable
// files and malformed blocks are logged and listed without metadata.
func loadMetadata(app application.Application, docs []guidance.Document) map[string]guidance.Metadata {
	logger := app.Logger()
	f := app.Filesystem()

	metadata := make(map[string]guidance.Metadata, len(docs))
	for _, doc := range docs {
		data, err := f.ReadFile(doc.Path)
		if err != nil {
			logger.Debug().Err(err).Str("path", doc.Path).Msg("Skipping metadata for unreadable document")
			continue
		}
		md, _, err := guidance.ParseMetadata(string(data))
		if err != nil {
			logger.Debug().Err(err).Str("path", doc.Path).Msg("Skipping malformed metadata")
			continue
		}
		metadata[doc.Path] = md
	}
	return metadata
}

func entries(docs []guidance.Document, metadata map[string]guidance.Metadata) []Entry {
	result := make([]Entry, 0, len(docs))
	for _, doc := range docs {
		md := metadata[doc.Path]
		result = append(result, Entry{
			Category:    doc.Category,
			Tool:        doc.Tool,
			Name:        doc.Name,
			Path:        doc.Path,
			Description: md.Description,
			Globs:       md.Globs,
			AlwaysApply: md.AlwaysApply,
		})
	}
	return result
}
