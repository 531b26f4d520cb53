// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"path/filepath"
	"strings"

	"github.com/agentstation/sheave/internal/cmd/emoji"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// DocumentsToTableData converts source documents to table format.
// Metadata is looked up by document path; missing entries render as "-".
func DocumentsToTableData(docs []guidance.Document, metadata map[string]guidance.Metadata, showDetails bool) Data {
	headers := []string{"Category", "Tool", "Name", "Path", "Description"}
	if showDetails {
		headers = append(headers, "Globs", "Always Apply")
	}

	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		md := metadata[doc.Path]
		row := []string{
			doc.Category.String(),
			orDash(doc.Tool),
			doc.Name,
			filepath.ToSlash(doc.Path),
			orDash(md.Description),
		}

		if showDetails {
			alwaysApply := emoji.Optional
			if md.AlwaysApply {
				alwaysApply = emoji.Success
			}
			row = append(row, orDash(strings.Join(md.Globs, ", ")), alwaysApply)
		}

		rows = append(rows, row)
	}

	alignment := make([]Align, len(headers))
	for i := range alignment {
		alignment[i] = AlignLeft
	}
	if showDetails {
		alignment[len(alignment)-1] = AlignCenter
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

func orDash(s string) string {
	if s == "" {
		return emoji.Optional
	}
	return s
}
