package guidance

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/sheave/pkg/constants"
)

// headerExtensions are always removed when deriving a header.
var headerExtensions = []string{"mdc", "md"}

// separators become spaces in derived headers. Hyphens are kept and
// title-cased on both sides.
var separators = strings.NewReplacer("_", " ")

// StripMetadata removes a leading metadata block and trims the remainder.
//
// A block opens with a delimiter line at the start of the text and ends at
// the next delimiter line. Text without a complete block is returned trimmed.
// Stripping repeats while the trimmed remainder opens with another complete
// block, so StripMetadata(StripMetadata(s)) == StripMetadata(s).
func StripMetadata(text string) string {
	for {
		text = strings.TrimSpace(text)
		_, rest, ok := splitMetadata(text)
		if !ok {
			return text
		}
		text = rest
	}
}

// splitMetadata cuts a complete metadata block off the start of text.
// It returns the block content between the delimiters and everything
// after the closing delimiter line.
func splitMetadata(text string) (block, rest string, ok bool) {
	first, remainder, found := strings.Cut(text, "\n")
	if !found || !isDelimiter(first) {
		return "", text, false
	}

	offset := 0
	for {
		line, _, more := strings.Cut(remainder[offset:], "\n")
		if isDelimiter(line) {
			block = remainder[:offset]
			if more {
				rest = remainder[offset+len(line)+1:]
			}
			return block, rest, true
		}
		if !more {
			return "", text, false
		}
		offset += len(line) + 1
	}
}

// isDelimiter reports whether line is a metadata delimiter line.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == constants.MetadataDelimiter
}

// DeriveHeader turns a file name into a top-level markdown heading.
// Known extensions (.mdc, .md and any given extra extensions) are removed,
// underscores become spaces and the result is title-cased. Hyphens stay in
// place, so each hyphenated part is capitalized:
//
//	DeriveHeader("code_style.mdc") == "# Code Style\n\n"
//	DeriveHeader("error-handling.md") == "# Error-Handling\n\n"
func DeriveHeader(filename string, extraExts ...string) string {
	name := filepath.Base(filename)

	seen := make(map[string]bool, len(headerExtensions)+len(extraExts))
	for _, ext := range append(append([]string{}, headerExtensions...), extraExts...) {
		ext = strings.TrimLeft(ext, ".")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		name = strings.TrimSuffix(name, "."+ext)
	}

	title := cases.Title(language.English).String(separators.Replace(name))
	return "# " + title + "\n\n"
}
