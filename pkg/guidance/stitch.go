package guidance

import "strings"

// Section is one document contributing to a stitched aggregate.
type Section struct {
	Name    string // File name, used to derive the heading
	Content string // Raw document content
}

// Stitch concatenates base sections followed by override sections into one
// document. Each non-empty section becomes a derived heading, its body and
// one blank line. Base bodies have their metadata block stripped; override
// bodies are kept as written. Sections whose body is blank are skipped.
func Stitch(base, overrides []Section, extraExts ...string) string {
	var b strings.Builder

	for _, s := range base {
		if strings.TrimSpace(s.Content) == "" {
			continue
		}
		body := StripMetadata(s.Content)
		if body == "" {
			continue
		}
		writeSection(&b, s.Name, body, extraExts)
	}

	for _, s := range overrides {
		if strings.TrimSpace(s.Content) == "" {
			continue
		}
		writeSection(&b, s.Name, s.Content, extraExts)
	}

	return b.String()
}

func writeSection(b *strings.Builder, name, body string, extraExts []string) {
	b.WriteString(DeriveHeader(name, extraExts...))
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
