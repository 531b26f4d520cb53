package guidance

import (
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/sheave/pkg/errors"
)

// Metadata is the decoded leading block of a rule document. It is used
// for display only and never changes what is written to targets.
type Metadata struct {
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Globs       []string       `json:"globs,omitempty" yaml:"globs,omitempty"`
	AlwaysApply bool           `json:"alwaysApply,omitempty" yaml:"alwaysApply,omitempty"`
	Fields      map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// IsZero reports whether no metadata was found.
func (m Metadata) IsZero() bool {
	return m.Description == "" && len(m.Globs) == 0 && !m.AlwaysApply && len(m.Fields) == 0
}

// ParseMetadata decodes the leading metadata block of text as YAML and
// returns it together with the stripped body. Text without a block
// yields zero Metadata and no error.
func ParseMetadata(text string) (Metadata, string, error) {
	block, _, ok := splitMetadata(strings.TrimSpace(text))
	body := StripMetadata(text)
	if !ok || strings.TrimSpace(block) == "" {
		return Metadata{}, body, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
		return Metadata{}, body, errors.NewParseError("yaml", "", "invalid metadata block", err)
	}

	md := Metadata{Fields: fields}
	md.Description, _ = fields["description"].(string)
	md.AlwaysApply, _ = fields["alwaysApply"].(bool)

	switch globs := fields["globs"].(type) {
	case string:
		for _, g := range strings.Split(globs, ",") {
			if g = strings.TrimSpace(g); g != "" {
				md.Globs = append(md.Globs, g)
			}
		}
	case []any:
		for _, g := range globs {
			if s, ok := g.(string); ok && s != "" {
				md.Globs = append(md.Globs, s)
			}
		}
	}
	return md, body, nil
}
