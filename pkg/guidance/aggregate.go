package guidance

import (
	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
)

// Artifact is computed target content awaiting compare-and-write.
type Artifact struct {
	Path    string
	Content []byte
}

// generateAggregate stitches base rules and aggregate overrides into the
// aggregate document, writing it only when the content differs.
func (s *Syncer) generateAggregate(base, overrides []Document, rec *recorder) (bool, error) {
	baseSections, err := s.sections(base)
	if err != nil {
		return false, err
	}
	overrideSections, err := s.sections(overrides)
	if err != nil {
		return false, err
	}

	artifact := Artifact{
		Path:    s.opts.Layout.AggregatePath(),
		Content: []byte(Stitch(baseSections, overrideSections, s.opts.Layout.extensions()...)),
	}

	written, err := s.emit(artifact, constants.FilePermissions, "generate")
	if err != nil || !written {
		return false, err
	}

	rec.record(Event{Action: ActionGenerated, Target: artifact.Path})
	return true, nil
}

// sections reads docs in order.
func (s *Syncer) sections(docs []Document) ([]Section, error) {
	sections := make([]Section, 0, len(docs))
	for _, doc := range docs {
		data, err := s.fs.ReadFile(doc.Path)
		if err != nil {
			return nil, errors.NewSourceReadError(doc.Path, err)
		}
		sections = append(sections, Section{Name: doc.Name, Content: string(data)})
	}
	return sections, nil
}
