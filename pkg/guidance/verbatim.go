package guidance

import (
	"bytes"
	"io/fs"
	"path/filepath"

	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
)

// copyDocuments mirrors each document into targetDir under the same name,
// writing only when the destination differs. It returns every destination
// path it wrote or confirmed, and whether any write happened.
func (s *Syncer) copyDocuments(docs []Document, targetDir string, rec *recorder) (ProducedSet, bool, error) {
	produced := make(ProducedSet, len(docs))
	changed := false

	for _, doc := range docs {
		dest := filepath.Join(targetDir, doc.Name)

		copied, err := s.copyDocument(doc.Path, dest)
		if err != nil {
			return nil, changed, err
		}
		produced.Add(dest)

		if copied {
			changed = true
			rec.record(Event{Action: ActionCopied, Source: doc.Path, Target: dest})
		}
	}

	return produced, changed, nil
}

// copyDocument copies src to dest unless dest already holds the same bytes.
// The source mode and modification time are carried over.
func (s *Syncer) copyDocument(src, dest string) (bool, error) {
	data, err := s.fs.ReadFile(src)
	if err != nil {
		return false, errors.NewSourceReadError(src, err)
	}
	info, err := s.fs.Stat(src)
	if err != nil {
		return false, errors.NewSourceReadError(src, err)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = constants.FilePermissions
	}

	written, err := s.emit(Artifact{Path: dest, Content: data}, perm, "copy")
	if err != nil || !written || s.opts.DryRun {
		return written, err
	}
	if err := s.fs.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		return false, errors.NewWriteError("copy", dest, err)
	}
	return true, nil
}

// emit writes a unless its target already holds the same bytes, reporting
// whether a write happened (or would have, for a dry run). Write failures
// are reported as a WriteError for op. A recoverable destination read
// failure is logged and the target is overwritten.
func (s *Syncer) emit(a Artifact, perm fs.FileMode, op string) (bool, error) {
	same, err := s.unchanged(a.Path, a.Content)
	if errors.IsFatal(err) {
		return false, err
	}
	if err != nil {
		s.log.Debug().Err(err).Str("target", a.Path).Msg("Destination unreadable, overwriting")
	}
	if same {
		return false, nil
	}
	if s.opts.DryRun {
		return true, nil
	}
	if err := s.fs.WriteFile(a.Path, a.Content, perm); err != nil {
		return false, errors.NewWriteError(op, a.Path, err)
	}
	return true, nil
}

// unchanged reports whether path already holds want. A missing path
// differs; an unreadable one differs and yields a DestinationReadError.
func (s *Syncer) unchanged(path string, want []byte) (bool, error) {
	got, err := s.fs.ReadFile(path)
	switch {
	case err == nil:
		return bytes.Equal(got, want), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.NewDestinationReadError(path, err)
	}
}
