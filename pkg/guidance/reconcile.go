package guidance

import (
	"github.com/agentstation/sheave/pkg/errors"
)

// reconcile removes every file in dir with the given extension that was not
// produced during this run. Symlinks are matched by name, dangling or not.
// A missing dir has nothing to reconcile.
func (s *Syncer) reconcile(dir, ext string, produced ProducedSet, rec *recorder) (bool, error) {
	existing, err := listTargets(s.fs, dir, ext)
	if err != nil {
		return false, err
	}

	changed := false
	for _, path := range existing {
		if produced.Has(path) {
			continue
		}
		if !s.opts.DryRun {
			if err := s.fs.Remove(path); err != nil {
				return changed, errors.NewWriteError("remove", path, err)
			}
		}
		changed = true
		rec.record(Event{Action: ActionRemoved, Target: path})
	}

	return changed, nil
}
