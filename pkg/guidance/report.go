package guidance

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agentstation/utc"
)

// Action is the kind of change a run reports.
type Action string

// Reported actions.
const (
	ActionCopied    Action = "copied"
	ActionRemoved   Action = "removed"
	ActionGenerated Action = "generated"
	ActionConflict  Action = "conflict"
)

// Event describes a single write, removal or conflict.
type Event struct {
	Action Action `json:"action" yaml:"action"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Target string `json:"target" yaml:"target"`
	DryRun bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
}

// Reporter receives progress while a run executes and a summary at the end.
type Reporter interface {
	// Progress is called once for every write, removal or conflict.
	Progress(Event)
	// Summary is called once after a run completes without error.
	Summary(*Report)
}

// NopReporter discards everything. Used for quiet runs.
type NopReporter struct{}

// Progress implements Reporter.
func (NopReporter) Progress(Event) {}

// Summary implements Reporter.
func (NopReporter) Summary(*Report) {}

// ProducedSet holds the destination paths written or confirmed in one
// target directory during a run.
type ProducedSet map[string]struct{}

// Add records path.
func (p ProducedSet) Add(path string) {
	p[path] = struct{}{}
}

// Has reports whether path was produced.
func (p ProducedSet) Has(path string) bool {
	_, ok := p[path]
	return ok
}

// Paths returns the produced paths in sorted order.
func (p ProducedSet) Paths() []string {
	paths := make([]string, 0, len(p))
	for path := range p {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Report is the outcome of a run.
type Report struct {
	// Counts
	Copied    int `json:"copied" yaml:"copied"`
	Generated int `json:"generated" yaml:"generated"`
	Removed   int `json:"removed" yaml:"removed"`
	Conflicts int `json:"conflicts" yaml:"conflicts"`

	// Changed is the OR of every step's change flag
	Changed bool    `json:"changed" yaml:"changed"`
	Events  []Event `json:"events,omitempty" yaml:"events,omitempty"`

	// Run metadata
	DryRun    bool          `json:"dryRun" yaml:"dryRun"`
	StartedAt utc.Time      `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// HasChanges returns true if the run wrote or removed anything
// (or would have, for a dry run).
func (r *Report) HasChanges() bool {
	return r.Changed
}

// Summary returns a human-readable summary of the run.
func (r *Report) Summary() string {
	if !r.HasChanges() {
		return "No changes to make"
	}

	summary := fmt.Sprintf("%d copied, %d generated, %d removed", r.Copied, r.Generated, r.Removed)

	var parts []string
	if r.Conflicts > 0 {
		parts = append(parts, fmt.Sprintf("(%d conflicts)", r.Conflicts))
	}
	if r.DryRun {
		parts = append(parts, "(Dry run)")
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}
	return summary
}

func (r *Report) add(e Event) {
	switch e.Action {
	case ActionCopied:
		r.Copied++
	case ActionGenerated:
		r.Generated++
	case ActionRemoved:
		r.Removed++
	case ActionConflict:
		r.Conflicts++
	}
	r.Events = append(r.Events, e)
}

// recorder fans events out to the report and the reporter.
type recorder struct {
	report   *Report
	reporter Reporter
}

func newRecorder(reporter Reporter, dryRun bool) *recorder {
	return &recorder{
		report: &Report{
			DryRun:    dryRun,
			StartedAt: utc.Now(),
		},
		reporter: reporter,
	}
}

func (r *recorder) record(e Event) {
	e.DryRun = r.report.DryRun
	r.report.add(e)
	r.reporter.Progress(e)
}
