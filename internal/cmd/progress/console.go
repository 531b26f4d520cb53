// Package progress renders guidance sync progress for the terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/sheave/internal/cmd/emoji"
	"github.com/agentstation/sheave/pkg/guidance"
)

// Console prints one line per change and a closing line when nothing changed.
type Console struct {
	out     io.Writer
	success *color.Color
	removed *color.Color
	warning *color.Color
	info    *color.Color
}

var _ guidance.Reporter = (*Console)(nil)

// NewConsole creates a Console writing to w. Color is used only when w is a
// terminal and neither noColor nor NO_COLOR is set.
func NewConsole(w io.Writer, noColor bool) *Console {
	c := &Console{
		out:     w,
		success: color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		warning: color.New(color.FgYellow),
		info:    color.New(color.FgCyan),
	}

	enabled := !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(w)
	for _, col := range []*color.Color{c.success, c.removed, c.warning, c.info} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Progress implements guidance.Reporter.
func (c *Console) Progress(e guidance.Event) {
	source := filepath.ToSlash(e.Source)
	target := filepath.ToSlash(e.Target)

	switch e.Action {
	case guidance.ActionCopied:
		c.line(c.success, emoji.Success, verb(e, "Copied", "Would copy"), source+" -> "+target)
	case guidance.ActionRemoved:
		c.line(c.removed, emoji.Error, verb(e, "Removed old file", "Would remove old file"), target)
	case guidance.ActionGenerated:
		c.line(c.success, emoji.Success, verb(e, "Generated", "Would generate"), target)
	case guidance.ActionConflict:
		c.line(c.warning, emoji.Warning, "Conflict", source+" is shadowed by "+target)
	}
}

// Summary implements guidance.Reporter.
func (c *Console) Summary(r *guidance.Report) {
	switch {
	case !r.HasChanges():
		fmt.Fprintln(c.out, r.Summary())
	case r.DryRun:
		c.line(c.info, emoji.Info, "Summary", r.Summary())
	}
}

func (c *Console) line(col *color.Color, symbol, label, detail string) {
	fmt.Fprintf(c.out, "%s %s %s\n", col.Sprint(symbol), col.Sprint(label+":"), detail)
}

func verb(e guidance.Event, done, planned string) string {
	if e.DryRun {
		return planned
	}
	return done
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
