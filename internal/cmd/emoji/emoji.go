// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across sync, list and init output.
package emoji

// Symbol constants for CLI output.
const (
	// Success marks a completed write: a copied rule, a generated aggregate, a created directory.
	Success = "✓"

	// Error marks a destructive or failed action, such as removing an orphaned file.
	Error = "✗"

	// Warning marks a non-fatal problem, such as an override shadowing a base rule.
	Warning = "!"

	// Optional marks an absent value in tables.
	Optional = "-"

	// Info marks informational lines, such as dry run summaries.
	Info = "i"
)
