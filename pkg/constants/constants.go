// Package constants provides shared constants used throughout the sheave codebase.
// This includes program identity, file permissions, default layout names and
// other values that should be consistent across the application.
package constants

import "time"

// Program identity constants
const (
	// ProgramName is the CLI executable name and config file base name
	ProgramName = "sheave"

	// ProgramDisplay is the human-readable name for banners and help text
	ProgramDisplay = "Sheave"

	// EnvPrefix is the prefix for program-specific environment variables (SHEAVE_LOG_LEVEL, ...)
	EnvPrefix = "SHEAVE"

	// Description is the short tagline used in help screens
	Description = "Presets for guiding agentic AI workflows."

	// ConfigFileName is the config file name searched for (without extension)
	ConfigFileName = "." + ProgramName
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default source layout
const (
	// DefaultSourceDir is the canonical authoring location relative to the project root
	DefaultSourceDir = ".ai"

	// DefaultRulesDir holds base rule documents and per-tool override subdirectories
	DefaultRulesDir = "rules"

	// DefaultCommandsDir holds command documents
	DefaultCommandsDir = "commands"

	// DefaultRuleExt is the extension of rule documents
	DefaultRuleExt = "mdc"

	// DefaultCommandExt is the extension of command documents
	DefaultCommandExt = "md"
)

// Default target layout
const (
	// DefaultMirrorTool names the override subdirectory of the verbatim mirror consumer
	DefaultMirrorTool = "cursor"

	// DefaultMirrorDir is the mirror consumer's directory
	DefaultMirrorDir = ".cursor"

	// DefaultAggregateTool names the override subdirectory of the stitched consumer
	DefaultAggregateTool = "claude"

	// DefaultAggregateDir is the stitched consumer's directory
	DefaultAggregateDir = ".claude"

	// DefaultAggregateFile is the stitched document's file name
	DefaultAggregateFile = "CLAUDE.md"

	// DefaultAggregateOverrideExt is the extension of stitched-consumer override documents
	DefaultAggregateOverrideExt = "md"
)

// Document format constants
const (
	// MetadataDelimiter opens and closes the optional leading metadata block
	MetadataDelimiter = "---"
)

// Watch constants
const (
	// DefaultWatchDebounce batches rapid editor saves into a single run
	DefaultWatchDebounce = 300 * time.Millisecond

	// WatchTickInterval is how often pending watch events are checked
	WatchTickInterval = 100 * time.Millisecond

	// ShutdownTimeout bounds graceful shutdown after an error
	ShutdownTimeout = 5 * time.Second
)
