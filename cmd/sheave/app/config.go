package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/sheave/pkg/constants"
	"github.com/agentstation/sheave/pkg/errors"
	"github.com/agentstation/sheave/pkg/guidance"
	"github.com/agentstation/sheave/pkg/logging"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file actually read, if any
	ConfigFile string

	// Project root all layout paths are relative to
	Root string

	// Source layout
	SourceDir   string
	RulesDir    string
	CommandsDir string
	RuleExt     string
	CommandExt  string

	// Target layout
	MirrorTool           string
	MirrorDir            string
	AggregateTool        string
	AggregateDir         string
	AggregateFile        string
	AggregateOverrideExt string

	// Watch mode
	WatchDebounce time.Duration

	// Logging configuration
	LogLevel        string // --log-level flag; wins over everything
	DefaultLogLevel string // From config or environment
	LogFormat       string
	LogOutput       string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (SHEAVE_*)
// 3. .env.local and .env files in the project root
// 4. Config file (.sheave.yaml in the project root, then $HOME)
// 5. Defaults
//
// An empty configFile searches the standard locations. An empty root uses
// SHEAVE_ROOT or the current directory.
func LoadConfig(configFile, root string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if root == "" {
		root = v.GetString("root")
	}

	// .env files may set SHEAVE_* variables, so load them before reading values
	loadEnvFiles(root)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(constants.ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),
		Root:       root,

		SourceDir:   v.GetString("source_dir"),
		RulesDir:    v.GetString("rules_dir"),
		CommandsDir: v.GetString("commands_dir"),
		RuleExt:     v.GetString("rule_ext"),
		CommandExt:  v.GetString("command_ext"),

		MirrorTool:           v.GetString("mirror.tool"),
		MirrorDir:            v.GetString("mirror.dir"),
		AggregateTool:        v.GetString("aggregate.tool"),
		AggregateDir:         v.GetString("aggregate.dir"),
		AggregateFile:        v.GetString("aggregate.file"),
		AggregateOverrideExt: v.GetString("aggregate.override_ext"),

		WatchDebounce: v.GetDuration("watch_debounce"),

		DefaultLogLevel: v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LogOutput:       v.GetString("log_output"),
	}

	if config.WatchDebounce <= 0 {
		config.WatchDebounce = constants.DefaultWatchDebounce
	}

	return config, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("no_color", false)
	v.SetDefault("format", "")

	v.SetDefault("source_dir", constants.DefaultSourceDir)
	v.SetDefault("rules_dir", constants.DefaultRulesDir)
	v.SetDefault("commands_dir", constants.DefaultCommandsDir)
	v.SetDefault("rule_ext", constants.DefaultRuleExt)
	v.SetDefault("command_ext", constants.DefaultCommandExt)

	v.SetDefault("mirror.tool", constants.DefaultMirrorTool)
	v.SetDefault("mirror.dir", constants.DefaultMirrorDir)
	v.SetDefault("aggregate.tool", constants.DefaultAggregateTool)
	v.SetDefault("aggregate.dir", constants.DefaultAggregateDir)
	v.SetDefault("aggregate.file", constants.DefaultAggregateFile)
	v.SetDefault("aggregate.override_ext", constants.DefaultAggregateOverrideExt)

	v.SetDefault("watch_debounce", constants.DefaultWatchDebounce)

	// Unprefixed LOG_* variables are honored too
	v.SetDefault("log_level", logging.EnvOrDefault("LOG_LEVEL", "info"))
	v.SetDefault("log_format", logging.EnvOrDefault("LOG_FORMAT", "auto"))
	v.SetDefault("log_output", logging.EnvOrDefault("LOG_OUTPUT", "stderr"))
}

// Layout returns the guidance layout described by the configuration.
func (c *Config) Layout() guidance.Layout {
	return guidance.Layout{
		SourceDir:   c.SourceDir,
		RulesDir:    c.RulesDir,
		CommandsDir: c.CommandsDir,
		RuleExt:     c.RuleExt,
		CommandExt:  c.CommandExt,
		Mirror: guidance.MirrorTarget{
			Tool: c.MirrorTool,
			Dir:  c.MirrorDir,
		},
		Aggregate: guidance.AggregateTarget{
			Tool:        c.AggregateTool,
			Dir:         c.AggregateDir,
			File:        c.AggregateFile,
			OverrideExt: c.AggregateOverrideExt,
		},
	}
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevel = logLevel
}

// loadEnvFiles loads environment variables from .env files in root.
// Variables already set are never overwritten, so .env.local is loaded
// first to take precedence over .env.
func loadEnvFiles(root string) {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}
