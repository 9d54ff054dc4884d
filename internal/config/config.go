// Package config parses and validates the application configuration.
// Values come, highest priority first, from command-line flags, PRIMECOUNT_
// environment variables, an optional YAML file, and built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/orchestration"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "PRIMECOUNT_"

// Default values.
const (
	DefaultN        = 100_000
	DefaultPolicy   = "interleaved"
	DefaultRepeat   = 1
	DefaultLogLevel = "warn"
	DefaultTheme    = "dark"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	// N is the domain size; items are counted in [0, N).
	N uint64 `yaml:"n"`
	// Workers is the worker count. 0 selects the available parallelism.
	Workers int `yaml:"workers"`
	// Policy is "block", "interleaved" or "compare".
	Policy string `yaml:"policy"`
	// Repeat runs the same configuration several times.
	Repeat int `yaml:"repeat"`
	// MergeOnJoin defers merges until after the join.
	MergeOnJoin bool `yaml:"merge_on_join"`

	Verbose bool `yaml:"verbose"`
	Details bool `yaml:"details"`
	Quiet   bool `yaml:"quiet"`
	List    bool `yaml:"list"`
	TUI     bool `yaml:"tui"`
	NoColor bool `yaml:"no_color"`
	// Theme is "dark", "light" or "none". NoColor wins over it.
	Theme string `yaml:"theme"`

	// OutputFile receives the sorted matches, one per line.
	OutputFile string `yaml:"output"`
	// MetricsFile receives a Prometheus text exposition of the run.
	MetricsFile string `yaml:"metrics_file"`
	LogLevel    string `yaml:"log_level"`

	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		N:        DefaultN,
		Policy:   DefaultPolicy,
		Repeat:   DefaultRepeat,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
	}
}

// ParseConfig parses the command-line arguments and builds the effective
// configuration.
//
// Parameters:
//   - programName: The name of the program, used in usage messages.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Receives flag parsing errors and usage.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := Default()
	fs.Uint64Var(&config.N, "n", config.N, "Domain size: count primes in [0, n).")
	fs.IntVar(&config.Workers, "workers", config.Workers, "Number of workers (0 = available parallelism).")
	fs.IntVar(&config.Workers, "w", config.Workers, "Number of workers (shorthand).")
	fs.StringVar(&config.Policy, "policy", config.Policy, "Partition policy: 'block', 'interleaved' or 'compare'.")
	fs.IntVar(&config.Repeat, "repeat", config.Repeat, "Number of runs of the same configuration.")
	fs.BoolVar(&config.MergeOnJoin, "merge-on-join", false, "Merge local results after the join instead of from each worker.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print one timing line per worker.")
	fs.BoolVar(&config.Verbose, "v", false, "Print one timing line per worker (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display timing spread and memory statistics.")
	fs.BoolVar(&config.Details, "d", false, "Display details (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print only the count.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.List, "list", false, "Print matched items in ascending order.")
	fs.StringVar(&config.OutputFile, "output", "", "Write sorted matches to a file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to a file.")
	fs.StringVar(&config.ConfigFile, "config", "", "YAML configuration file.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn, error.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", config.Theme, "Color theme: 'dark', 'light' or 'none'.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if path := resolveConfigPath(config.ConfigFile, fs); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		config = mergeFile(config, fileCfg, fs)
		config.ConfigFile = path
	}
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	if err := orchestration.CheckDomainSize(c.N); err != nil {
		return err
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count must be at least 1, got %d", c.Workers)
	}
	if c.Repeat < 1 {
		return apperrors.NewConfigError("repeat count must be at least 1, got %d", c.Repeat)
	}
	if _, err := orchestration.PoliciesToRun(c.Policy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level %q", c.LogLevel)
	}
	switch c.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q", c.Theme)
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui cannot be combined")
	}
	if c.Repeat > 1 && strings.EqualFold(c.Policy, orchestration.CompareMode) {
		return apperrors.NewConfigError("--repeat cannot be combined with --policy compare")
	}
	return nil
}

// IsCompare reports whether every policy should be run and compared.
func (c AppConfig) IsCompare() bool {
	return strings.EqualFold(strings.TrimSpace(c.Policy), orchestration.CompareMode)
}
