package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/primecount/internal/errors"
)

// resolveConfigPath returns the YAML file to load: the --config flag, then
// PRIMECOUNT_CONFIG.
func resolveConfigPath(flagValue string, fs *flag.FlagSet) string {
	if isFlagSet(fs, "config") {
		return flagValue
	}
	return getEnvString("CONFIG", flagValue)
}

// fileConfig mirrors AppConfig with pointer fields, so that keys absent
// from the file can be told apart from zero values.
type fileConfig struct {
	N           *uint64 `yaml:"n"`
	Workers     *int    `yaml:"workers"`
	Policy      *string `yaml:"policy"`
	Repeat      *int    `yaml:"repeat"`
	MergeOnJoin *bool   `yaml:"merge_on_join"`
	Verbose     *bool   `yaml:"verbose"`
	Details     *bool   `yaml:"details"`
	Quiet       *bool   `yaml:"quiet"`
	List        *bool   `yaml:"list"`
	TUI         *bool   `yaml:"tui"`
	NoColor     *bool   `yaml:"no_color"`
	OutputFile  *string `yaml:"output"`
	MetricsFile *string `yaml:"metrics_file"`
	LogLevel    *string `yaml:"log_level"`
	Theme       *string `yaml:"theme"`
}

// loadFile reads a YAML configuration file. Unknown keys are rejected.
func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, apperrors.NewConfigError("reading config file: %v", err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	return fc, nil
}

// mergeFile copies values present in the file into cfg, except those whose
// flag was set explicitly on the command line.
func mergeFile(cfg AppConfig, fc fileConfig, fs *flag.FlagSet) AppConfig {
	set := func(names ...string) bool { return isFlagSetAny(fs, names...) }

	if fc.N != nil && !set("n") {
		cfg.N = *fc.N
	}
	if fc.Workers != nil && !set("workers", "w") {
		cfg.Workers = *fc.Workers
	}
	if fc.Policy != nil && !set("policy") {
		cfg.Policy = *fc.Policy
	}
	if fc.Repeat != nil && !set("repeat") {
		cfg.Repeat = *fc.Repeat
	}
	if fc.MergeOnJoin != nil && !set("merge-on-join") {
		cfg.MergeOnJoin = *fc.MergeOnJoin
	}
	if fc.Verbose != nil && !set("verbose", "v") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Details != nil && !set("details", "d") {
		cfg.Details = *fc.Details
	}
	if fc.Quiet != nil && !set("quiet", "q") {
		cfg.Quiet = *fc.Quiet
	}
	if fc.List != nil && !set("list") {
		cfg.List = *fc.List
	}
	if fc.TUI != nil && !set("tui") {
		cfg.TUI = *fc.TUI
	}
	if fc.NoColor != nil && !set("no-color") {
		cfg.NoColor = *fc.NoColor
	}
	if fc.OutputFile != nil && !set("output", "o") {
		cfg.OutputFile = *fc.OutputFile
	}
	if fc.MetricsFile != nil && !set("metrics-file") {
		cfg.MetricsFile = *fc.MetricsFile
	}
	if fc.LogLevel != nil && !set("log-level") {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Theme != nil && !set("theme") {
		cfg.Theme = *fc.Theme
	}
	return cfg
}
