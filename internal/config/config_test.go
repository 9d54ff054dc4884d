package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/agbru/primecount/internal/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig("primecount", nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != DefaultN || cfg.Policy != DefaultPolicy || cfg.Repeat != 1 || cfg.Workers != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestParseConfigFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, c AppConfig)
	}{
		{"n", []string{"-n", "500"}, func(t *testing.T, c AppConfig) {
			if c.N != 500 {
				t.Errorf("N = %d", c.N)
			}
		}},
		{"short workers", []string{"-w", "8"}, func(t *testing.T, c AppConfig) {
			if c.Workers != 8 {
				t.Errorf("Workers = %d", c.Workers)
			}
		}},
		{"long workers", []string{"--workers", "3"}, func(t *testing.T, c AppConfig) {
			if c.Workers != 3 {
				t.Errorf("Workers = %d", c.Workers)
			}
		}},
		{"compare", []string{"--policy", "compare"}, func(t *testing.T, c AppConfig) {
			if !c.IsCompare() {
				t.Error("IsCompare() = false")
			}
		}},
		{"booleans", []string{"-v", "-d", "--list", "--merge-on-join", "--no-color"}, func(t *testing.T, c AppConfig) {
			if !c.Verbose || !c.Details || !c.List || !c.MergeOnJoin || !c.NoColor {
				t.Errorf("booleans not set: %+v", c)
			}
		}},
		{"output shorthand", []string{"-o", "primes.txt"}, func(t *testing.T, c AppConfig) {
			if c.OutputFile != "primes.txt" {
				t.Errorf("OutputFile = %q", c.OutputFile)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("primecount", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
	}{
		{"negative workers", []string{"-w", "-1"}, true},
		{"domain too large", []string{"-n", "18446744073709551615"}, true},
		{"unknown policy", []string{"--policy", "striped"}, true},
		{"zero repeat", []string{"--repeat", "0"}, true},
		{"bad log level", []string{"--log-level", "chatty"}, true},
		{"unknown theme", []string{"--theme", "sepia"}, true},
		{"quiet with tui", []string{"-q", "--tui"}, true},
		{"repeat with compare", []string{"--repeat", "2", "--policy", "compare"}, true},
		{"positional argument", []string{"extra"}, true},
		{"unknown flag", []string{"--bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("primecount", tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr apperrors.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantConfig {
				t.Errorf("errors.As(ConfigError) = %v, want %v (err: %v)", got, tt.wantConfig, err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := ParseConfig("primecount", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRIMECOUNT_N", "1234")
	t.Setenv("PRIMECOUNT_WORKERS", "6")
	t.Setenv("PRIMECOUNT_POLICY", "block")
	t.Setenv("PRIMECOUNT_VERBOSE", "yes")
	t.Setenv("PRIMECOUNT_NO_COLOR", "1")

	cfg, err := ParseConfig("primecount", []string{"-w", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != 1234 {
		t.Errorf("N = %d, want 1234 from env", cfg.N)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2: flags win over env", cfg.Workers)
	}
	if cfg.Policy != "block" || !cfg.Verbose || !cfg.NoColor {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvOverridesIgnoreInvalidValues(t *testing.T) {
	t.Setenv("PRIMECOUNT_N", "lots")
	t.Setenv("PRIMECOUNT_QUIET", "maybe")

	cfg, err := ParseConfig("primecount", nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != DefaultN || cfg.Quiet {
		t.Errorf("invalid env values should be ignored: %+v", cfg)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "primecount.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFilePrecedence(t *testing.T) {
	path := writeFile(t, `
n: 5000
workers: 4
policy: block
repeat: 3
details: true
log_level: info
`)
	t.Setenv("PRIMECOUNT_WORKERS", "7")

	cfg, err := ParseConfig("primecount", []string{"--config", path, "--repeat", "2"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != 5000 || cfg.Policy != "block" || !cfg.Details || cfg.LogLevel != "info" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Workers != 7 {
		t.Errorf("Workers = %d, want 7: env wins over file", cfg.Workers)
	}
	if cfg.Repeat != 2 {
		t.Errorf("Repeat = %d, want 2: flags win over file", cfg.Repeat)
	}
	if cfg.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, path)
	}
}

func TestConfigFileFromEnv(t *testing.T) {
	path := writeFile(t, "n: 42\n")
	t.Setenv("PRIMECOUNT_CONFIG", path)

	cfg, err := ParseConfig("primecount", nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != 42 {
		t.Errorf("N = %d, want 42", cfg.N)
	}
}

func TestConfigFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.yaml") }},
		{"unknown key", func(t *testing.T) string { return writeFile(t, "threads: 4\n") }},
		{"wrong type", func(t *testing.T) string { return writeFile(t, "workers: many\n") }},
		{"invalid value", func(t *testing.T) string { return writeFile(t, "policy: random\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("primecount", []string{"--config", tt.path(t)}, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestEmptyConfigFile(t *testing.T) {
	path := writeFile(t, "")
	cfg, err := ParseConfig("primecount", []string{"--config", path}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.N != DefaultN {
		t.Errorf("N = %d, want default", cfg.N)
	}
}
