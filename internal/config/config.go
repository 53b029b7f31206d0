package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Environment variables honored by Resolve, and the optional per-directory
// config file name.
const (
	EnvDir   = "PLEDGER_DIR"
	EnvBin   = "PLEDGER_BIN"
	FileName = ".pledger-chart.yaml"
)

// ErrNoDirectory is returned when no ledger directory could be determined.
var ErrNoDirectory = errors.New("ledger directory not given (pass a directory argument or set PLEDGER_DIR)")

// Config carries everything a chart run needs. LedgerDir comes from the
// positional argument or PLEDGER_DIR, never from the file.
type Config struct {
	LedgerDir  string `yaml:"-"`
	PledgerBin string `yaml:"pledger_bin"`
	Output     string `yaml:"output"`
	Title      string `yaml:"title"`
	Jobs       int    `yaml:"jobs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PledgerBin: "pledger",
		Title:      "pledger",
		Jobs:       runtime.NumCPU(),
	}
}

// Load reads a YAML config file from disk. Fields absent from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration for a run. dirArg is the
// positional directory argument, empty when absent. Sources are applied in
// increasing precedence: defaults, then the optional .pledger-chart.yaml in
// the ledger directory, then environment. Flag overrides are the caller's
// job, on top of the returned Config.
func Resolve(dirArg string) (*Config, error) {
	dir := dirArg
	if dir == "" {
		dir = os.Getenv(EnvDir)
	}
	if dir == "" {
		return nil, ErrNoDirectory
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid ledger directory %q: not a directory", dir)
	}

	cfg := Default()
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	cfg.LedgerDir = dir

	if bin := os.Getenv(EnvBin); bin != "" {
		cfg.PledgerBin = bin
	}
	return cfg, nil
}
