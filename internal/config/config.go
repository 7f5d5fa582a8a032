// Package config loads recalc.toml: evaluation limits and custom unit
// definitions. The file is discovered by walking up from the working
// directory, the same way build tools find their manifests.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"recalc/internal/units"
)

// ManifestName is the project manifest file name.
const ManifestName = "recalc.toml"

// DefaultDeadline bounds a single expression evaluation.
const DefaultDeadline = 2 * time.Second

// DefaultMaxDiagnostics caps the diagnostics collected per expression.
const DefaultMaxDiagnostics = 64

// EvalConfig is the [eval] section.
type EvalConfig struct {
	// Deadline на одно вычисление, строка Go-длительности ("500ms", "2s").
	Deadline string `toml:"deadline"`
	// MaxDiagnostics — ёмкость сумки диагностик.
	MaxDiagnostics int `toml:"max-diagnostics"`
}

// Config is a parsed recalc.toml plus the directory it was found in.
type Config struct {
	Root  string
	Eval  EvalConfig
	Units map[string]units.Definition
}

type manifest struct {
	Eval  EvalConfig                  `toml:"eval"`
	Units map[string]units.Definition `toml:"units"`
}

// Default returns the configuration used when no manifest exists.
func Default() *Config {
	return &Config{
		Eval: EvalConfig{
			MaxDiagnostics: DefaultMaxDiagnostics,
		},
	}
}

// Deadline parses the [eval].deadline field, falling back to the default.
func (c *Config) Deadline() time.Duration {
	if c.Eval.Deadline == "" {
		return DefaultDeadline
	}
	d, err := time.ParseDuration(c.Eval.Deadline)
	if err != nil || d <= 0 {
		return DefaultDeadline
	}
	return d
}

// MaxDiagnostics returns the diagnostics cap, falling back to the default.
func (c *Config) MaxDiagnostics() int {
	if c.Eval.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return c.Eval.MaxDiagnostics
}

// ApplyUnits registers the [units.*] definitions into the given table.
func (c *Config) ApplyUnits(table *units.Table) error {
	return table.DefineAll(c.Units)
}

// Find walks up from startDir to locate recalc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile parses the manifest at path.
func LoadFile(path string) (*Config, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg := Default()
	cfg.Root = filepath.Dir(path)
	cfg.Eval.Deadline = m.Eval.Deadline
	if m.Eval.MaxDiagnostics > 0 {
		cfg.Eval.MaxDiagnostics = m.Eval.MaxDiagnostics
	}
	cfg.Units = m.Units
	return cfg, nil
}

// Load discovers and parses the manifest for startDir. Without a manifest
// the defaults are returned, not an error.
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}
