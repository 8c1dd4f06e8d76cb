package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/computor/pkg/parser"
)

// Config holds all parameters for solving equations.
type Config struct {
	// Format names a registered report writer: text, json or latex.
	Format string `toml:"format" yaml:"format" json:"format"`

	// Precision is the number of significant digits shown for roots.
	Precision int `toml:"precision" yaml:"precision" json:"precision"`

	Verbose  bool `toml:"verbose" yaml:"verbose" json:"verbose"`
	MaxDepth int  `toml:"max_depth" yaml:"max_depth" json:"max_depth"`

	// Steps prints the rewrite milestones before the result.
	Steps bool `toml:"steps" yaml:"steps" json:"steps"`
	Color bool `toml:"color" yaml:"color" json:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:    "text",
		Precision: 6, // significant digits; 0 = shortest exact
		Verbose:   false,
		MaxDepth:  parser.DefaultMaxDepth,
		Steps:     true,
		Color:     true,
	}
}

// LoadConfig reads a TOML or YAML file over the defaults. The format is
// chosen by extension: .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := GetWriter(c.Format); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range [0, 17]", c.Precision)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}
