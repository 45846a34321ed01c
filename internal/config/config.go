// Package config provides unified configuration loading for causalpath.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all causalpath configuration settings.
type Config struct {
	// Simulation contains defaults for dataset generation.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Output contains settings for dataset and run output.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures dataset generation defaults.
type SimulationConfig struct {
	// NumRows is the default row count for generated datasets.
	NumRows int `json:"num_rows" yaml:"num_rows"`

	// Seed, when non-nil, is the default deterministic seed. Nil means
	// seed from entropy.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// OutputConfig configures where and how results are written.
type OutputConfig struct {
	// Format is the default dataset export format: "csv" or "arrow".
	Format string `json:"format" yaml:"format"`

	// Dir is the directory for exported files. Supports ${VAR} syntax
	// for env vars. Empty means the current directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// LoggingConfig configures causalpath's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables experiment tracing to .causalpath/trace.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			NumRows: 1000,
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.causalpath/config.yaml -> environment variables
func Load() (*Config, error) {
	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".causalpath", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			cfg = fileConfig
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Output.Dir = expandEnvVars(cfg.Output.Dir)

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.NumRows <= 0 {
		return fmt.Errorf("num_rows must be positive, got %d", c.Simulation.NumRows)
	}

	validFormats := map[string]bool{"csv": true, "arrow": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (valid: csv, arrow)", c.Output.Format)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CAUSALPATH_NUM_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.NumRows = n
		}
	}

	if v := os.Getenv("CAUSALPATH_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Simulation.Seed = &n
		}
	}

	if v := os.Getenv("CAUSALPATH_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	if v := os.Getenv("CAUSALPATH_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}

	if v := os.Getenv("CAUSALPATH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if s == "" {
		return s
	}
	return os.Expand(s, os.Getenv)
}
