// Package config provides configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional config file looked up in the working directory
const DefaultPath = "listcols.yaml"

// Config is the root configuration structure.
type Config struct {
	Schema  SchemaConfig  `yaml:"schema"`
	Tables  []string      `yaml:"tables"`
	Logging LoggingConfig `yaml:"logging"`
}

// SchemaConfig locates the schema document.
type SchemaConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures log output. Logs always go to stderr;
// SeqURL additionally ships them to a Seq server when set.
type LoggingConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	SeqURL string `yaml:"seq_url,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback loads path if it exists, otherwise defaults plus env overrides.
// Only a missing file falls back; any other stat failure is returned.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		_, err := os.Stat(path)
		if err == nil {
			return Load(path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LISTCOLS_SCHEMA"); v != "" {
		cfg.Schema.Path = v
	}
	if v := os.Getenv("LISTCOLS_TABLES"); v != "" {
		cfg.Tables = splitList(v)
	}
	if v := os.Getenv("LISTCOLS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LISTCOLS_SEQ_URL"); v != "" {
		cfg.Logging.SeqURL = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Schema.Path == "" {
		cfg.Schema.Path = "schema.json"
	}
	if len(cfg.Tables) == 0 {
		cfg.Tables = []string{"services", "plans", "transactions"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Schema.Path) == "" {
		return fmt.Errorf("schema.path is required")
	}
	for i, table := range c.Tables {
		if strings.TrimSpace(table) == "" {
			return fmt.Errorf("tables[%d] is empty", i)
		}
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level %q: %w", l.Level, err)
	}
	return level, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
