package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/corecheck/internal/processor"
)

// Output formats understood by the report renderer
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds corecheck settings
type Config struct {
	Multiplier int          `yaml:"multiplier"`
	Format     string       `yaml:"format"`
	LogLevel   string       `yaml:"log_level"`
	Server     ServerConfig `yaml:"server"`
}

// ServerConfig holds settings for the local HTTP API
type ServerConfig struct {
	Bind string `yaml:"bind"`
	Port string `yaml:"port"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Multiplier: processor.DefaultMultiplier,
		Format:     FormatText,
		LogLevel:   "warn",
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: "8080",
		},
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the tool cannot use
func (c *Config) Validate() error {
	var errs []error
	if c.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("multiplier must be positive, got %d", c.Multiplier))
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is empty"))
	}
	return errors.Join(errs...)
}
