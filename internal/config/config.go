// Package config holds the server configuration, loadable from a YAML
// file with flag overrides applied by the caller.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RateLimit shapes the limiter guarding the solve endpoint.
type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Config struct {
	ListenAddr       string    `yaml:"listen_addr"`
	LogLevel         string    `yaml:"log_level"`
	LogFormat        string    `yaml:"log_format"`
	BoardSize        int       `yaml:"board_size"`
	Heuristic        string    `yaml:"heuristic"`
	DefaultAlgorithm string    `yaml:"default_algorithm"`
	MaxExpansions    int       `yaml:"max_expansions"`
	RateLimit        RateLimit `yaml:"rate_limit"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ListenAddr:       ":8080",
		LogLevel:         "info",
		LogFormat:        "console",
		BoardSize:        3,
		Heuristic:        "manhattan",
		DefaultAlgorithm: "a_star",
		MaxExpansions:    200000,
		RateLimit:        RateLimit{RPS: 10, Burst: 20},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the wiring cannot work with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.BoardSize < 2 {
		return fmt.Errorf("board_size must be at least 2, got %d", c.BoardSize)
	}
	if c.MaxExpansions < 1 {
		return fmt.Errorf("max_expansions must be positive, got %d", c.MaxExpansions)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit values must not be negative")
	}
	return nil
}
