package leaderboard

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Seed modes.
const (
	SeedOnce   = "once"   // insert the seed set only into an empty table
	SeedAlways = "always" // insert on every start; rows accumulate
	SeedOff    = "off"
)

// Config holds the leaderboard service configuration.
type Config struct {
	Addr   string `yaml:"addr" env:"LEADERBOARD_ADDR"`
	DBPath string `yaml:"db_path" env:"LEADERBOARD_DB"`

	// Seed is one of SeedOnce (default), SeedAlways or SeedOff.
	Seed string `yaml:"seed" env:"LEADERBOARD_SEED"`

	LogLevel string `yaml:"log_level" env:"LEADERBOARD_LOG_LEVEL"`

	// MCPTransport enables the MCP tool surface. "" or "stdio".
	MCPTransport string `yaml:"mcp_transport" env:"LEADERBOARD_MCP"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = "127.0.0.1:3000"
	}
	if c.DBPath == "" {
		c.DBPath = "db.lite"
	}
	if c.Seed == "" {
		c.Seed = SeedOnce
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	switch c.Seed {
	case SeedOnce, SeedAlways, SeedOff:
	default:
		return fmt.Errorf("config: unknown seed mode %q", c.Seed)
	}
	switch c.MCPTransport {
	case "", "stdio":
	default:
		return fmt.Errorf("config: unknown mcp transport %q", c.MCPTransport)
	}
	return nil
}

// LoadConfig reads the optional YAML file at path, applies LEADERBOARD_*
// environment overrides, then fills defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.defaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
