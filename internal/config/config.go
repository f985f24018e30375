// Package config loads the lfetch configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete lfetch configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (NO_COLOR still wins).
	Color bool `toml:"color"`

	// Logo renders the ASCII logo beside the report.
	Logo bool `toml:"logo"`

	// Compact uses the compact alternative logo.
	Compact bool `toml:"compact"`

	// Gap is the number of spaces between logo and info columns.
	Gap int `toml:"gap"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
			Logo:  false,
			Gap:   4,
		},
	}
}

// Load reads the configuration from path. A missing file is not an error
// and yields the defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Output.Gap < 0 {
		cfg.Output.Gap = 0
	}
	return cfg, nil
}
