package config

import (
	"os"
	"path/filepath"
)

const (
	appName    = "lfetch"
	configFile = "config.toml"
)

// ConfigDir returns the configuration directory for lfetch, respecting
// XDG_CONFIG_HOME when set.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path of the configuration file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}
