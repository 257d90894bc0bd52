// Package config provides configuration management for qb.
// It reads the user config file and exposes per-browser overrides.
// Every key is optional - a missing file or missing key means
// "no override" and the caller falls back to built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lvim-tech/qb/pkg/utils"
)

// BrowserConfig holds the per-browser overrides
type BrowserConfig struct {
	ProfileSearchPath string
	BrowserCommand    string
	RofiTheme         string
}

// Config holds the merged configuration
type Config struct {
	Debug    bool
	Browsers map[string]BrowserConfig
}

// browserSection is the TOML shape of a per-browser table (pointers for optional keys)
type browserSection struct {
	ProfileSearchPath *string `toml:"profile_search_path"`
	BrowserCommand    *string `toml:"browser_command"`
	RofiTheme         *string `toml:"rofi_theme"`
}

// globalSection is the TOML shape of the [global] table
type globalSection struct {
	Debug *bool `toml:"debug"`
}

// configFile is the TOML shape of the user config
type configFile struct {
	Global  globalSection  `toml:"global"`
	Firefox browserSection `toml:"firefox"`
	Zen     browserSection `toml:"zen-browser"`
	Brave   browserSection `toml:"brave"`
}

// GetUserConfigPath returns the path to the user config
func GetUserConfigPath() string {
	return filepath.Join(utils.GetConfigDir(), "qb", "config.toml")
}

// Load reads the user config. A missing file yields an empty config;
// a malformed file is a startup error.
func Load() (*Config, error) {
	cfg := &Config{Browsers: make(map[string]BrowserConfig)}

	path := GetUserConfigPath()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	var file configFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.Global.Debug != nil {
		cfg.Debug = *file.Global.Debug
	}

	cfg.Browsers["firefox"] = mergeBrowserSection(file.Firefox)
	cfg.Browsers["zen-browser"] = mergeBrowserSection(file.Zen)
	cfg.Browsers["brave"] = mergeBrowserSection(file.Brave)

	return cfg, nil
}

// mergeBrowserSection resolves the optional keys of one browser table
func mergeBrowserSection(section browserSection) BrowserConfig {
	var merged BrowserConfig

	if section.ProfileSearchPath != nil && *section.ProfileSearchPath != "" {
		merged.ProfileSearchPath = utils.ExpandPath(*section.ProfileSearchPath)
	}
	if section.BrowserCommand != nil && *section.BrowserCommand != "" {
		merged.BrowserCommand = *section.BrowserCommand
	}
	if section.RofiTheme != nil && *section.RofiTheme != "" {
		merged.RofiTheme = utils.ExpandPath(*section.RofiTheme)
	}

	return merged
}

// ForBrowser returns the overrides for a browser kind
func (c *Config) ForBrowser(name string) BrowserConfig {
	return c.Browsers[name]
}
