// Package config provides configuration management for Region Switcher.
// It handles loading, saving, and validating application settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/yllada/region-switcher/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// Settings are read from a YAML file in the user's config directory.
// Session state is never written back here.
type Config struct {
	// AutoRegion connects to the default region when the application starts.
	AutoRegion bool `yaml:"auto_region"`
	// Notifications is the initial state of the notifications switch.
	Notifications bool `yaml:"notifications"`
	// SafeMode is the initial state of the safe mode switch.
	SafeMode bool `yaml:"safe_mode"`
	// DesktopNotifications mirrors toasts to the desktop over D-Bus.
	DesktopNotifications bool `yaml:"desktop_notifications"`
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// InitialDelay is the simulated connection time after start.
	InitialDelay time.Duration `yaml:"initial_delay"`
	// ChangeDelay is the simulated connection time after a region change.
	ChangeDelay time.Duration `yaml:"change_delay"`
	// ToastDuration is how long a toast stays visible.
	ToastDuration time.Duration `yaml:"toast_duration"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AutoRegion:           true,
		Notifications:        true,
		SafeMode:             true,
		DesktopNotifications: false,
		Theme:                common.ThemeAuto,
		InitialDelay:         common.InitialConnectDelay,
		ChangeDelay:          common.RegionChangeDelay,
		ToastDuration:        common.ToastDuration,
	}
}

// Load loads the configuration from path. An empty path means the default
// location. If the file doesn't exist, the default configuration is
// returned and nothing is written.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: error parsing configuration: %v", common.ErrConfigLoad, err)
	}

	cfg.validate()
	return cfg, nil
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}

	defaults := DefaultConfig()
	if c.InitialDelay <= 0 {
		c.InitialDelay = defaults.InitialDelay
	}
	if c.ChangeDelay <= 0 {
		c.ChangeDelay = defaults.ChangeDelay
	}
	if c.ToastDuration <= 0 {
		c.ToastDuration = defaults.ToastDuration
	}
}

// Save writes the configuration to path, or to the default location when
// path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error serializing configuration: %w", err)
	}
	return data, nil
}

// DefaultPath returns ~/.config/region-switcher/config.yaml.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}
