// Package config loads the demo host configuration. Only the initial
// theme identifier is selected here; the active theme lives in the
// theme store and is never written back.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/lume/internal/theme"
)

// Config is the demo host configuration.
type Config struct {
	TUI TUIConfig `mapstructure:"tui"`
	Log LogConfig `mapstructure:"log"`
}

// TUIConfig selects the initial UI state.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// InitialTheme resolves the configured theme identifier, rejecting
// values outside the known set rather than defaulting silently.
func (c *Config) InitialTheme() (theme.Theme, error) {
	t := theme.Theme(c.TUI.Theme)
	if !theme.Valid(t) {
		return "", &theme.InvalidThemeError{Value: c.TUI.Theme}
	}
	return t, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lume", "config.yaml")
}

// Load reads configuration from the given file (or the default
// location when path is empty), with LUME_* environment overrides. A
// missing file is not an error; invalid content is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("tui.theme", string(theme.Dark))
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("LUME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
