// Package config loads namuplot settings from defaults, a YAML file and
// NAMUPLOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultWidth  = 800
	defaultHeight = 480
	maxDimension  = 8192
)

// Config is the resolved application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ThemeConfig controls theme lookup.
type ThemeConfig struct {
	// Default is the theme used when a command needs one and none is given.
	Default string `mapstructure:"default"`
	// Paths are extra theme directories searched before the standard ones.
	Paths []string `mapstructure:"paths"`
}

// RenderConfig controls example chart output.
type RenderConfig struct {
	OutDir string `mapstructure:"out_dir"`
	Format string `mapstructure:"format"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// LoggingConfig controls the root logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme: ThemeConfig{
			Default: "light",
		},
		Render: RenderConfig{
			OutDir: "examples",
			Format: "png",
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigDir returns ~/.config/namuplot.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "namuplot")
}

// NewViper returns a viper instance with defaults and env binding set up.
func NewViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()

	v.SetDefault("theme.default", defaults.Theme.Default)
	v.SetDefault("render.out_dir", defaults.Render.OutDir)
	v.SetDefault("render.format", defaults.Render.Format)
	v.SetDefault("render.width", defaults.Render.Width)
	v.SetDefault("render.height", defaults.Render.Height)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetEnvPrefix("NAMUPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (explicit path, or config.yaml in the default
// directory when present) and returns the validated configuration.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir := DefaultConfigDir(); dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Theme.Default) == "" {
		return fmt.Errorf("theme.default must not be empty")
	}
	switch c.Render.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("render.format must be png or svg, got %q", c.Render.Format)
	}
	if c.Render.Width <= 0 || c.Render.Width > maxDimension {
		return fmt.Errorf("render.width must be between 1 and %d", maxDimension)
	}
	if c.Render.Height <= 0 || c.Render.Height > maxDimension {
		return fmt.Errorf("render.height must be between 1 and %d", maxDimension)
	}
	if strings.TrimSpace(c.Render.OutDir) == "" {
		return fmt.Errorf("render.out_dir must not be empty")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
