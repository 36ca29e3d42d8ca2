package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. ANIMENAME_SERVER_PORT.
const EnvPrefix = "ANIMENAME_"

// Config holds the picker configuration.
type Config struct {
	Server   ServerConfig      `yaml:"server" envPrefix:"SERVER_"`
	Picker   PickerConfig      `yaml:"picker" envPrefix:"PICKER_"`
	Logging  LoggingConfig     `yaml:"logging" envPrefix:"LOG_"`
	Settings map[string]string `yaml:"settings"`
	// Locale, when set, takes precedence over the locale settings.
	Locale string `yaml:"-" env:"LOCALE"`
}

// ServerConfig locates the ComfyUI server.
type ServerConfig struct {
	Scheme  string `yaml:"scheme" env:"SCHEME"`
	Address string `yaml:"address" env:"ADDRESS"`
	Port    int    `yaml:"port" env:"PORT"`
}

// PickerConfig holds widget behaviour.
type PickerConfig struct {
	GroupByAnime bool          `yaml:"group_by_anime" env:"GROUP_BY_ANIME"`
	Field        string        `yaml:"field" env:"FIELD"`
	Filter       string        `yaml:"filter" env:"FILTER"`
	Debounce     time.Duration `yaml:"debounce" env:"DEBOUNCE"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEVEL"` // debug, info, warn, error
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{
		Picker: PickerConfig{GroupByAnime: true},
	}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads the YAML file at path, applies environment overrides and defaults,
// and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Server.Scheme == "" {
		c.Server.Scheme = "http"
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8188
	}
	if c.Picker.Field == "" {
		c.Picker.Field = "selected_data"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if c.Locale != "" {
		c.Settings["AGL.Locale"] = c.Locale
	}
}

// Validate checks the configuration for values the picker cannot use.
func (c *Config) Validate() error {
	if c.Server.Scheme != "http" && c.Server.Scheme != "https" {
		return fmt.Errorf("server.scheme must be http or https, got %q", c.Server.Scheme)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Picker.Debounce < 0 {
		return fmt.Errorf("picker.debounce must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
