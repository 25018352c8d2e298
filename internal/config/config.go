// Package config loads settings from defaults, a TOML file, a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Cases  CasesConfig  `toml:"cases"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// CasesConfig points to the lesson cases checked by the validate command.
type CasesConfig struct {
	File    string `toml:"file"`
	Workers int    `toml:"workers"` // 0 means one per CPU
}

type LogConfig struct {
	Level string `toml:"level" valid:"in(debug|info|warn|error)"`
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

func Default() *Config {
	return &Config{
		Cases: CasesConfig{
			File: "test_data.json",
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "appearance.toml"
	}

	return filepath.Join(home, ".config", "appearance", "config.toml")
}

// LoadFrom starts with defaults, overlays the file if it exists, then .env and environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("APPEARANCE_CASES_FILE"); v != "" {
		cfg.Cases.File = v
	}

	if v := os.Getenv("APPEARANCE_CASES_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("APPEARANCE_CASES_WORKERS: %w", err)
		}

		cfg.Cases.Workers = workers
	}

	if v := os.Getenv("APPEARANCE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv("APPEARANCE_COLOR"); v != "" {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("APPEARANCE_COLOR: %w", err)
		}

		cfg.Output.Color = color
	}

	return nil
}

func (c *Config) Validate() error {
	if _, err := govalidator.ValidateStruct(c); err != nil {
		return err
	}

	if c.Cases.Workers < 0 {
		return fmt.Errorf("cases workers must not be negative, got %d", c.Cases.Workers)
	}

	return nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
