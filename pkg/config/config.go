package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Browsing
	DefaultView string `yaml:"default_view"`
	Browser     string `yaml:"browser"`

	// Server Settings
	ServeAddr      string   `yaml:"serve_addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultView:    "browse",
		Browser:        "",
		ServeAddr:      "localhost:8080",
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
		ColorTheme:     "auto",
		TableWidth:     0,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// Missing file means defaults
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = "localhost:8080"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}
	if cfg.TableWidth < 0 {
		cfg.TableWidth = 0
	}

	if !isValidDefaultView(cfg.DefaultView) {
		cfg.DefaultView = "browse"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDefaultView checks what the bare `hub` command should run
func isValidDefaultView(view string) bool {
	return slices.Contains([]string{"browse", "list"}, view)
}
