package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.DefaultView != "browse" {
		t.Errorf("expected default DefaultView='browse', got %q", cfg.DefaultView)
	}

	if cfg.Browser != "" {
		t.Errorf("expected default Browser='', got %q", cfg.Browser)
	}

	if cfg.ServeAddr != "localhost:8080" {
		t.Errorf("expected default ServeAddr='localhost:8080', got %q", cfg.ServeAddr)
	}

	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("expected default AllowedOrigins=[*], got %v", cfg.AllowedOrigins)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel='info', got %q", cfg.LogLevel)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.ServeAddr != "localhost:8080" {
		t.Errorf("expected default ServeAddr, got %q", cfg.ServeAddr)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := &Config{
		DefaultView:    "list",
		Browser:        "firefox",
		ServeAddr:      ":9000",
		AllowedOrigins: []string{"https://hub.example"},
		LogLevel:       "debug",
		ColorTheme:     "dark",
		TableWidth:     120,
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loadedCfg.DefaultView != cfg.DefaultView {
		t.Errorf("DefaultView: expected %q, got %q", cfg.DefaultView, loadedCfg.DefaultView)
	}

	if loadedCfg.Browser != cfg.Browser {
		t.Errorf("Browser: expected %q, got %q", cfg.Browser, loadedCfg.Browser)
	}

	if loadedCfg.ServeAddr != cfg.ServeAddr {
		t.Errorf("ServeAddr: expected %q, got %q", cfg.ServeAddr, loadedCfg.ServeAddr)
	}

	if len(loadedCfg.AllowedOrigins) != 1 || loadedCfg.AllowedOrigins[0] != "https://hub.example" {
		t.Errorf("AllowedOrigins: got %v", loadedCfg.AllowedOrigins)
	}

	if loadedCfg.TableWidth != 120 {
		t.Errorf("TableWidth: expected 120, got %d", loadedCfg.TableWidth)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Partial config (missing serve_addr and log_level)
	yamlContent := `browser: chromium
table_width: -4
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Browser != "chromium" {
		t.Errorf("expected Browser='chromium', got %q", cfg.Browser)
	}

	if cfg.ServeAddr != "localhost:8080" {
		t.Errorf("expected default ServeAddr, got %q", cfg.ServeAddr)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel, got %q", cfg.LogLevel)
	}

	if cfg.TableWidth != 0 {
		t.Errorf("expected negative TableWidth to reset to 0, got %d", cfg.TableWidth)
	}
}

func TestLoad_InvalidDefaultView(t *testing.T) {
	tests := []struct {
		name     string
		view     string
		expected string
	}{
		{"browse", "browse", "browse"},
		{"list", "list", "list"},
		{"unknown", "dashboard", "browse"},
		{"empty", "", "browse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			content := "default_view: \"" + tt.view + "\"\n"
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(configPath)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}
			if cfg.DefaultView != tt.expected {
				t.Errorf("DefaultView = %q, want %q", cfg.DefaultView, tt.expected)
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("serve_addr: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
