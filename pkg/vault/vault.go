package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "hub"

// Vault represents the directories hub reads and writes outside the catalog
type Vault struct {
	CachePath  string
	ConfigPath string
}

// New creates a new Vault instance with XDG-compliant paths
func New() (*Vault, error) {
	cachePath, cacheErr := getCacheRoot()
	configPath, configErr := getConfigPath()
	if cacheErr != nil {
		return nil, fmt.Errorf("failed to determine cache root: %w", cacheErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return &Vault{
		CachePath:  cachePath,
		ConfigPath: configPath,
	}, nil
}

// getCacheRoot returns the cache directory path
// Follows the XDG Base Directory layout on Unix and uses LocalAppData on Windows
func getCacheRoot() (string, error) {
	if xdgCacheHome := os.Getenv("XDG_CACHE_HOME"); xdgCacheHome != "" {
		return filepath.Join(xdgCacheHome, appName), nil
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, appName, "cache"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.cache/hub (Unix-like systems)
	return filepath.Join(homeDir, ".cache", appName), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName+"-config", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.config/hub/config.yaml (Unix-like systems)
	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Initialize creates the cache directory if it doesn't exist
func (v *Vault) Initialize() error {
	if err := os.MkdirAll(v.CachePath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", v.CachePath, err)
	}
	return nil
}

// GetCachePath returns the full path for a cached file
func (v *Vault) GetCachePath(filename string) string {
	return filepath.Join(v.CachePath, filename)
}

// ChartPath returns the path of the rendered stats chart
func (v *Vault) ChartPath() string {
	return v.GetCachePath("stats.html")
}
