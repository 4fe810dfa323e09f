package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		err := loadFromFile(cfg, configPath)
		switch {
		case os.IsNotExist(err):
			// A missing file is not fatal: run with the defaults
			cfg.warnings = append(cfg.warnings, fmt.Errorf("config file %s not found, using defaults", configPath))
		case err != nil:
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./ornament.yaml",
		"./ornament.ini",
		filepath.Join(ConfigDir(), "ornament.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Ornament")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Ornament")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ornament")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "ornament")
	}
}

// loadFromFile loads config from a file, merging with existing values.
// Files ending in .ini use the legacy line format; everything else is YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".ini") {
		entries, errs := ParseINI(data)
		for _, err := range errs {
			cfg.warnings = append(cfg.warnings, fmt.Errorf("%s: %w", path, err))
		}
		cfg.Ornaments = entries
		return nil
	}
	return yaml.Unmarshal(data, cfg)
}
