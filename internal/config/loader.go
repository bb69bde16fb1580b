package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and logs.
const AppDir = ".lines"

// LoadLines loads the Lines configuration.
// Search order: customPath -> ~/.lines/configs/lines.yaml -> ./configs/lines.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadLines(customPath string) (LinesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLinesConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLines(data)
		if err != nil {
			return DefaultLinesConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lines.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLines(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "lines.yaml")); err == nil {
		if cfg, err := parseLines(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLines(defaultLinesYAML)
	if err != nil {
		return DefaultLinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseLines(data []byte) (LinesConfig, error) {
	cfg := DefaultLinesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
