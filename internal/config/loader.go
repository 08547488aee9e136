package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "mazechase.yaml"

// LoadMazeChase loads the maze chase configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeChaseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MazeChaseConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMazeChaseYAML)
	if err != nil {
		return DefaultMazeChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays data on the hardcoded defaults, so partial files only need
// the keys they change, and validates the result.
func parse(data []byte) (MazeChaseConfig, error) {
	cfg := DefaultMazeChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeChaseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MazeChaseConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}
