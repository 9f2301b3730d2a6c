package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.flappy/config.yaml -> ./configs/flappy.yaml -> embedded default.
// A file found on the path is decoded on top of the defaults, so partial
// files keep the default value of every field they omit.
func Load(customPath string) (FlappyConfig, string, error) {
	cfg := DefaultFlappyConfig()

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFlappyConfig()
		if err := Decode(data, &candidate); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return candidate, path, nil
	}

	if err := Decode(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Decode unmarshals YAML onto cfg and validates the result.
func Decode(data []byte, cfg *FlappyConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
