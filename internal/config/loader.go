package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const scrollerFile = "scroller.yaml"

// LoadScroller loads the scroller configuration.
// Search order: customPath -> ~/.scroller/configs/scroller.yaml -> ./configs/scroller.yaml -> embedded default
//
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func LoadScroller(customPath string) (ScrollerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ScrollerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseScroller(data)
		if err != nil {
			return ScrollerConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(scrollerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseScroller(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", scrollerFile)); err == nil {
		if cfg, err := ParseScroller(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseScroller(defaultScrollerYAML)
	if err != nil {
		return DefaultScrollerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseScroller decodes YAML over the hardcoded defaults.
func ParseScroller(data []byte) (ScrollerConfig, error) {
	cfg := DefaultScrollerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScrollerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scroller", "configs", filename)
}

// ApplyScrollerPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyScrollerPreset(cfg *ScrollerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.Lives = 5
		cfg.Progression.StartSpeed = 0.75
		cfg.Progression.SpeedFactor = 1.15
	case DifficultyHard:
		cfg.Progression.Lives = 3
		cfg.Progression.StartSpeed = 1.25
		cfg.Progression.StartCount = 1.3
	case DifficultyFixed:
		// Levels still advance, the world just never speeds up.
		cfg.Progression.SpeedFactor = 1
		cfg.Progression.CountFactor = 1
	}
}
