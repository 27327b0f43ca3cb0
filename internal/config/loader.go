package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a game.
// Search order: customPath -> ~/.levelforge/configs/<game>.yaml ->
// ./configs/<game>.yaml -> embedded default
func Load(gameID, customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	embedded := GetDefaultYAML(gameID)
	if embedded == nil {
		return cfg, fmt.Errorf("no default config for game %q", gameID)
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return Default(gameID), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Default returns the hardcoded default configuration for a game.
func Default(gameID string) GameConfig {
	switch gameID {
	case "targets":
		return DefaultTargetsConfig()
	default:
		return DefaultBreakoutConfig()
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".levelforge", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Attempts += 2
		cfg.Paddle.HalfW *= 1.3
	case DifficultyHard:
		if cfg.Gameplay.Attempts > 1 {
			cfg.Gameplay.Attempts--
		}
		cfg.Paddle.HalfW *= 0.75
		if cfg.Ball.LaunchMode == LaunchCone {
			cfg.Ball.LaunchSpeed *= 1.25
		}
	}
}
