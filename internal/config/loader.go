package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads jumper configuration.
// Search order: customPath -> ~/.sky-jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadJumper(customPath string) (JumperConfig, error) {
	cfg := DefaultJumperConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("jumper.yaml"),
		filepath.Join("configs", "jumper.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultJumperConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if fileCfg.Validate() != nil {
			continue
		}
		return fileCfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sky-jumper", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Powerups.ShieldTime = 8
		cfg.Powerups.ComboWindow = 1.0
	case DifficultyHard:
		cfg.Powerups.ShieldTime = 4
		cfg.Powerups.JetpackTime = 1.4
	}
}
