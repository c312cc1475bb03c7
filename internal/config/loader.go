package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PanelFile is the config file name looked up in each search directory.
const PanelFile = "panelpon.yaml"

// LoadPanel loads Panel Pon configuration.
// Search order: customPath -> ~/.panelpon/configs/panelpon.yaml -> ./configs/panelpon.yaml -> embedded default
//
// Files are decoded on top of DefaultPanelConfig, so a partial file only
// overrides the keys it names. The result is validated.
func LoadPanel(customPath string) (PanelConfig, error) {
	cfg, err := loadPanel(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadPanel(customPath string) (PanelConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultPanelConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(PanelFile); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", PanelFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultPanelConfig()
	if err := yaml.Unmarshal(defaultPanelYAML, &cfg); err != nil {
		return DefaultPanelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Missing or malformed files are skipped.
func decodeFile(path string) (PanelConfig, bool) {
	cfg := DefaultPanelConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".panelpon", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg PanelConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ApplyPanelPreset modifies the config based on a difficulty preset.
func ApplyPanelPreset(cfg *PanelConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// The CPU opponent reacts faster on harder presets
	switch preset {
	case DifficultyEasy:
		cfg.Brain.InputCycle = 6
	case DifficultyHard:
		cfg.Brain.InputCycle = 2
	}
}
