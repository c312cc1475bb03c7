// Package config provides YAML-based game configuration loading and
// difficulty management for Panel Pon.
package config

// PanelConfig contains all configuration for a Panel Pon board and its CPU player.
type PanelConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Brain      BrainConfig      `yaml:"brain"`
	Score      ScoreConfig      `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Columns     int `yaml:"columns"`
	Rows        int `yaml:"rows"` // includes the hidden staging row
	Colors      int `yaml:"colors"`
	InitialRows int `yaml:"initial_rows"`
}

// SpeedConfig defines per-tick animation rates.
type SpeedConfig struct {
	CellSize        float64 `yaml:"cell_size"`
	Slide           float64 `yaml:"slide"`
	Fall            float64 `yaml:"fall"`
	Vanish          float64 `yaml:"vanish"`
	ForceMultiplier float64 `yaml:"force_multiplier"`
}

// BrainConfig defines the CPU player's reaction speed and caution.
type BrainConfig struct {
	InputCycle   int `yaml:"input_cycle"`   // ticks between planner inputs
	SafetyMargin int `yaml:"safety_margin"` // rows below the top at which it stops force-scrolling
}

// ScoreConfig defines points and bonus tables.
type ScoreConfig struct {
	VanishPoints    int        `yaml:"vanish_points"`
	ComboBonus      BonusTable `yaml:"combo_bonus"`
	ManyBonus       BonusTable `yaml:"many_bonus"`
	MessageCapacity int        `yaml:"message_capacity"`
	MessageTTL      int        `yaml:"message_ttl"`
}

// BonusTable maps a count to a bonus. Values[i] applies to Start+i,
// Overflow to anything past the end of Values.
type BonusTable struct {
	Start    int   `yaml:"start"`
	Values   []int `yaml:"values"`
	Overflow int   `yaml:"overflow"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to slide speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
