package config

import (
	_ "embed"
)

//go:embed defaults/panelpon.yaml
var defaultPanelYAML []byte

// DefaultPanelConfig returns the default Panel Pon configuration.
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Grid: GridConfig{
			Columns:     6,
			Rows:        13,
			Colors:      5,
			InitialRows: 6,
		},
		Speed: SpeedConfig{
			CellSize:        40,
			Slide:           0.3,
			Fall:            3.0,
			Vanish:          3.0,
			ForceMultiplier: 3.0,
		},
		Brain: BrainConfig{
			InputCycle:   4,
			SafetyMargin: 4,
		},
		Score: ScoreConfig{
			VanishPoints:    10,
			ComboBonus:      defaultComboBonus(),
			ManyBonus:       defaultManyBonus(),
			MessageCapacity: 10,
			MessageTTL:      300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// defaultComboBonus pays 150c-250 for a chain of c = 2..13 and nothing past that.
func defaultComboBonus() BonusTable {
	t := BonusTable{Start: 2}
	for c := 2; c <= 13; c++ {
		t.Values = append(t.Values, 150*c-250)
	}
	return t
}

// defaultManyBonus pays floor(2n²/10)*10 for n = 4..30 tiles, nothing for
// exactly 31 and a flat 33000 above.
func defaultManyBonus() BonusTable {
	t := BonusTable{Start: 4, Overflow: 33000}
	for n := 4; n <= 30; n++ {
		t.Values = append(t.Values, (2*n*n/10)*10)
	}
	t.Values = append(t.Values, 0)
	return t
}
