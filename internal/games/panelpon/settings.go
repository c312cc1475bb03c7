package panelpon

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/brain"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig returns the configuration games are built from, with the
// difficulty preset applied. On error the defaults are returned with it.
func LoadConfig() (config.PanelConfig, error) {
	cfg, err := config.LoadPanel(configPath)
	if err != nil {
		cfg = config.DefaultPanelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPanelPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Rules converts configuration into engine rules.
func Rules(cfg config.PanelConfig) engine.Rules {
	return engine.Rules{
		Columns:         cfg.Grid.Columns,
		Rows:            cfg.Grid.Rows,
		Colors:          cfg.Grid.Colors,
		InitialRows:     cfg.Grid.InitialRows,
		CellSize:        cfg.Speed.CellSize,
		SlideSpeed:      cfg.Speed.Slide,
		FallSpeed:       cfg.Speed.Fall,
		VanishSpeed:     cfg.Speed.Vanish,
		ForceMultiplier: cfg.Speed.ForceMultiplier,
		Score: engine.ScoreRules{
			VanishPoints:    cfg.Score.VanishPoints,
			Combo:           bonusTable(cfg.Score.ComboBonus),
			Many:            bonusTable(cfg.Score.ManyBonus),
			MessageCapacity: cfg.Score.MessageCapacity,
			MessageTTL:      cfg.Score.MessageTTL,
		},
	}
}

// BrainOptions converts configuration into planner options.
func BrainOptions(cfg config.PanelConfig) brain.Options {
	return brain.Options{
		InputCycle:   cfg.Brain.InputCycle,
		SafetyMargin: cfg.Brain.SafetyMargin,
	}
}

func bonusTable(t config.BonusTable) engine.BonusTable {
	return engine.BonusTable{
		Start:    t.Start,
		Values:   append([]int(nil), t.Values...),
		Overflow: t.Overflow,
	}
}

// Random streams derived from the runtime seed. Both boards of a versus
// match share one stream, so they open with the same stack.
const (
	streamBoard uint64 = iota + 1
	streamPilot
	streamCPU
)

func newSource(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}
