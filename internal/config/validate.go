package config

import (
	"errors"
	"fmt"
)

// Validate reports every field that cannot drive a playable board.
func (c PanelConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Grid.Columns >= 3, "grid.columns must be at least 3, got %d", c.Grid.Columns)
	check(c.Grid.Rows >= 5, "grid.rows must be at least 5, got %d", c.Grid.Rows)
	check(c.Grid.Colors >= 3, "grid.colors must be at least 3, got %d", c.Grid.Colors)
	check(c.Grid.InitialRows >= 1 && c.Grid.InitialRows < c.Grid.Rows-1,
		"grid.initial_rows must be in [1, rows-2], got %d", c.Grid.InitialRows)

	check(c.Speed.CellSize > 0, "speed.cell_size must be positive, got %g", c.Speed.CellSize)
	check(c.Speed.Slide > 0, "speed.slide must be positive, got %g", c.Speed.Slide)
	check(c.Speed.Fall > 0, "speed.fall must be positive, got %g", c.Speed.Fall)
	check(c.Speed.Vanish > 0, "speed.vanish must be positive, got %g", c.Speed.Vanish)
	check(c.Speed.ForceMultiplier >= 1, "speed.force_multiplier must be at least 1, got %g", c.Speed.ForceMultiplier)

	check(c.Brain.InputCycle >= 1, "brain.input_cycle must be at least 1, got %d", c.Brain.InputCycle)
	check(c.Brain.SafetyMargin >= 1 && c.Brain.SafetyMargin < c.Grid.Rows,
		"brain.safety_margin must be in [1, rows-1], got %d", c.Brain.SafetyMargin)

	check(c.Score.VanishPoints >= 0, "score.vanish_points must not be negative, got %d", c.Score.VanishPoints)
	check(c.Score.ComboBonus.Start >= 1, "score.combo_bonus.start must be at least 1, got %d", c.Score.ComboBonus.Start)
	check(c.Score.ManyBonus.Start >= 1, "score.many_bonus.start must be at least 1, got %d", c.Score.ManyBonus.Start)
	check(c.Score.MessageCapacity >= 1, "score.message_capacity must be at least 1, got %d", c.Score.MessageCapacity)
	check(c.Score.MessageTTL >= 1, "score.message_ttl must be at least 1, got %d", c.Score.MessageTTL)

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("config: difficulty.progression.type %q is not one of score, time, none",
			c.Difficulty.Progression.Type))
	}
	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1,
		"difficulty.initial_level must be in [0, 1], got %g", c.Difficulty.InitialLevel)

	return errors.Join(errs...)
}
