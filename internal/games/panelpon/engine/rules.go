// Package engine implements the Panel Pon board simulation: tile lifecycle,
// matching, gravity, the rising stack, cursor swaps and scoring.
//
// The engine is a closed, deterministic, single-threaded simulation. All
// randomness comes from an injected Source, so two boards built with equal
// rules and equally seeded sources evolve identically under equal input.
package engine

import (
	"errors"
	"fmt"
)

// Alpha levels for lit (playable) and dim (staging) tiles.
const (
	LitAlpha = 255.0
	DimAlpha = 128.0
)

// maxFillAttempts bounds whole-board retries when generating the opening stack.
const maxFillAttempts = 64

// Source is the random source the engine draws colors from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Rules holds every tunable of a board.
type Rules struct {
	Columns     int
	Rows        int // includes staging row 0
	Colors      int
	InitialRows int

	CellSize        float64
	SlideSpeed      float64
	FallSpeed       float64
	VanishSpeed     float64
	ForceMultiplier float64

	Score ScoreRules
}

// ScoreRules configures the ScoreTracker.
type ScoreRules struct {
	VanishPoints    int
	Combo           BonusTable
	Many            BonusTable
	MessageCapacity int
	MessageTTL      int
}

// DefaultRules returns the classic 6x13, five color ruleset.
func DefaultRules() Rules {
	return Rules{
		Columns:         6,
		Rows:            13,
		Colors:          5,
		InitialRows:     6,
		CellSize:        40,
		SlideSpeed:      0.3,
		FallSpeed:       3.0,
		VanishSpeed:     3.0,
		ForceMultiplier: 3.0,
		Score: ScoreRules{
			VanishPoints:    10,
			Combo:           ComboTable(),
			Many:            ManyTable(),
			MessageCapacity: 10,
			MessageTTL:      300,
		},
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	var errs []error
	if r.Columns < 3 {
		errs = append(errs, fmt.Errorf("engine: columns must be at least 3, got %d", r.Columns))
	}
	if r.Rows < 5 {
		errs = append(errs, fmt.Errorf("engine: rows must be at least 5, got %d", r.Rows))
	}
	if r.Colors < 3 {
		errs = append(errs, fmt.Errorf("engine: colors must be at least 3, got %d", r.Colors))
	}
	if r.InitialRows < 0 || r.InitialRows >= r.Rows-1 {
		errs = append(errs, fmt.Errorf("engine: initial rows must be in [0, %d], got %d", r.Rows-2, r.InitialRows))
	}
	if r.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("engine: cell size must be positive, got %g", r.CellSize))
	}
	if r.SlideSpeed <= 0 || r.FallSpeed <= 0 || r.VanishSpeed <= 0 {
		errs = append(errs, fmt.Errorf("engine: speeds must be positive, got slide=%g fall=%g vanish=%g",
			r.SlideSpeed, r.FallSpeed, r.VanishSpeed))
	}
	if r.ForceMultiplier < 1 {
		errs = append(errs, fmt.Errorf("engine: force multiplier must be at least 1, got %g", r.ForceMultiplier))
	}
	if r.Score.MessageCapacity < 1 || r.Score.MessageTTL < 1 {
		errs = append(errs, errors.New("engine: message capacity and ttl must be positive"))
	}
	return errors.Join(errs...)
}
