// Package panelpon implements Panel Pon, a rising-stack tile matcher, as
// registry games: solo, a CPU demo and versus the CPU.
package panelpon

import (
	"fmt"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/brain"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
	"github.com/vovakirdan/tui-panelpon/internal/multiplayer"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

// Registry IDs, one per mode.
const (
	IDSolo   = "panelpon"
	IDDemo   = "panelpon_demo"
	IDVersus = "panelpon_vs"
)

// Game runs one or two boards for a match mode.
type Game struct {
	mode       multiplayer.MatchMode
	runtime    core.RuntimeConfig
	cfg        config.PanelConfig
	rules      engine.Rules
	difficulty *config.DifficultyManager

	player *engine.Board // Player1
	rival  *engine.Board // Player2, versus only
	pilot  *brain.Brain  // drives the player board in demo or autopilot
	cpu    *brain.Brain  // drives the rival board
	last   [2]engine.StepReport

	autopilot bool
	match     *multiplayer.Match
	matches   int
	tickCount uint64
	paused    bool
	gameOver  bool
}

// New creates a game for the given mode.
func New(mode multiplayer.MatchMode) *Game {
	return &Game{mode: mode}
}

// NewSolo creates a single-player game.
func NewSolo() *Game { return New(multiplayer.MatchModeSolo) }

// NewDemo creates a game the CPU plays alone.
func NewDemo() *Game { return New(multiplayer.MatchModeDemo) }

// NewVersus creates a player vs CPU game.
func NewVersus() *Game { return New(multiplayer.MatchModeVsCPU) }

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	switch g.mode {
	case multiplayer.MatchModeDemo:
		return IDDemo
	case multiplayer.MatchModeVsCPU:
		return IDVersus
	default:
		return IDSolo
	}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.mode {
	case multiplayer.MatchModeDemo:
		return "Panel Pon Demo"
	case multiplayer.MatchModeVsCPU:
		return "Panel Pon vs CPU"
	default:
		return "Panel Pon"
	}
}

// Mode returns the match mode.
func (g *Game) Mode() multiplayer.MatchMode {
	return g.mode
}

// SetAutopilot lets the CPU drive Player1's board as well. Takes effect on Reset.
func (g *Game) SetAutopilot(on bool) {
	g.autopilot = on
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config; invalid files fall back to defaults
	cfg, _ := LoadConfig()
	g.cfg = cfg
	g.rules = Rules(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.player = g.newBoard(runtime.Seed)
	g.rival = nil
	g.pilot = nil
	g.cpu = nil
	if g.mode == multiplayer.MatchModeDemo || g.autopilot {
		g.pilot = brain.New(BrainOptions(cfg), newSource(runtime.Seed, streamPilot))
	}
	if g.mode == multiplayer.MatchModeVsCPU {
		g.rival = g.newBoard(runtime.Seed)
		g.cpu = brain.New(BrainOptions(cfg), newSource(runtime.Seed, streamCPU))
	}

	g.matches++
	g.match = multiplayer.NewMatch(multiplayer.MatchID(fmt.Sprintf("%s-%d", g.ID(), g.matches)), g.mode)
	g.last = [2]engine.StepReport{}
	g.tickCount = 0
	g.paused = false
	g.gameOver = false
}

func (g *Game) newBoard(seed int64) *engine.Board {
	b, err := engine.NewBoard(g.rules, newSource(seed, streamBoard))
	if err != nil {
		// Config validation normally rejects such rules
		g.rules = engine.DefaultRules()
		b, _ = engine.NewBoard(g.rules, newSource(seed, streamBoard))
	}
	return b
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	frame := core.NewMultiInputFrame()
	frame.SetPlayer(multiplayer.Player1, in)
	return g.StepMulti(frame)
}

// StepMulti advances the game by one tick. Player1's frame drives the
// player board unless the CPU pilots it; the rival is always the CPU.
func (g *Game) StepMulti(input core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++
	g.applyDifficulty()

	p1 := BoardInput(input.Player1())
	if g.pilot != nil {
		p1 = g.pilot.Next(g.player)
	}
	g.last[0] = g.player.Step(p1)
	if g.rival != nil {
		g.last[1] = g.rival.Step(g.cpu.Next(g.rival))
	}

	g.checkGameOver()
	return core.StepResult{State: g.State()}
}

// BoardInput maps platform actions onto board input.
func BoardInput(in core.InputFrame) engine.Input {
	return engine.Input{
		Up:          in.Has(core.ActionUp),
		Down:        in.Has(core.ActionDown),
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Exchange:    in.Has(core.ActionExchange),
		ForceScroll: in.Has(core.ActionRaise),
	}
}

// applyDifficulty speeds up each board's scroll as the match goes on.
func (g *Game) applyDifficulty() {
	ticks := int(g.tickCount)
	g.player.SetSlideSpeed(g.difficulty.Speed(g.cfg.Speed.Slide, g.player.Score(), ticks))
	if g.rival != nil {
		g.rival.SetSlideSpeed(g.difficulty.Speed(g.cfg.Speed.Slide, g.rival.Score(), ticks))
	}
}

// checkGameOver ends the match when a board tops out. The player's board
// is checked first, so a simultaneous top out is a loss.
func (g *Game) checkGameOver() {
	var winner multiplayer.PlayerID
	switch {
	case !g.player.Alive():
		if g.rival != nil {
			winner = multiplayer.Player2
		}
	case g.rival != nil && !g.rival.Alive():
		winner = multiplayer.Player1
	default:
		return
	}
	g.gameOver = true
	g.match.Finish(multiplayer.MatchEndReasonCompleted, winner, g.Score1(), g.Score2(), g.tickCount)
}

// Finish ends an unfinished match for the given reason and returns its result.
func (g *Game) Finish(reason multiplayer.MatchEndReason) multiplayer.MatchResult {
	g.gameOver = true
	return g.match.Finish(reason, 0, g.Score1(), g.Score2(), g.tickCount)
}

// Result returns the match outcome once the game is over.
func (g *Game) Result() (multiplayer.MatchResult, bool) {
	return g.match.Result()
}

// LastReports returns the most recent step reports for both boards.
func (g *Game) LastReports() (player, rival engine.StepReport) {
	return g.last[0], g.last[1]
}

// Player returns Player1's board.
func (g *Game) Player() *engine.Board {
	return g.player
}

// Rival returns the CPU board in versus mode, nil otherwise.
func (g *Game) Rival() *engine.Board {
	return g.rival
}

// Ticks returns the number of simulated ticks this match.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// IsGameOver returns true if the game has ended.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// Winner returns the winning player, or 0 when there is none.
func (g *Game) Winner() multiplayer.PlayerID {
	if r, ok := g.match.Result(); ok {
		return r.Winner
	}
	return 0
}

// Score1 returns Player 1's score.
func (g *Game) Score1() int {
	return g.player.Score()
}

// Score2 returns Player 2's score, 0 without a rival.
func (g *Game) Score2() int {
	if g.rival == nil {
		return 0
	}
	return g.rival.Score()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score1(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(IDSolo, func() registry.Game { return NewSolo() })
	registry.Register(IDDemo, func() registry.Game { return NewDemo() })
	registry.Register(IDVersus, func() registry.Game { return NewVersus() })
}
