package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon/engine"
	"github.com/vovakirdan/tui-panelpon/internal/multiplayer"
)

var (
	flagSimGames   int
	flagSimMode    string
	flagSimTicks   uint64
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run CPU matches without a terminal UI",
	Long: `Plays matches with the CPU on every board and logs the results.
Seeds start at --seed (or the current time) and increase by one per game.

Modes:
  demo - the CPU plays a single board
  vs   - the CPU plays both boards

Examples:
  panelpon sim --games 5
  panelpon sim --mode vs --games 20 --seed 1 --ticks 50000
  panelpon sim --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of matches to play")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "demo", "Match mode: demo or vs")
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 36000, "Tick limit per match (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every vanish and combo")
}

// simTally aggregates results over a sim run.
type simTally struct {
	games   int
	wins    [3]int // indexed by PlayerID, 0 for no winner
	limited int
	best    int
	total   int
	ticks   uint64
}

func (t *simTally) add(r multiplayer.MatchResult) {
	t.games++
	t.wins[r.Winner]++
	if r.Reason == multiplayer.MatchEndReasonTickLimit {
		t.limited++
	}
	t.best = max(t.best, r.Score1)
	t.total += r.Score1
	t.ticks += r.Ticks
}

func newSimGame(mode string) (*panelpon.Game, error) {
	switch mode {
	case "demo":
		return panelpon.NewDemo(), nil
	case "vs", "versus":
		g := panelpon.NewVersus()
		g.SetAutopilot(true)
		return g, nil
	}
	return nil, fmt.Errorf("unknown sim mode %q (want demo or vs)", mode)
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}
	game, err := newSimGame(flagSimMode)
	if err != nil {
		return err
	}
	mustLoadConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var tally simTally
	for i := range flagSimGames {
		r := playSim(game, seed+int64(i), flagSimTicks, logger)
		tally.add(r)
		logger.Info("match over",
			"match", r.MatchID,
			"mode", r.Mode,
			"seed", seed+int64(i),
			"reason", r.Reason,
			"winner", int(r.Winner),
			"score1", r.Score1,
			"score2", r.Score2,
			"ticks", r.Ticks,
		)
		fmt.Printf("%3d  seed=%d  %s  (%d ticks)\n", i+1, seed+int64(i), r.Summary(), r.Ticks)
	}

	fmt.Println()
	fmt.Printf("games: %d  best: %d  average: %d  tick limit hit: %d\n",
		tally.games, tally.best, tally.total/tally.games, tally.limited)
	if game.Mode() == multiplayer.MatchModeVsCPU {
		fmt.Printf("player 1 wins: %d  player 2 wins: %d\n",
			tally.wins[multiplayer.Player1], tally.wins[multiplayer.Player2])
	}
	return nil
}

// playSim plays one match to completion or the tick limit.
func playSim(game *panelpon.Game, seed int64, limit uint64, logger *log.Logger) multiplayer.MatchResult {
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	idle := core.NewInputFrame()

	for !game.IsGameOver() {
		if limit > 0 && game.Ticks() >= limit {
			return game.Finish(multiplayer.MatchEndReasonTickLimit)
		}
		game.Step(idle)
		p1, p2 := game.LastReports()
		logReport(logger, game.Ticks(), multiplayer.Player1, p1)
		if game.Rival() != nil {
			logReport(logger, game.Ticks(), multiplayer.Player2, p2)
		}
	}
	r, _ := game.Result()
	return r
}

func logReport(logger *log.Logger, tick uint64, player multiplayer.PlayerID, rep engine.StepReport) {
	if rep.Vanished == 0 {
		return
	}
	logger.Debug("vanish",
		"tick", tick,
		"player", int(player),
		"tiles", rep.Vanished,
		"combo", rep.Combo,
		"gained", rep.Gained,
	)
}
