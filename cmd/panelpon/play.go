package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-panelpon/internal/core"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon"
	"github.com/vovakirdan/tui-panelpon/internal/platform/tui"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

// modeAliases lets players type the mode instead of the registry ID.
var modeAliases = map[string]string{
	"solo":   panelpon.IDSolo,
	"demo":   panelpon.IDDemo,
	"vs":     panelpon.IDVersus,
	"versus": panelpon.IDVersus,
}

var playCmd = &cobra.Command{
	Use:   "play <solo|demo|vs>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move cursor
  Space/X      - Swap the two tiles under the cursor
  Z            - Raise the stack
  P            - Pause
  R            - Restart
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, slow CPU
  normal - Default progression
  hard   - Fast start, fast CPU
  fixed  - No progression

Examples:
  panelpon play solo
  panelpon play vs --difficulty hard
  panelpon play demo --seed 7
  panelpon play solo --config ./my-panelpon.yaml --log-file panelpon.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append match logs to this file")
}

// resolveGameID accepts a mode alias or a registry ID.
func resolveGameID(arg string) (string, bool) {
	if id, ok := modeAliases[arg]; ok {
		return id, true
	}
	return arg, registry.Exists(arg)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, ok := resolveGameID(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'panelpon list' to see available modes.")
		os.Exit(1)
	}

	mustLoadConfig()

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
