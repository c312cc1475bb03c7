package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon"
	"github.com/vovakirdan/tui-panelpon/internal/platform/tui"
	"github.com/vovakirdan/tui-panelpon/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Opens a menu listing every mode. Left and right change the
difficulty. Leaving a game with Esc returns to the menu.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append match logs to this file")
}

func runMenu(cmd *cobra.Command, args []string) {
	mustLoadConfig()

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig()
	preset := config.DifficultyNormal
	if p, ok := config.ParsePreset(flagDifficulty); ok {
		preset = p
	}

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if result.Quit || result.Item == nil {
			return
		}
		cfg = result.Config
		preset = result.Preset
		panelpon.SetDifficultyPreset(string(preset))

		game, err := registry.Create(result.Item.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		if !back {
			return
		}
	}
}
