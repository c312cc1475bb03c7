// panelpon is a rising-stack tile matcher for the terminal.
//
// Usage:
//
//	panelpon list            - List available modes
//	panelpon play <mode>     - Play solo, demo or vs
//	panelpon menu            - Pick a mode interactively
//	panelpon sim             - Run CPU matches headless
//	panelpon config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-panelpon/internal/config"
	"github.com/vovakirdan/tui-panelpon/internal/games/panelpon"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panelpon",
	Short: "Panel Pon - swap tiles, match three, survive the rising stack",
	Long: `Panel Pon is a terminal tile matcher. Swap horizontally adjacent
tiles to line up three or more of a color while the stack keeps rising.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  sim      - Run CPU matches without a terminal UI
  config   - Print the effective configuration

Examples:
  panelpon play solo
  panelpon play vs --difficulty hard
  panelpon sim --games 10 --mode vs --seed 42`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty != "" {
			if _, ok := config.ParsePreset(flagDifficulty); !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
			}
		}
		panelpon.SetConfigPath(flagConfig)
		panelpon.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLoadConfig exits when the selected config file is unusable,
// so games never silently run on defaults.
func mustLoadConfig() config.PanelConfig {
	cfg, err := panelpon.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogFile returns a file logger for --log-file, or nil when unset.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "panelpon",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
