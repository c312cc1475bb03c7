package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-panelpon/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the configuration the same way play does (custom path,
~/.panelpon/configs, ./configs, then built-in defaults), applies the
difficulty preset and prints the result.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
