package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-panelpon/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode with its match type.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	items := tui.MenuItems()

	if len(items) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, it := range items {
		if len(it.GameID) > maxIDLen {
			maxIDLen = len(it.GameID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Mode", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "----", "-----")
	for _, it := range items {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, it.GameID, it.Mode, it.Title)
	}

	fmt.Println()
	fmt.Println("Run 'panelpon play <id>' to play a mode.")
}
