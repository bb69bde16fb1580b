package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered board variant.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-12s %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}
	fmt.Println()
	fmt.Println("Run 'lines play <id>' to play.")
}
