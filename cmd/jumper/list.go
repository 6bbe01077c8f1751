package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-jumper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available rulesets",
	Long:  `Shows every registered game variant.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'jumper play' for the pro ruleset or 'jumper play --ruleset classic'.")
}
