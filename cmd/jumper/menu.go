package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a ruleset picker menu",
	Long: `Start Sky Jumper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a ruleset, Tab for the
scoreboard. B returns to the menu from the title, pause or game over screen.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select ruleset
  Tab          - High scores
  Q            - Quit

Examples:
  jumper menu
  jumper menu --fps 30
  jumper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Surface config errors before the alternate screen hides them
	for _, ruleset := range []string{"pro", "classic"} {
		if _, err := newGame(ruleset); err != nil {
			return err
		}
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(cfg, tui.Options{Store: store, Best: bestStores(), Logger: logger}); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
