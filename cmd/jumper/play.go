package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper"
	"github.com/vovakirdan/sky-jumper/internal/platform/tui"
)

var flagRuleset string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start climbing.

Controls:
  A/D, Left/Right  - Steer (each press steers for a moment)
  Mouse drag       - Steer toward the pointer
  Enter/Space      - Start a run
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Rulesets:
  pro      - Breakable platforms, orbs, jetpacks, shields, enemies, gusts
  classic  - Platforms only, scored by height

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  jumper play
  jumper play --ruleset classic
  jumper play --difficulty hard
  jumper play --seed 428202
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRuleset, "ruleset", string(config.RulesetPro), "Ruleset: pro or classic")
}

// newGame creates the game for a ruleset and checks that its configuration
// loads.
func newGame(ruleset string) (*jumper.Game, error) {
	var game *jumper.Game
	switch config.Ruleset(ruleset) {
	case config.RulesetPro:
		game = jumper.New()
	case config.RulesetClassic:
		game = jumper.NewClassic()
	default:
		return nil, fmt.Errorf("unknown ruleset %q (run 'jumper list')", ruleset)
	}
	if _, err := game.LoadConfig(); err != nil {
		return nil, err
	}
	return game, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := newGame(flagRuleset)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	logger.Info("starting", "game", game.ID(), "ruleset", game.Ruleset(), "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, cfg, tui.Options{Store: store, Best: bestStores(), Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
