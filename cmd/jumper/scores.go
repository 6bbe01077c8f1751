package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-jumper/internal/platform/tui"
	"github.com/vovakirdan/sky-jumper/internal/registry"
	"github.com/vovakirdan/sky-jumper/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores and run statistics of a game (jumper by
default; see 'jumper list').

Examples:
  jumper scores
  jumper scores jumper_classic --limit 20
  jumper scores --tui
  jumper scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's score history (the best score is kept)")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse all games in the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "jumper"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'jumper list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("score history cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Seed", "Rules", "When")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8s  %-10d  %-8s  %s\n", i+1,
			humanize.Comma(int64(entry.Score)), entry.Seed, entry.Ruleset, humanize.Time(entry.CreatedAt))
	}

	fmt.Println()
	stats, err := store.Stats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %s  Average: %.1f  Ticks played: %s\n",
			humanize.Comma(int64(stats.GamesCount)), stats.AvgScore, humanize.Comma(stats.TotalTicks))
	}
	if best, err := loadBest(store, gameID); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
	return nil
}

// loadBest reads the best score from the store --best-store selects.
func loadBest(store *storage.Store, gameID string) (int, error) {
	if open := bestStores(); open != nil {
		if b := open(gameID); b != nil {
			return b.LoadBest()
		}
	}
	return store.Best(storage.BestKey(gameID)).LoadBest()
}
