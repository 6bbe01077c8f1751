// jumper is Sky Jumper, an endless platform climber for the terminal.
//
// Usage:
//
//	jumper play              - Play a run (pro ruleset by default)
//	jumper menu              - Pick a ruleset, play, browse scores
//	jumper serve             - Start SSH server for remote play
//	jumper scores            - Show high scores and run stats
//	jumper sim               - Run the simulation headless and print a snapshot
//	jumper list              - List available rulesets
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.sky-jumper/scores.db)
//	--config <path>      - Load a custom jumper.yaml
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
//	--best-store <kind>  - Where the best score lives: sqlite or gdata
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-jumper/internal/games/jumper"
	"github.com/vovakirdan/sky-jumper/internal/storage"
)

// appName names the per-user data directory of the gdata best-score store.
const appName = "sky-jumper"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagBestStore  string
)

var (
	logger  = log.New(os.Stderr)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Sky Jumper - climb an endless tower of platforms in your terminal",
	Long: `Sky Jumper is an endless vertical platform climber. Steer a bouncing
character left and right, land on platforms to climb, grab orbs, jetpacks
and shields, and avoid enemies. Falling off the bottom ends the run.

Available commands:
  play     - Play a run
  menu     - Pick a ruleset interactively
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Headless deterministic run
  list     - Show available rulesets

Examples:
  jumper play
  jumper play --ruleset classic --seed 42
  jumper menu
  jumper serve --ssh :2222
  jumper sim --seed 428202 --duration 2s`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sky-jumper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jumper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (interactive screens log nowhere otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagBestStore, "best-store", "sqlite", "Best score storage: sqlite or gdata")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// interactive lists the commands that take over the terminal.
var interactive = map[string]bool{"play": true, "menu": true}

// setup validates global flags, builds the logger and hands game flags to
// the jumper package before any game is created.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagBestStore != "sqlite" && flagBestStore != "gdata" {
		return fmt.Errorf("--best-store must be sqlite or gdata, got %q", flagBestStore)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	case interactive[cmd.Name()]:
		out = io.Discard
	}
	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "jumper",
	})

	jumper.SetConfigPath(flagConfig)
	return jumper.SetDifficultyPreset(flagDifficulty)
}

// bestStores returns the best-score store factory picked by --best-store.
// Nil keeps the best score in the scores database.
func bestStores() func(gameID string) storage.BestStore {
	if flagBestStore != "gdata" {
		return nil
	}
	return func(gameID string) storage.BestStore {
		b, err := storage.OpenGDataBest(appName, storage.BestKey(gameID))
		if err != nil {
			logger.Warn("best score will not persist", "error", err)
			return nil
		}
		return b
	}
}

// openStore opens the scores database. Failure is logged and play goes on
// without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
