// platform is a tile platform game for the terminal.
//
// Usage:
//
//	platform list                 - List available games
//	platform levels [game]        - List the levels a game plays
//	platform play <game>          - Play a game
//	platform menu                 - Pick games interactively
//	platform simulate <level>     - Run a level headless with scripted input
//	platform scores <game>        - Show high scores and level records
//	platform serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set seed for coin wobble phases
//	--db <path>           - Set database path (default: ~/.platform/scores.db)
//	--config <path>       - Custom platform.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <dir>        - Play levels from a directory instead of the built-in campaign
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/config"
	"github.com/glptrst/platform-game/internal/games/platformer"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelDir   string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platform",
	Short: "Platform - a tile platformer in your terminal",
	Long: `Platform is a terminal platform game: walk, jump, collect every coin
and stay out of the lava.

Available commands:
  list      - Show all available games
  levels    - Show the levels of a game
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  simulate  - Run a level without a terminal UI
  scores    - View high scores and level records
  serve     - Start SSH server for remote play

Examples:
  platform list
  platform play platform
  platform play platform --difficulty hard
  platform simulate 00-sample --script right:120
  platform serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Seed for spawn randomness (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.platform/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom platform config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelDir, "levels", "", "Directory of level files to play instead of the built-in campaign")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates the global flags and hands them to the games.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("invalid --difficulty %q: use easy, normal, hard or fixed", flagDifficulty)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelDir(flagLevelDir)
	return nil
}

// newLogger returns a stderr logger at the configured level.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.GetLevel(),
	})
}
