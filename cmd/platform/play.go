package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/platform/tui"
	"github.com/glptrst/platform-game/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Difficulty options:
  easy   - 5 lives, monsters start slow
  normal - 3 lives, monsters start at 30% of the speed-up
  hard   - 1 life, monsters start at 70% of the speed-up
  fixed  - no speed-up, lives from the config

Examples:
  platform play platform
  platform play platform_sample
  platform play platform --difficulty hard
  platform play platform --levels ./my-levels
  platform play platform --config ./my-platform.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Long += "\n\nControls:\n" + controlsHelp()
}

func controlsHelp() string {
	var b strings.Builder
	for _, k := range tui.NewKeyMapper().GameHelp() {
		h := k.Help()
		fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
	}
	fmt.Fprintf(&b, "  %-10s %s", "ctrl+s", "screenshot to ~/.platform/screenshots")
	return b.String()
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}

	store := openStore()
	logger, closeLog := fileLogger()
	defer closeLog()
	runErr := tui.Run(game, store, logger, runtimeConfig())
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
