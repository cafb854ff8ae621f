package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/platform/tui"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Pick a game, play it, and come back to the picker when you leave.
Tab opens the scoreboard with high scores and level records.

Examples:
  platform menu
  platform menu --fps 30
  platform menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if store := openStore(); store != nil {
		defer store.Close()
		return menuLoop(store)
	}
	return menuLoop(nil)
}

func menuLoop(store *storage.Store) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}
		cfg.Seed = seedOr(flagSeed, time.Now())
		if err := tui.Run(game, store, logger, cfg); err != nil {
			return err
		}
	}
}
