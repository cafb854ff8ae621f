package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/games/platformer"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [game]",
	Short: "List the levels a game plays",
	Long: `Show the levels of a game in play order, with the records kept in the
scores database.

Examples:
  platform levels
  platform levels platform_sample
  platform levels --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	gameID := "platform"
	if len(args) == 1 {
		gameID = args[0]
	}
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}
	pg, ok := game.(*platformer.Game)
	if !ok {
		fatalf("game %q has no levels", gameID)
	}
	pg.Reset(core.DefaultConfig())
	if err := pg.Err(); err != nil {
		fatalf("loading levels: %v", err)
	}

	records := map[string]storage.LevelStats{}
	if store := openStore(); store != nil {
		stats, err := store.LevelStats(gameID)
		store.Close()
		if err == nil {
			for _, s := range stats {
				records[s.LevelID] = s
			}
		}
	}

	fmt.Printf("Levels - %s\n", game.Title())
	var rows [][]string
	for i, p := range pg.Plans() {
		w, h := p.Size()
		rec := records[p.ID]
		rows = append(rows, []string{
			strconv.Itoa(i + 1), p.ID, p.Name,
			fmt.Sprintf("%dx%d", w, h),
			strconv.Itoa(p.Coins()),
			strconv.Itoa(rec.Attempts),
			strconv.Itoa(rec.Wins),
			bestTicks(rec),
		})
	}
	printTable([]string{"#", "ID", "Name", "Size", "Coins", "Tries", "Wins", "Best"}, rows)
}

func bestTicks(s storage.LevelStats) string {
	if s.Wins == 0 {
		return "-"
	}
	return fmt.Sprintf("%d ticks", s.BestTicks)
}
