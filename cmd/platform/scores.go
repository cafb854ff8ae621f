package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresRuns  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and level records for a game",
	Long: `Display the top scores, overall statistics and per-level records for
the specified game.

Examples:
  platform scores platform
  platform scores platform --limit 20
  platform scores platform --recent 15
  platform scores platform_sample --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the game")
	scoresCmd.Flags().IntVar(&flagScoresRuns, "recent", 0, "Also list this many of the latest level attempts")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatalf("creating game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fatalf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	if len(scores) == 0 {
		fmt.Printf("\nNo scores recorded yet. Run 'platform play %s' to set one.\n", gameID)
		return
	}

	rows := make([][]string, len(scores))
	for i, e := range scores {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("2006-01-02 15:04")}
	}
	printTable([]string{"Rank", "Score", "Date"}, rows)

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}

	levelStats, err := store.LevelStats(gameID)
	if err != nil || len(levelStats) == 0 {
		return
	}
	rows = rows[:0]
	for _, ls := range levelStats {
		rows = append(rows, []string{ls.LevelID, strconv.Itoa(ls.Attempts), strconv.Itoa(ls.Wins), bestTicks(ls), strconv.Itoa(ls.MaxCoins)})
	}
	fmt.Println()
	printTable([]string{"Level", "Tries", "Wins", "Best", "Coins"}, rows)

	if flagScoresRuns <= 0 {
		return
	}
	runs, err := store.RecentRuns(gameID, flagScoresRuns)
	if err != nil {
		fatalf("%v", err)
	}
	rows = rows[:0]
	for _, r := range runs {
		rows = append(rows, []string{r.CreatedAt.Format("2006-01-02 15:04"), r.LevelID, r.Status, strconv.Itoa(r.Ticks), strconv.Itoa(r.Coins)})
	}
	fmt.Println()
	printTable([]string{"When", "Level", "Result", "Ticks", "Coins"}, rows)
}
