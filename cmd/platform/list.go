package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		rows := make([][]string, len(games))
		for i, g := range games {
			rows[i] = []string{g.ID, g.Title}
		}
		printTable([]string{"ID", "Title"}, rows)
		fmt.Println("\nStart one with 'platform play <id>'.")
	},
}
