package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

// fatalf prints an error to stderr and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// requireGame exits unless id names a registered game.
func requireGame(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'platform list' to see available games.")
		os.Exit(1)
	}
}

// openStore opens the scores database, or returns nil with a warning so the
// games still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		newLogger("platform").Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fileLogger logs to ~/.platform/platform.log while a full-screen game owns
// the terminal. It falls back to a discarding logger.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".platform")
		if err = os.MkdirAll(dir, 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "platform.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				return log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: log.GetLevel()}), func() { f.Close() }
			}
		}
	}
	newLogger("platform").Warn("game log disabled", "error", err)
	return log.New(io.Discard), func() {}
}

// seedOr returns seed, or one taken from now when seed is 0.
func seedOr(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

var (
	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
	tableEdge  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// printTable writes rows to stdout as a bordered table.
func printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableEdge).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
	fmt.Println(t.Render())
}
