// Package tui hosts platform games in a terminal: the Bubble Tea tick loop,
// key mapping, the game picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model for one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg; rates below 1 mean 60 per second.
func tickCmd(rate int) tea.Cmd {
	if rate < 1 {
		rate = 60
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
