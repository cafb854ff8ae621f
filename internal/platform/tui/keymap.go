package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glptrst/platform-game/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper turns key presses into game or menu actions.
// Terminals only report presses; holding is emulated by the game.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{bind("q", "quit", "q", "ctrl+c"), core.ActionQuit},
			{bind("←/a", "left", "left", "a", "h"), core.ActionLeft},
			{bind("→/d", "right", "right", "d", "l"), core.ActionRight},
			{bind("space/↑", "jump", " ", "up", "w", "k"), core.ActionJump},
			{bind("p", "pause", "p", "esc"), core.ActionPause},
			{bind("r", "restart", "r"), core.ActionRestart},
			{bind("b", "menu", "b"), core.ActionBack},
			{bind("enter", "confirm", "enter"), core.ActionConfirm},
		},
		menu: []menuBinding{
			{bind("↑/k", "up", "up", "w", "k"), MenuActionUp},
			{bind("↓/j", "down", "down", "s", "j"), MenuActionDown},
			{bind("enter", "play", "enter", " "), MenuActionSelect},
			{bind("tab", "scores", "tab"), MenuActionScoreboard},
			{bind("esc", "back", "esc", "b"), MenuActionBack},
			{bind("q", "quit", "q", "ctrl+c"), MenuActionQuit},
		},
	}
}

// MapKey returns the game action for msg, and whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records msg in frame. Quit is reported to the caller
// instead of being passed to the game.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if !quit {
		frame.Set(action)
	}
	return quit
}

// MenuAction is a navigation command in the picker and scoreboard.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// GameHelp lists the in-game bindings for help views.
func (km *KeyMapper) GameHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.game))
	for _, b := range km.game {
		out = append(out, b.binding)
	}
	return out
}

// MenuHelp lists the picker bindings for help views.
func (km *KeyMapper) MenuHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.menu))
	for _, b := range km.menu {
		if b.action != MenuActionBack {
			out = append(out, b.binding)
		}
	}
	return out
}
