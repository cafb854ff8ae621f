package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

var (
	menuTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	menuBest     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuSubtitle = lipgloss.NewStyle().Italic(true)
)

// MenuItem is one game in the picker.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

type menuChoice int

const (
	choiceNone menuChoice = iota
	choiceGame
	choiceScores
	choiceQuit
)

// MenuModel lets the player pick a game or open the scoreboard.
type MenuModel struct {
	items  []MenuItem
	cursor int
	choice menuChoice

	config core.RuntimeConfig
	keys   *KeyMapper
	help   help.Model
}

// NewMenuModel lists every registered game. Best scores come from store
// when one is given.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		it := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			it.HighScore, _ = store.HighScore(g.ID)
		}
		items = append(items, it)
	}

	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper(), help: h}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
		case MenuActionSelect:
			if len(m.items) == 0 {
				break
			}
			m.choice = choiceGame
			return m, tea.Quit
		case MenuActionScoreboard:
			m.choice = choiceScores
			return m, tea.Quit
		case MenuActionQuit:
			m.choice = choiceQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	lines := []string{
		"",
		menuTitle.Render("  P L A T F O R M  "),
		"",
		menuSubtitle.Render("Select a game"),
		"",
	}
	for i, it := range m.items {
		line := "  " + it.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + it.Title)
		}
		if it.HighScore > 0 {
			line += menuBest.Render(fmt.Sprintf("  best %d", it.HighScore))
		}
		lines = append(lines, line)
	}
	if len(m.items) == 0 {
		lines = append(lines, menuBest.Render("no games registered"))
	}
	lines = append(lines, "")
	lines = append(lines, m.helpLines()...)

	for i, l := range lines {
		lines[i] = centerText(l, m.config.ScreenW)
	}
	return strings.Join(lines, "\n") + "\n"
}

// helpLines wraps the key help onto two lines when one does not fit, so
// narrow terminals keep every binding.
func (m MenuModel) helpLines() []string {
	bindings := m.keys.MenuHelp()
	full := m.help
	full.Width = 0
	line := full.ShortHelpView(bindings)
	if m.help.Width <= 0 || lipgloss.Width(line) <= m.help.Width {
		return []string{line}
	}
	half := (len(bindings) + 1) / 2
	return []string{
		m.help.ShortHelpView(bindings[:half]),
		m.help.ShortHelpView(bindings[half:]),
	}
}

// Selected returns the chosen game, or nil.
func (m MenuModel) Selected() *MenuItem {
	if m.choice != choiceGame {
		return nil
	}
	it := m.items[m.cursor]
	return &it
}

func (m MenuModel) IsQuitting() bool      { return m.choice == choiceQuit }
func (m MenuModel) WantsScoreboard() bool { return m.choice == choiceScores }

// Config returns the runtime config, resized to the last window size seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text so it sits in the middle of width columns.
// ANSI styling does not count towards the text width.
func centerText(text string, width int) string {
	if pad := (width - lipgloss.Width(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

// MenuResult is what the player picked in RunMenu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the picker full screen until the player chooses.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	if sel := m.Selected(); sel != nil {
		res.GameID = sel.GameID
	} else if !res.WantsScoreboard {
		res.Quit = true
	}
	return res, nil
}
