package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

const boardScoreLimit = 100

// ScoreSource is the read side of the scores database.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	LevelStats(gameID string) ([]storage.LevelStats, error)
}

type boardView int

const (
	viewScores boardView = iota
	viewLevels
)

var (
	boardHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTab     = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	boardTabOn   = boardTab.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// boardKeys implements help.KeyMap.
type boardKeys struct {
	up, down, next, prev, toggle, back, quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.next, k.toggle, k.back, k.quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.up, k.down, k.next, k.prev}, {k.toggle, k.back, k.quit}}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		up:     bind("↑/k", "up", "up", "k"),
		down:   bind("↓/j", "down", "down", "j"),
		next:   bind("tab/→", "next game", "tab", "right", "l"),
		prev:   bind("S-tab/←", "prev game", "shift+tab", "left", "h"),
		toggle: bind("v", "scores/levels", "v"),
		back:   bind("esc", "back", "esc", "b"),
		quit:   bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel browses high scores and per-level records by game.
type ScoreboardModel struct {
	source ScoreSource
	games  []registry.GameInfo
	game   int
	view   boardView
	rows   []table.Row

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	back, quit    bool
}

// NewScoreboardModel opens on the first registered game. A nil store
// shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var src ScoreSource
	if store != nil {
		src = store
	}
	return newScoreboard(src, registry.List(), width, height)
}

func newScoreboard(src ScoreSource, games []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: src,
		games:  games,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.game].ID
}

// reload fetches rows for the current game and view.
func (m *ScoreboardModel) reload() {
	m.rows = nil
	if m.source != nil && len(m.games) > 0 {
		if m.view == viewLevels {
			m.rows = levelRows(m.source, m.gameID())
		} else {
			m.rows = scoreRows(m.source, m.gameID())
		}
	}
	m.layout()
}

// layout rebuilds the table for the current size and view.
func (m *ScoreboardModel) layout() {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.Bold(false).
		Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows),
		table.WithHeight(max(m.height-9, 3)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

func (m ScoreboardModel) columns() []table.Column {
	avail := max(m.width-8, 40)
	if m.view == viewLevels {
		return []table.Column{
			{Title: "Level", Width: min(avail-34, 24)},
			{Title: "Tries", Width: 6},
			{Title: "Wins", Width: 6},
			{Title: "Best", Width: 8},
			{Title: "Coins", Width: 6},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: min(avail-20, 20)},
	}
}

func scoreRows(src ScoreSource, gameID string) []table.Row {
	scores, err := src.TopScores(gameID, boardScoreLimit)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format("Jan 02 15:04")})
	}
	return rows
}

func levelRows(src ScoreSource, gameID string) []table.Row {
	stats, err := src.LevelStats(gameID)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		best := "-"
		if s.Wins > 0 {
			best = strconv.Itoa(s.BestTicks)
		}
		rows = append(rows, table.Row{s.LevelID, strconv.Itoa(s.Attempts), strconv.Itoa(s.Wins), best, strconv.Itoa(s.MaxCoins)})
	}
	return rows
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		n := len(m.games)
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.next) && n > 0:
			m.game = (m.game + 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.prev) && n > 0:
			m.game = (m.game + n - 1) % n
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	heading := "HIGH SCORES"
	empty := "No scores recorded yet.\nPlay a game to set one."
	if m.view == viewLevels {
		heading = "LEVEL RECORDS"
		empty = "No runs recorded yet.\nFinish or lose a level to see it here."
	}

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTab
		if i == m.game {
			style = boardTabOn
		}
		tabs[i] = style.Render(g.Title)
	}

	body := boardEmpty.Render(empty)
	if len(m.rows) > 0 {
		body = m.table.View()
	}

	return strings.Join([]string{
		centerText(boardHeading.Render(heading), m.width),
		"",
		centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width),
		centerText(boardFrame.Render(body), m.width),
		m.help.View(m.keys),
	}, "\n")
}

func (m ScoreboardModel) IsGoingBack() bool { return m.back }
func (m ScoreboardModel) IsQuitting() bool  { return m.quit }

// RunScoreboard shows the scoreboard full screen. It reports whether the
// player asked to go back to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.back, nil
}
