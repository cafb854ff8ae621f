package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

func (s sessionScreen) String() string {
	switch s {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// SessionModel runs a whole remote visit in one program. The menu, game and
// scoreboard models signal completion with tea.Quit; the session swallows
// those and switches screens, so only an explicit quit ends the connection.
type SessionModel struct {
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	screen   sessionScreen
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	quitting bool
}

func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		next, cmd := m.game.Update(msg)
		m.game = next.(GameModel)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			st := m.game.State()
			m.logger.Info("game left", "game", m.game.game.ID(), "score", st.Score, "over", st.GameOver)
			return m.showMenu()
		}
		return m, cmd

	case screenScores:
		next, cmd := m.board.Update(msg)
		m.board = next.(ScoreboardModel)
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			return m.showMenu()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.board.Init()
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot create game", "game", id, "error", err)
		return m.showMenu()
	}
	m.logger.Info("game started", "game", id)

	m.screen = screenGame
	m.game = NewGameModel(game, recorderFor(m.store), m.logger, m.config)
	m.game.embedded = true
	return m, m.game.Init()
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = GameModel{}
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	case m.screen == screenScores:
		return m.board.View()
	}
	return m.menu.View()
}
