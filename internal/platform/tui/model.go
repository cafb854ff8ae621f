package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/storage"
)

// Recorder persists finished campaigns and level attempts.
type Recorder interface {
	SaveScore(gameID string, score int) (int64, error)
	SaveRun(run storage.RunRecord) (int64, error)
}

// recorderFor keeps a nil store from becoming a non-nil Recorder.
func recorderFor(store *storage.Store) Recorder {
	if store == nil {
		return nil
	}
	return store
}

// GameModel drives one game: keys fill an input frame, every tick steps the
// game with it, and View draws the game's screen. Over SSH it is nested in
// a SessionModel (embedded), locally it is the whole program.
type GameModel struct {
	game   registry.Game
	keys   *KeyMapper
	screen *core.Screen
	cfg    core.RuntimeConfig

	rec Recorder
	log *log.Logger

	input    core.InputFrame
	state    core.GameState
	banked   bool // score of the current game over already saved
	embedded bool
	back     bool
	quit     bool
}

// NewGameModel wraps game. rec and logger may be nil.
func NewGameModel(game registry.Game, rec Recorder, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:   game,
		keys:   NewKeyMapper(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		cfg:    cfg,
		rec:    rec,
		log:    logger,
	}
}

func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.cfg)
	return tickCmd(m.cfg.TickRate)
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.tick()
		return m, tickCmd(m.cfg.TickRate)

	case tea.WindowSizeMsg:
		// The game draws into whatever size the screen has; no reset needed.
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.screenshot()
			break
		}
		if m.keys.MapKeyToFrame(msg, &m.input) {
			m.quit = true
			return m, tea.Quit
		}
		if m.input.Has(core.ActionBack) && (m.state.GameOver || m.state.Paused) {
			m.back = true
			if !m.embedded {
				m.quit = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// tick advances the game by one step, or restarts it after a game over.
func (m *GameModel) tick() {
	defer m.input.Clear()

	if m.state.GameOver && m.input.Has(core.ActionRestart) {
		m.cfg.Seed = time.Now().UnixNano()
		m.game.Reset(m.cfg)
		m.state = m.game.State()
		m.banked = false
		return
	}

	m.state = m.game.Step(m.input).State
	m.record()
}

// record saves level attempts as they finish and the score once per game over.
func (m *GameModel) record() {
	var outcomes []core.LevelOutcome
	if lr, ok := m.game.(registry.LevelReporter); ok {
		outcomes = lr.Outcomes()
	}
	if m.rec != nil {
		for _, o := range outcomes {
			run := storage.RunRecord{GameID: m.game.ID(), LevelID: o.LevelID, Status: o.Status, Ticks: o.Ticks, Coins: o.Coins}
			if _, err := m.rec.SaveRun(run); err != nil {
				m.logError("could not save run", err, "level", o.LevelID)
			}
		}
	}

	if !m.state.GameOver || m.banked {
		return
	}
	m.banked = true
	if m.rec != nil && m.state.Score > 0 {
		if _, err := m.rec.SaveScore(m.game.ID(), m.state.Score); err != nil {
			m.logError("could not save score", err, "score", m.state.Score)
		}
	}
}

func (m GameModel) logError(msg string, err error, kv ...any) {
	if m.log != nil {
		m.log.Error(msg, append([]any{"game", m.game.ID(), "error", err}, kv...)...)
	}
}

// screenshot writes the current frame as text to ~/.platform/screenshots.
func (m GameModel) screenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logError("screenshot", err)
		return
	}
	dir := filepath.Join(home, ".platform", "screenshots")
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logError("screenshot", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logError("screenshot", err)
		return
	}
	if m.log != nil {
		m.log.Info("screenshot saved", "file", name)
	}
}

func (m GameModel) View() string {
	if m.quit {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State is the game state after the last tick.
func (m GameModel) State() core.GameState { return m.state }

func (m GameModel) IsQuitting() bool { return m.quit }
func (m GameModel) BackToMenu() bool { return m.back }

// Run plays game full screen in the local terminal. logger may be nil.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(NewGameModel(game, recorderFor(store), logger, cfg), tea.WithAltScreen()).Run()
	return err
}
