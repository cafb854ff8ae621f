// Package platformer implements a tile platform game on top of the sim kernel.
// The player walks and jumps through a sequence of levels, collecting every
// coin while avoiding lava and monsters.
package platformer

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/glptrst/platform-game/internal/config"
	"github.com/glptrst/platform-game/internal/core"
	"github.com/glptrst/platform-game/internal/levels"
	"github.com/glptrst/platform-game/internal/registry"
	"github.com/glptrst/platform-game/internal/sim"
)

// PointsPerLevel is the bonus for clearing a level.
const PointsPerLevel = 100

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var levelDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config defaults.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = "" // Use config default
		return
	}
	difficultyPreset = p
}

// SetLevelDir makes the campaign load its levels from dir instead of the
// built-in set. An empty dir restores the built-in campaign.
func SetLevelDir(dir string) {
	levelDir = dir
}

// Source supplies the ordered levels a game plays.
type Source func() ([]levels.Plan, error)

// Campaign returns the levels of the full game.
func Campaign() ([]levels.Plan, error) {
	if levelDir == "" {
		return levels.Builtin()
	}
	plans, err := levels.NewLoader(levelDir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no levels found in %s", levelDir)
	}
	return plans, nil
}

// SampleOnly returns the single introductory level.
func SampleOnly() ([]levels.Plan, error) {
	p, err := levels.BuiltinByID(levels.SampleID)
	if err != nil {
		return nil, err
	}
	return []levels.Plan{p}, nil
}

// Single returns a source playing only the given plan.
func Single(p levels.Plan) Source {
	return func() ([]levels.Plan, error) {
		return []levels.Plan{p}, nil
	}
}

// Game drives a sequence of level runs.
type Game struct {
	id     string
	title  string
	source Source

	override   *config.PlatformConfig
	cfg        config.PlatformConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	dt         float64 // Simulated seconds per tick
	endTicks   int     // Ticks a finished level stays on screen

	plans      []levels.Plan
	levelIdx   int
	state      *sim.State
	levelCoins int // Coins present when the attempt started
	ticks      int // Ticks spent in the current attempt
	endTimer   int // Counts down while a finished level is shown
	hold       holdState

	lives    int
	score    int // Banked score from cleared levels
	gameOver bool
	won      bool
	paused   bool
	err      error

	outcomes []core.LevelOutcome
	view     viewport
}

// New creates a game playing the levels from source.
func New(id, title string, source Source) *Game {
	return &Game{id: id, title: title, source: source}
}

// WithConfig makes the game use cfg as is instead of loading configuration.
func (g *Game) WithConfig(cfg config.PlatformConfig) *Game {
	g.override = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game from the first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadPlatform(configPath)
		if err != nil {
			cfg = config.DefaultPlatformConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.dt = math.Min(1/float64(runtime.TickRate), g.cfg.Run.MaxStep)
	g.endTicks = int(math.Ceil(g.cfg.Run.EndDelay.Seconds() * float64(runtime.TickRate)))

	g.levelIdx = 0
	g.lives = max(g.cfg.Run.Lives, 1)
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.err = nil
	g.outcomes = nil
	g.state = nil

	plans, err := g.source()
	if err != nil {
		g.fail(err)
		return
	}
	if len(plans) == 0 {
		g.fail(errors.New("no levels to play"))
		return
	}
	g.plans = plans
	g.startLevel()
}

// startLevel begins a fresh attempt at the current level.
func (g *Game) startLevel() {
	physics := g.cfg.Physics.Physics()
	physics.MonsterSpeed = g.difficulty.MonsterSpeed(physics.MonsterSpeed, g.levelIdx)

	s, err := g.plans[g.levelIdx].Start(physics, g.runtime.Seed+int64(g.levelIdx))
	if err != nil {
		g.fail(err)
		return
	}

	g.state = s
	g.levelCoins = s.Count(sim.KindCoin)
	g.ticks = 0
	g.endTimer = 0
	g.hold = holdState{}
	g.view = viewport{}
}

func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.hold.press(in, g.cfg.Run.HoldTicks)
	intent := g.hold.intent()
	g.hold.release()

	next, err := g.state.Update(g.dt, intent)
	if err != nil {
		g.fail(err)
		return core.StepResult{State: g.State()}
	}
	g.state = next

	// A finished level keeps animating until the end delay runs out
	if g.endTimer > 0 {
		g.endTimer--
		if g.endTimer == 0 {
			g.finishLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	if next.Status().Terminal() {
		g.outcomes = append(g.outcomes, core.LevelOutcome{
			LevelID: g.plans[g.levelIdx].ID,
			Status:  next.Status().String(),
			Ticks:   g.ticks,
			Coins:   g.collected(),
		})
		g.endTimer = g.endTicks
		if g.endTimer == 0 {
			g.finishLevel()
		}
	}

	return core.StepResult{State: g.State()}
}

// finishLevel moves on after the end delay: next level, retry or game over.
func (g *Game) finishLevel() {
	switch g.state.Status() {
	case sim.StatusWon:
		g.score += g.collected() + PointsPerLevel
		g.levelIdx++
		if g.levelIdx >= len(g.plans) {
			g.won = true
			g.gameOver = true
			return
		}
	case sim.StatusLost:
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			return
		}
	default:
		return
	}
	g.startLevel()
}

// collected returns the coins picked up in the current attempt.
func (g *Game) collected() int {
	if g.state == nil {
		return 0
	}
	return g.levelCoins - g.state.Count(sim.KindCoin)
}

// Score returns the banked score plus coins held in an attempt still alive.
func (g *Game) Score() int {
	if g.state == nil || g.state.Status() == sim.StatusLost || g.gameOver {
		return g.score
	}
	return g.score + g.collected()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Lives:    g.lives,
		Level:    g.levelIdx,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Outcomes returns the level attempts finished since the previous call.
func (g *Game) Outcomes() []core.LevelOutcome {
	out := g.outcomes
	g.outcomes = nil
	return out
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Sim returns the kernel state of the current attempt, or nil.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Plan returns the level being played.
func (g *Game) Plan() (levels.Plan, bool) {
	if g.levelIdx >= len(g.plans) {
		return levels.Plan{}, false
	}
	return g.plans[g.levelIdx], true
}

// Levels returns the number of levels in the run.
func (g *Game) Levels() int {
	return len(g.plans)
}

// Plans returns the levels of the run in play order.
func (g *Game) Plans() []levels.Plan {
	return slices.Clone(g.plans)
}

// Register the games with the registry
func init() {
	registry.Register("platform", func() registry.Game {
		return New("platform", "Platform Game", Campaign)
	})
	registry.Register("platform_sample", func() registry.Game {
		return New("platform_sample", "Platform Game (Sample Level)", SampleOnly)
	})
}
