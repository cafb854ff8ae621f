package core

// RuntimeConfig is what the host tells a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // terminal size in cells
	TickRate         int   // steps per second
	Seed             int64 // spawn-time randomness, e.g. coin wobble phases
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second. A zero seed
// asks the host to pick one from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the host's view of a game.
type GameState struct {
	Score    int
	Lives    int
	Level    int  // index into the campaign
	GameOver bool // won the last level or ran out of lives
	Won      bool
	Paused   bool
}

// StepResult is what one Step produced.
type StepResult struct {
	State GameState
}

// LevelOutcome records how one attempt at a level ended.
// Games that play level sequences report these for the run ledger.
type LevelOutcome struct {
	LevelID string
	Status  string // "won" or "lost"
	Ticks   int
	Coins   int    // collected before the attempt ended
}
