package sim

import "errors"

// Construction errors, returned (wrapped) by NewGrid.
var (
	ErrEmptyPlan     = errors.New("sim: empty level plan")
	ErrRaggedRows    = errors.New("sim: level rows differ in length")
	ErrUnknownSymbol = errors.New("sim: unknown level symbol")
)

// Invariant errors, returned (wrapped) by Start, NewState and State.Update.
var (
	ErrPlayerCount    = errors.New("sim: state must contain exactly one player")
	ErrDuplicateID    = errors.New("sim: duplicate actor id")
	ErrInvalidDelta   = errors.New("sim: time delta must be finite and positive")
	ErrInvalidPhysics = errors.New("sim: invalid physics constant")
	ErrNoGrid         = errors.New("sim: nil grid")
)
