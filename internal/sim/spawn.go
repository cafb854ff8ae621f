package sim

import (
	"math"
	"math/rand/v2"

	"github.com/glptrst/platform-game/internal/core"
)

// SpawnFunc constructs the actor for a symbol found at cell (grid coordinates
// of its top-left corner). rng is the grid's seeded source.
type SpawnFunc func(id ActorID, cell core.Vec, symbol rune, rng *rand.Rand) Actor

// Spawn describes what a level symbol turns into.
type Spawn struct {
	Cell  CellKind  // Static kind stored in the grid at this position
	Actor SpawnFunc // Optional actor constructor; nil for static cells
}

// SpawnTable maps level symbols to cells and actor constructors.
// The level parser and the kernel share it as their single contract.
type SpawnTable map[rune]Spawn

// Level symbols understood by the default table.
const (
	SymbolEmpty        = '.'
	SymbolWall         = '#'
	SymbolLava         = '+'
	SymbolPlayer       = '@'
	SymbolCoin         = 'o'
	SymbolLavaSideways = '='
	SymbolLavaUpDown   = '|'
	SymbolLavaDrip     = 'v'
	SymbolMonster      = 'M'
)

// DefaultSpawnTable returns the symbol table built from DefaultPhysics.
func DefaultSpawnTable() SpawnTable {
	return NewSpawnTable(DefaultPhysics())
}

// NewSpawnTable returns the symbol table using p for spawn-time speeds.
func NewSpawnTable(p Physics) SpawnTable {
	return SpawnTable{
		SymbolEmpty: {Cell: CellEmpty},
		SymbolWall:  {Cell: CellWall},
		SymbolLava:  {Cell: CellLava},
		SymbolPlayer: {Actor: func(id ActorID, cell core.Vec, _ rune, _ *rand.Rand) Actor {
			return NewPlayer(id, cell.Add(core.V(0, -0.5)))
		}},
		SymbolCoin: {Actor: func(id ActorID, cell core.Vec, _ rune, rng *rand.Rand) Actor {
			return NewCoin(id, cell.Add(core.V(0.2, 0.1)), rng.Float64()*2*math.Pi)
		}},
		SymbolLavaSideways: {Actor: func(id ActorID, cell core.Vec, _ rune, _ *rand.Rand) Actor {
			return NewLava(id, cell, core.V(2, 0))
		}},
		SymbolLavaUpDown: {Actor: func(id ActorID, cell core.Vec, _ rune, _ *rand.Rand) Actor {
			return NewLava(id, cell, core.V(0, 2))
		}},
		SymbolLavaDrip: {Actor: func(id ActorID, cell core.Vec, _ rune, _ *rand.Rand) Actor {
			return NewDrippingLava(id, cell, core.V(0, 3))
		}},
		SymbolMonster: {Actor: func(id ActorID, cell core.Vec, _ rune, _ *rand.Rand) Actor {
			return NewMonster(id, cell.Add(core.V(0, -1)), core.V(p.MonsterSpeed, 0))
		}},
	}
}
