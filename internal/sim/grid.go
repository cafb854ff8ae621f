package sim

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/glptrst/platform-game/internal/core"
)

// CellKind is the static content of one grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellLava
)

// String returns the name of the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Grid is the immutable static layout of a level.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []CellKind
	spawns []Actor // Actors recorded during construction, in scan order
}

// NewGrid builds a grid from rectangular rows of symbols.
// Each symbol is looked up in table: static symbols set the cell kind, actor
// symbols leave their cell empty and record a spawn. Actor IDs are assigned
// 1..n in row-major scan order. seed drives spawn-time randomness only.
func NewGrid(rows []string, table SpawnTable, seed int64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyPlan
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ErrEmptyPlan
	}

	g := &Grid{
		width:  width,
		height: len(rows),
		cells:  make([]CellKind, width*len(rows)),
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits reinterpreted
	var nextID ActorID = 1

	for y, row := range rows {
		symbols := []rune(row)
		if len(symbols) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedRows, y, len(symbols), width)
		}
		for x, ch := range symbols {
			entry, ok := table[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrUnknownSymbol, ch, y, x)
			}
			g.cells[y*width+x] = entry.Cell
			if entry.Actor != nil {
				g.spawns = append(g.spawns, entry.Actor(nextID, core.V(float64(x), float64(y)), ch, rng))
				nextID++
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the cell coordinate is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the kind of the cell at (x, y).
// Coordinates outside the grid are an implicit wall.
func (g *Grid) At(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.width+x]
}

// Spawns returns a copy of the actors recorded during construction.
func (g *Grid) Spawns() []Actor {
	return slices.Clone(g.spawns)
}

// Touches reports whether the box at pos with the given size spans any cell
// of the given kind. The spanned cells run from floor of the low corner to
// ceil of the high corner: an edge lying exactly on a cell boundary does not
// reach the cell beyond it, but any overshoot does.
func (g *Grid) Touches(pos, size core.Vec, kind CellKind) bool {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if g.At(x, y) == kind {
				return true
			}
		}
	}
	return false
}
