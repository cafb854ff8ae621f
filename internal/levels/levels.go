// Package levels provides level plans for the platform game: the built-in
// campaign embedded in the binary and user level directories.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"
	"strings"

	"github.com/glptrst/platform-game/internal/levels/formats"
	"github.com/glptrst/platform-game/internal/sim"
)

// Plan is a named level layout, one string per row.
type Plan struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string // Source file the plan was loaded from
}

// ParsePlan builds a plan from a multi-line text layout.
func ParsePlan(id, text string) Plan {
	return Plan{ID: id, Name: id, Rows: formats.SplitPlan(text)}
}

// Grid builds the static grid of the plan.
func (p Plan) Grid(table sim.SpawnTable, seed int64) (*sim.Grid, error) {
	g, err := sim.NewGrid(p.Rows, table, seed)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", p.ID, err)
	}
	return g, nil
}

// Start builds the grid and the initial state of the plan.
func (p Plan) Start(physics sim.Physics, seed int64) (*sim.State, error) {
	g, err := p.Grid(sim.NewSpawnTable(physics), seed)
	if err != nil {
		return nil, err
	}
	s, err := sim.StartWithPhysics(g, physics)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", p.ID, err)
	}
	return s, nil
}

// Validate checks that the plan can be started with the default physics.
func (p Plan) Validate() error {
	_, err := p.Start(sim.DefaultPhysics(), 0)
	return err
}

// Coins returns the number of coins in the plan.
func (p Plan) Coins() int {
	n := 0
	for _, row := range p.Rows {
		n += strings.Count(row, string(sim.SymbolCoin))
	}
	return n
}

// Size returns the plan dimensions in cells.
func (p Plan) Size() (w, h int) {
	if len(p.Rows) == 0 {
		return 0, 0
	}
	return len([]rune(p.Rows[0])), len(p.Rows)
}

func fromFormat(l formats.Level, path string) Plan {
	return Plan{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     l.Rows,
		Metadata: l.Metadata,
		FilePath: path,
	}
}
