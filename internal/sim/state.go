package sim

import (
	"fmt"
	"math"
	"slices"
)

// Status is the outcome of a level run.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can leave this status.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// State is an immutable snapshot of a level run. Every tick produces a new
// State; a State is never modified after construction and can be shared
// freely between readers.
type State struct {
	grid    *Grid
	actors  []Actor
	status  Status
	physics Physics
}

// Start creates the initial state of a level from its grid, using the
// reference physics.
func Start(g *Grid) (*State, error) {
	return StartWithPhysics(g, DefaultPhysics())
}

// StartWithPhysics creates the initial state of a level from its grid.
// The grid must have recorded exactly one player spawn.
func StartWithPhysics(g *Grid, p Physics) (*State, error) {
	if g == nil {
		return nil, ErrNoGrid
	}
	return NewState(g, g.spawns, StatusPlaying, p)
}

// NewState builds a state from explicit parts. It validates the
// single-player invariant, ID uniqueness and physics; actors is copied.
func NewState(g *Grid, actors []Actor, status Status, p Physics) (*State, error) {
	if g == nil {
		return nil, ErrNoGrid
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if n := countKind(actors, KindPlayer); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrPlayerCount, n)
	}
	seen := make(map[ActorID]bool, len(actors))
	for _, a := range actors {
		if seen[a.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, a.ID)
		}
		seen[a.ID] = true
	}

	return &State{
		grid:    g,
		actors:  slices.Clone(actors),
		status:  status,
		physics: p,
	}, nil
}

// Grid returns the level grid.
func (s *State) Grid() *Grid {
	return s.grid
}

// Status returns the run outcome so far.
func (s *State) Status() Status {
	return s.status
}

// Physics returns the constants this state sequence runs with.
func (s *State) Physics() Physics {
	return s.physics
}

// Actors returns a copy of the actor list in spawn order.
func (s *State) Actors() []Actor {
	return slices.Clone(s.actors)
}

// Player returns the player actor.
func (s *State) Player() Actor {
	for _, a := range s.actors {
		if a.Kind == KindPlayer {
			return a
		}
	}
	// Unreachable: every constructor enforces exactly one player.
	panic("sim: state without player")
}

// Actor returns the actor with the given ID, if it is still present.
func (s *State) Actor(id ActorID) (Actor, bool) {
	for _, a := range s.actors {
		if a.ID == id {
			return a, true
		}
	}
	return Actor{}, false
}

// Count returns the number of actors of the given kind.
func (s *State) Count(k Kind) int {
	return countKind(s.actors, k)
}

// Update advances the state by dt seconds with the given input.
//
// Order of resolution:
//  1. every actor computes its successor from this (prior) state;
//  2. if the run has already ended, the moved state is returned as is;
//  3. a player touching a lava cell loses immediately;
//  4. each other actor overlapping the player, in list order, collides
//     against the state accumulated so far.
//
// dt must be finite and positive; clamping it is the caller's job.
func (s *State) Update(dt float64, in Intent) (*State, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}

	actors := make([]Actor, len(s.actors))
	for i, a := range s.actors {
		actors[i] = a.Update(dt, s, in)
	}
	next := s.derive(actors, s.status)
	if next.status != StatusPlaying {
		return next, nil
	}

	player := next.Player()
	if s.grid.Touches(player.Pos, player.Size(), CellLava) {
		return s.derive(actors, StatusLost), nil
	}

	for _, a := range actors {
		if a.Kind != KindPlayer && Overlap(a, player) {
			next = a.Collide(next)
		}
	}
	return next, nil
}

// derive returns a state sharing grid and physics with s.
// actors must not be modified afterwards.
func (s *State) derive(actors []Actor, status Status) *State {
	return &State{
		grid:    s.grid,
		actors:  actors,
		status:  status,
		physics: s.physics,
	}
}

// without returns a new actor list lacking the actor with the given ID.
func (s *State) without(id ActorID) []Actor {
	out := make([]Actor, 0, len(s.actors))
	for _, a := range s.actors {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func countKind(actors []Actor, k Kind) int {
	n := 0
	for _, a := range actors {
		if a.Kind == k {
			n++
		}
	}
	return n
}
