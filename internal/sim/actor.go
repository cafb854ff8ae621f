package sim

import "github.com/glptrst/platform-game/internal/core"

// ActorID identifies an actor for the lifetime of a state sequence.
// IDs are assigned at spawn and never reused within one level.
type ActorID uint32

// Kind selects the behaviour of an actor.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindLava
	KindCoin
	KindMonster
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Size returns the bounding box size shared by every actor of this kind.
func (k Kind) Size() core.Vec {
	switch k {
	case KindPlayer:
		return core.V(0.8, 1.5)
	case KindLava:
		return core.V(1, 1)
	case KindCoin:
		return core.V(0.6, 0.6)
	case KindMonster:
		return core.V(1.2, 2)
	default:
		return core.Vec{}
	}
}

// Intent is the per-tick input record.
type Intent struct {
	Left  bool
	Right bool
	Up    bool
}

// Actor is a moving or animated entity. It is a tagged value: Kind decides
// which of the kind-specific fields are meaningful. Actors are values and
// every update returns a new one.
type Actor struct {
	ID    ActorID
	Kind  Kind
	Pos   core.Vec // Top-left corner of the bounding box
	Speed core.Vec // Player, lava and monster velocity

	// Lava only: a dripping lava returns to ResetPos when blocked.
	Dripping bool
	ResetPos core.Vec

	// Coin only: anchor position and wobble phase.
	BasePos core.Vec
	Wobble  float64
}

// NewPlayer returns a player at rest.
func NewPlayer(id ActorID, pos core.Vec) Actor {
	return Actor{ID: id, Kind: KindPlayer, Pos: pos}
}

// NewLava returns a lava block that bounces off walls.
func NewLava(id ActorID, pos, speed core.Vec) Actor {
	return Actor{ID: id, Kind: KindLava, Pos: pos, Speed: speed}
}

// NewDrippingLava returns a lava block that restarts from pos when blocked.
func NewDrippingLava(id ActorID, pos, speed core.Vec) Actor {
	return Actor{ID: id, Kind: KindLava, Pos: pos, Speed: speed, Dripping: true, ResetPos: pos}
}

// NewCoin returns a coin anchored at basePos with the given wobble phase.
func NewCoin(id ActorID, basePos core.Vec, wobble float64) Actor {
	return Actor{ID: id, Kind: KindCoin, Pos: basePos, BasePos: basePos, Wobble: wobble}
}

// NewMonster returns a monster patrolling horizontally.
func NewMonster(id ActorID, pos, speed core.Vec) Actor {
	return Actor{ID: id, Kind: KindMonster, Pos: pos, Speed: core.V(speed.X, 0)}
}

// Size returns the actor's bounding box size.
func (a Actor) Size() core.Vec {
	return a.Kind.Size()
}

// Box returns the actor's bounding box.
func (a Actor) Box() core.Box {
	return core.Box{Pos: a.Pos, Size: a.Size()}
}

// Overlap reports whether two actors' bounding boxes intersect with nonzero
// area. Touching edges do not count.
func Overlap(a, b Actor) bool {
	return a.Box().Intersects(b.Box())
}

// Update computes the actor's successor for a tick of dt seconds. It reads
// only the prior state s, never other actors' results for the same tick.
func (a Actor) Update(dt float64, s *State, in Intent) Actor {
	switch a.Kind {
	case KindPlayer:
		return a.updatePlayer(dt, s, in)
	case KindLava:
		return a.updateLava(dt, s)
	case KindCoin:
		return a.updateCoin(dt, s)
	case KindMonster:
		return a.updateMonster(dt, s)
	default:
		return a
	}
}

// Collide resolves this actor touching the player and returns the resulting
// state. Players never initiate a collision.
func (a Actor) Collide(s *State) *State {
	switch a.Kind {
	case KindLava:
		return a.collideLava(s)
	case KindCoin:
		return a.collideCoin(s)
	case KindMonster:
		return a.collideMonster(s)
	default:
		return s
	}
}
