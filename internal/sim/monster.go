package sim

import "github.com/glptrst/platform-game/internal/core"

func (a Actor) updateMonster(dt float64, s *State) Actor {
	newPos := a.Pos.Add(core.V(a.Speed.X*dt, 0))
	if s.grid.Touches(newPos, a.Size(), CellWall) {
		a.Speed = core.V(-a.Speed.X, 0)
		return a
	}
	a.Pos = newPos
	return a
}

// collideMonster bounces the player, then either removes the monster (the
// player came down on it from less than one unit above its top) or ends the
// game. The bounce is applied in both cases.
func (a Actor) collideMonster(s *State) *State {
	actors := make([]Actor, len(s.actors))
	var player Actor
	for i, other := range s.actors {
		if other.Kind == KindPlayer {
			other.Speed = core.V(other.Speed.X, s.physics.MonsterBounce)
			player = other
		}
		actors[i] = other
	}
	bounced := s.derive(actors, s.status)

	if player.Box().Bottom()-a.Pos.Y < 1 {
		return bounced.derive(bounced.without(a.ID), bounced.status)
	}
	return bounced.derive(bounced.actors, StatusLost)
}
