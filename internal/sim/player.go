package sim

import "github.com/glptrst/platform-game/internal/core"

// updatePlayer applies walking, gravity and jumping.
// The horizontal move is tried first and dropped if it hits a wall. A blocked
// vertical move either starts a jump (up held while falling) or zeroes the
// vertical speed.
func (a Actor) updatePlayer(dt float64, s *State, in Intent) Actor {
	p := s.physics
	size := a.Size()

	xSpeed := 0.0
	if in.Left {
		xSpeed -= p.PlayerXSpeed
	}
	if in.Right {
		xSpeed += p.PlayerXSpeed
	}

	pos := a.Pos
	movedX := pos.Add(core.V(xSpeed*dt, 0))
	if !s.grid.Touches(movedX, size, CellWall) {
		pos = movedX
	}

	ySpeed := a.Speed.Y + dt*p.Gravity
	movedY := pos.Add(core.V(0, ySpeed*dt))
	switch {
	case !s.grid.Touches(movedY, size, CellWall):
		pos = movedY
	case in.Up && ySpeed > 0:
		ySpeed = -p.JumpSpeed
	default:
		ySpeed = 0
	}

	a.Pos = pos
	a.Speed = core.V(xSpeed, ySpeed)
	return a
}
