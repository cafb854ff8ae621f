package sim

func (a Actor) updateLava(dt float64, s *State) Actor {
	newPos := a.Pos.Add(a.Speed.Scale(dt))
	switch {
	case !s.grid.Touches(newPos, a.Size(), CellWall):
		a.Pos = newPos
	case a.Dripping:
		a.Pos = a.ResetPos
	default:
		a.Speed = a.Speed.Scale(-1)
	}
	return a
}

// collideLava ends the game.
func (a Actor) collideLava(s *State) *State {
	return s.derive(s.actors, StatusLost)
}
