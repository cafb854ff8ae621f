package sim

import (
	"math"

	"github.com/glptrst/platform-game/internal/core"
)

func (a Actor) updateCoin(dt float64, s *State) Actor {
	a.Wobble += dt * s.physics.WobbleSpeed
	a.Pos = a.BasePos.Add(core.V(0, math.Sin(a.Wobble)*s.physics.WobbleDist))
	return a
}

// collideCoin removes the coin and wins the level once no coin is left.
func (a Actor) collideCoin(s *State) *State {
	remaining := s.without(a.ID)
	status := s.status
	if countKind(remaining, KindCoin) == 0 {
		status = StatusWon
	}
	return s.derive(remaining, status)
}
