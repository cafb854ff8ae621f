// Package sim implements the platformer simulation kernel: an immutable level
// grid, a set of actors, and a deterministic tick transition from one State to
// the next. It is UI-agnostic and performs no I/O.
package sim

import (
	"fmt"
	"math"
)

// Physics holds the tuning constants used by actor updates and spawns.
type Physics struct {
	PlayerXSpeed  float64 // Horizontal walking speed, units/s
	Gravity       float64 // Downward acceleration on the player, units/s²
	JumpSpeed     float64 // Upward speed issued by a jump
	WobbleSpeed   float64 // Coin wobble phase advance, rad/s
	WobbleDist    float64 // Coin wobble amplitude, units
	MonsterSpeed  float64 // Horizontal monster speed magnitude at spawn
	MonsterBounce float64 // Vertical speed given to the player on monster contact
}

// DefaultPhysics returns the reference constants.
func DefaultPhysics() Physics {
	return Physics{
		PlayerXSpeed:  7,
		Gravity:       30,
		JumpSpeed:     17,
		WobbleSpeed:   8,
		WobbleDist:    0.07,
		MonsterSpeed:  8,
		MonsterBounce: -10,
	}
}

// Validate returns an error if any constant is NaN or infinite.
func (p Physics) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"player_x_speed", p.PlayerXSpeed},
		{"gravity", p.Gravity},
		{"jump_speed", p.JumpSpeed},
		{"wobble_speed", p.WobbleSpeed},
		{"wobble_dist", p.WobbleDist},
		{"monster_speed", p.MonsterSpeed},
		{"monster_bounce", p.MonsterBounce},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidPhysics, f.name, f.v)
		}
	}
	return nil
}
