// Package config provides YAML-based configuration loading and difficulty
// management for the platform game.
package config

import (
	"time"

	"github.com/glptrst/platform-game/internal/sim"
)

// PlatformConfig contains all configuration for the platform game.
type PlatformConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Run        RunConfig        `yaml:"run"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the simulation constants, in level units and seconds.
type PhysicsConfig struct {
	PlayerXSpeed  float64 `yaml:"player_x_speed"`
	Gravity       float64 `yaml:"gravity"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	WobbleSpeed   float64 `yaml:"wobble_speed"`
	WobbleDist    float64 `yaml:"wobble_dist"`
	MonsterSpeed  float64 `yaml:"monster_speed"`
	MonsterBounce float64 `yaml:"monster_bounce"`
}

// Physics converts the config into kernel constants.
func (p PhysicsConfig) Physics() sim.Physics {
	return sim.Physics{
		PlayerXSpeed:  p.PlayerXSpeed,
		Gravity:       p.Gravity,
		JumpSpeed:     p.JumpSpeed,
		WobbleSpeed:   p.WobbleSpeed,
		WobbleDist:    p.WobbleDist,
		MonsterSpeed:  p.MonsterSpeed,
		MonsterBounce: p.MonsterBounce,
	}
}

// RunConfig defines how the host drives a campaign.
type RunConfig struct {
	MaxStep   float64       `yaml:"max_step"`   // Upper bound for one tick's dt, seconds
	Lives     int           `yaml:"lives"`      // Attempts before game over
	EndDelay  time.Duration `yaml:"end_delay"`  // Pause after a level is won or lost
	HoldTicks int           `yaml:"hold_ticks"` // Ticks a key press stays held
}

// DifficultyConfig defines how the campaign gets harder level by level.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MonsterSpeedMultiplier float64 `yaml:"monster_speed_multiplier"` // Added to monster speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// LivesForPreset returns the number of lives a preset grants, or 0 if the
// preset keeps the configured value.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}
