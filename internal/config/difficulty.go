package config

import "github.com/glptrst/platform-game/internal/core"

// DifficultyManager turns campaign progress into per-level tuning.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64 // difficulty of the first level, in [0, 1]
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether difficulty changes between levels.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level is the difficulty in [0, 1] of the level at index. With "level"
// progression it climbs linearly from the initial level to 1 at max_at;
// any other progression stays at the initial level. Disabled means 0.
func (d *DifficultyManager) Level(index int) float64 {
	switch {
	case !d.cfg.Enabled:
		return 0
	case d.cfg.Progression.Type != "level":
		return d.start
	}
	span := float64(max(d.cfg.Progression.MaxAt, 1))
	t := core.ClampF(float64(index)/span, 0, 1)
	return d.start + (1-d.start)*t
}

// MonsterSpeed scales base by up to 1 + monster_speed_multiplier.
func (d *DifficultyManager) MonsterSpeed(base float64, index int) float64 {
	return base * (1 + d.cfg.Scaling.MonsterSpeedMultiplier*d.Level(index))
}
