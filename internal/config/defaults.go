package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platform.yaml
var defaultPlatformYAML []byte

// DefaultPlatformConfig returns the default platform game configuration.
func DefaultPlatformConfig() PlatformConfig {
	return PlatformConfig{
		Physics: PhysicsConfig{
			PlayerXSpeed:  7,
			Gravity:       30,
			JumpSpeed:     17,
			WobbleSpeed:   8,
			WobbleDist:    0.07,
			MonsterSpeed:  8,
			MonsterBounce: -10,
		},
		Run: RunConfig{
			MaxStep:   0.1,
			Lives:     3,
			EndDelay:  time.Second,
			HoldTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				MonsterSpeedMultiplier: 0.5,
			},
		},
	}
}
