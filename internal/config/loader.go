package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatform reads the platform config. An explicit customPath must load;
// otherwise the first readable file of ~/.platform/configs/platform.yaml and
// ./configs/platform.yaml wins, then the embedded defaults. Keys missing from
// a file keep their default values.
func LoadPlatform(customPath string) (PlatformConfig, error) {
	if customPath != "" {
		cfg, err := decodePlatform(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("platform.yaml"), filepath.Join("configs", "platform.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := decodePlatform(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg := DefaultPlatformConfig()
	if err := yaml.Unmarshal(defaultPlatformYAML, &cfg); err != nil {
		return DefaultPlatformConfig(), nil
	}
	return cfg, nil
}

func decodePlatform(path string) (PlatformConfig, error) {
	cfg := DefaultPlatformConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPlatformConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the host cannot run with.
func (c PlatformConfig) Validate() error {
	if err := c.Physics.Physics().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Run.MaxStep <= 0 {
		return fmt.Errorf("invalid config: run.max_step must be positive, got %v", c.Run.MaxStep)
	}
	if c.Run.Lives < 1 {
		return fmt.Errorf("invalid config: run.lives must be at least 1, got %d", c.Run.Lives)
	}
	if c.Run.EndDelay < 0 || c.Run.HoldTicks < 0 {
		return fmt.Errorf("invalid config: run.end_delay and run.hold_ticks must not be negative")
	}
	return nil
}

// userConfigPath is empty when there is no home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platform", "configs", filename)
}

// ApplyPlatformPreset overrides the difficulty and lives of cfg. The fixed
// preset turns progression off and keeps the configured lives.
func ApplyPlatformPreset(cfg *PlatformConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	if lives := LivesForPreset(preset); lives > 0 {
		cfg.Run.Lives = lives
	}
}
