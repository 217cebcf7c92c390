package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBrickball loads brickball configuration.
// Search order: customPath -> ~/.brickball/configs/brickball.yaml ->
// ./configs/brickball.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped silently when missing or broken.
func LoadBrickball(customPath string) (BrickballConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickballConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBrickball(data)
		if err != nil {
			return BrickballConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("brickball.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBrickball(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "brickball.yaml")); err == nil {
		if cfg, err := parseBrickball(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBrickball(defaultBrickballYAML)
	if err != nil {
		return DefaultBrickballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBrickball(data []byte) (BrickballConfig, error) {
	cfg := DefaultBrickballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg BrickballConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickball", "configs", filename)
}

// ApplyBrickballPreset modifies the config based on a difficulty preset.
func ApplyBrickballPreset(cfg *BrickballConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the arena based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 3
		cfg.Enemies.MaxSpeed = 5
		cfg.Walls.MaxLength = 10
	case DifficultyHard:
		cfg.Enemies.Count = 7
		cfg.Enemies.MaxSpeed = 12
		cfg.Fracture.Policy = FractureNormal
	}
}

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every inconsistent setting in cfg.
func (cfg BrickballConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	w := cfg.World
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %vx%v", w.Width, w.Height)
	check(w.PixelsPerMeter > 0, "world.pixels_per_meter must be positive, got %v", w.PixelsPerMeter)
	check(w.TimeStep > 0, "world.time_step must be positive, got %v", w.TimeStep)
	check(w.SubSteps > 0, "world.sub_steps must be positive, got %d", w.SubSteps)
	check(w.Iterations > 0, "world.iterations must be positive, got %d", w.Iterations)
	check(w.HitEventThreshold >= 0, "world.hit_event_threshold must not be negative, got %v", w.HitEventThreshold)
	check(w.MaxLinearSpeed >= 0, "world.max_linear_speed must not be negative, got %v", w.MaxLinearSpeed)
	check(w.RestitutionThreshold == 0, "world.restitution_threshold must be 0, got %v", w.RestitutionThreshold)

	check(cfg.Ball.Radius > 0, "ball.radius must be positive, got %v", cfg.Ball.Radius)
	check(cfg.Ball.RestitutionMin <= cfg.Ball.RestitutionMax,
		"ball.restitution_min %v exceeds restitution_max %v", cfg.Ball.RestitutionMin, cfg.Ball.RestitutionMax)

	check(cfg.Enemies.Count >= 0, "enemies.count must not be negative, got %d", cfg.Enemies.Count)
	// Extra enemies come from initial_level even with progression disabled.
	spawns := cfg.Enemies.Count > 0 || cfg.Difficulty.Scaling.ExtraEnemies > 0
	check(!spawns || len(cfg.Enemies.Colors) > 0, "enemies.colors must not be empty")

	check(cfg.Walls.MinLength >= 0, "walls.min_length must not be negative, got %d", cfg.Walls.MinLength)
	check(cfg.Walls.MinLength <= cfg.Walls.MaxLength,
		"walls.min_length %d exceeds max_length %d", cfg.Walls.MinLength, cfg.Walls.MaxLength)

	check(cfg.Brick.HalfExtent > 0, "brick.half_extent must be positive, got %v", cfg.Brick.HalfExtent)
	check(cfg.Brick.Density > 0, "brick.density must be positive, got %v", cfg.Brick.Density)

	switch cfg.Fracture.Policy {
	case FractureVelocity, FractureNormal:
	default:
		check(false, "unknown fracture.policy %q", cfg.Fracture.Policy)
	}

	switch cfg.Light.Type {
	case LightPoint:
		a := cfg.Light.Attenuation
		check(a.Constant > 0, "light.attenuation.constant must be positive, got %v", a.Constant)
		check(a.Linear >= 0 && a.Quadratic >= 0,
			"light.attenuation linear and quadratic must not be negative, got %v and %v", a.Linear, a.Quadratic)
	case LightDirectional, LightNone:
	default:
		check(false, "unknown light.type %q", cfg.Light.Type)
	}

	switch cfg.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		check(false, "unknown difficulty.progression.type %q", cfg.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
