package config

import (
	_ "embed"
)

//go:embed defaults/brickball.yaml
var defaultBrickballYAML []byte

// DefaultBrickballConfig returns the default brickball configuration.
// It mirrors defaults/brickball.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBrickballConfig() BrickballConfig {
	return BrickballConfig{
		World: WorldConfig{
			Width:             800,
			Height:            600,
			PixelsPerMeter:    50,
			TimeStep:          1.0 / 60.0,
			SubSteps:          4,
			Iterations:        10,
			HitEventThreshold: 1.0,
			MaxLinearSpeed:    20,
			BoundsThickness:   10,
			BoundsRestitution: 0.8,
		},
		Ball: BallConfig{
			Radius:         15,
			Density:        1.0,
			Friction:       0.3,
			RestitutionMin: 0.7,
			RestitutionMax: 0.9,
			LinearDamping:  0.5,
		},
		Player: PlayerConfig{
			Start:     Point{X: 0.5, Y: 0.8},
			Color:     "#ffffff",
			MoveForce: 50,
		},
		Enemies: EnemyConfig{
			Count:    5,
			MaxSpeed: 8,
			MinSpeed: 1,
			Colors:   []string{"#e62937", "#0079f1", "#00e430", "#fdf900", "#ffa100"},
		},
		Walls: WallsConfig{
			MinLength:  8,
			MaxLength:  15,
			Horizontal: WallPlacement{At: Point{X: 0.25, Y: 0.25}, Color: "#7f6a4f"},
			Vertical:   WallPlacement{At: Point{X: 0.75, Y: 0.4167}, Color: "#828282"},
		},
		Brick: BrickConfig{
			HalfExtent:      7.5,
			Density:         1.0,
			Friction:        0.5,
			Restitution:     0.3,
			LinearDamping:   2.0,
			AngularDamping:  3.0,
			BorderThickness: 2,
			BorderShade:     -0.3,
		},
		Fracture: FractureConfig{
			Policy:          FractureVelocity,
			NormalImpulse:   1.0,
			VelocityDamping: 0.3,
		},
		Light: LightConfig{
			Type:      LightPoint,
			Position:  Point{X: 100, Y: 100},
			Direction: Point{X: -1, Y: -1},
			Attenuation: Attenuation{
				Constant:  1.0,
				Linear:    0.0014,
				Quadratic: 0.000007,
			},
		},
		Render: RenderConfig{
			Background:    "#00752c",
			ShowHUD:       true,
			SpecularAlpha: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraEnemies:    3,
			},
		},
	}
}
