// Package config provides YAML-based game configuration loading and
// difficulty management for brickball.
package config

// BrickballConfig contains all configuration for a brickball session.
// Lengths are in screen pixels unless the field says otherwise.
type BrickballConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ball       BallConfig       `yaml:"ball"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Walls      WallsConfig      `yaml:"walls"`
	Brick      BrickConfig      `yaml:"brick"`
	Fracture   FractureConfig   `yaml:"fracture"`
	Light      LightConfig      `yaml:"light"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Point is a 2D pair in YAML.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldConfig defines the simulated area and the physics step.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	Gravity        Point   `yaml:"gravity"` // m/s²
	TimeStep       float64 `yaml:"time_step"`
	SubSteps       int     `yaml:"sub_steps"`
	Iterations     int     `yaml:"iterations"`
	// HitEventThreshold is the approach speed in m/s that counts as a hit.
	HitEventThreshold    float64 `yaml:"hit_event_threshold"`
	RestitutionThreshold float64 `yaml:"restitution_threshold"`
	MaxLinearSpeed       float64 `yaml:"max_linear_speed"` // m/s, 0 for no cap
	BoundsThickness      float64 `yaml:"bounds_thickness"`
	BoundsRestitution    float64 `yaml:"bounds_restitution"`
}

// BallConfig defines the material shared by the player and enemy balls.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	Density        float64 `yaml:"density"`
	Friction       float64 `yaml:"friction"`
	RestitutionMin float64 `yaml:"restitution_min"`
	RestitutionMax float64 `yaml:"restitution_max"`
	LinearDamping  float64 `yaml:"linear_damping"`
}

// PlayerConfig defines the player-controlled ball.
type PlayerConfig struct {
	Start     Point   `yaml:"start"` // Fraction of the world size
	Color     string  `yaml:"color"`
	MoveForce float64 `yaml:"move_force"` // N
}

// EnemyConfig defines the self-propelled balls.
type EnemyConfig struct {
	Count    int      `yaml:"count"`
	MaxSpeed float64  `yaml:"max_speed"` // m/s per axis at spawn
	MinSpeed float64  `yaml:"min_speed"` // below this an enemy gets a new kick
	Colors   []string `yaml:"colors"`
}

// WallsConfig defines the two brick walls.
type WallsConfig struct {
	MinLength  int           `yaml:"min_length"`
	MaxLength  int           `yaml:"max_length"`
	Horizontal WallPlacement `yaml:"horizontal"`
	Vertical   WallPlacement `yaml:"vertical"`
}

// WallPlacement anchors a wall's first brick.
type WallPlacement struct {
	At    Point  `yaml:"at"` // Fraction of the world size
	Color string `yaml:"color"`
}

// BrickConfig defines a single brick.
type BrickConfig struct {
	HalfExtent      float64 `yaml:"half_extent"`
	Density         float64 `yaml:"density"`
	Friction        float64 `yaml:"friction"`
	Restitution     float64 `yaml:"restitution"`
	LinearDamping   float64 `yaml:"linear_damping"`
	AngularDamping  float64 `yaml:"angular_damping"`
	BorderThickness float64 `yaml:"border_thickness"`
	BorderShade     float64 `yaml:"border_shade"`
}

// Fracture impulse policies.
const (
	FractureVelocity = "velocity"
	FractureNormal   = "normal"
)

// FractureConfig defines what happens to a brick that breaks loose.
type FractureConfig struct {
	Policy          string  `yaml:"policy"`           // "velocity" or "normal"
	NormalImpulse   float64 `yaml:"normal_impulse"`   // N·s along the contact normal
	VelocityDamping float64 `yaml:"velocity_damping"` // Share of relative velocity handed to the brick
}

// Light types.
const (
	LightPoint       = "point"
	LightDirectional = "directional"
	LightNone        = "none"
)

// LightConfig defines the scene light.
type LightConfig struct {
	Type        string      `yaml:"type"`
	Position    Point       `yaml:"position"`  // Point light, pixels
	Direction   Point       `yaml:"direction"` // Directional light
	Attenuation Attenuation `yaml:"attenuation"`
}

// Attenuation holds point-light falloff terms.
type Attenuation struct {
	Constant  float64 `yaml:"constant"`
	Linear    float64 `yaml:"linear"`
	Quadratic float64 `yaml:"quadratic"`
}

// RenderConfig defines presentation details.
type RenderConfig struct {
	Background    string  `yaml:"background"`
	ShowHUD       bool    `yaml:"show_hud"`
	SpecularAlpha float64 `yaml:"specular_alpha"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Enemies added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
