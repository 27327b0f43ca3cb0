// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// GameConfig contains all configuration for a physics arcade game.
// Both game variants use the same schema with different values.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Targets    TargetsConfig    `yaml:"targets"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation world. Coordinates are in world
// units with the origin at the bottom-left corner and Y pointing up.
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	GravityY  float64 `yaml:"gravity_y"`  // 0 disables gravity
	MaxBodies int     `yaml:"max_bodies"` // body ceiling for the physics world
	Walls     bool    `yaml:"walls"`      // solid left/right/top walls
}

// PaddleConfig defines the kinematic paddle. An axis whose travel range
// is degenerate (min >= max after half-extent shrink) is locked.
type PaddleConfig struct {
	HalfW  float64 `yaml:"half_w"`
	HalfH  float64 `yaml:"half_h"`
	Speed  float64 `yaml:"speed"` // world units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// BallConfig defines the single dynamic ball.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
	StandoffX   float64 `yaml:"standoff_x"` // docked offset from paddle center
	StandoffY   float64 `yaml:"standoff_y"`

	// Launch behavior. "cone" picks a random direction within
	// cone_deg of straight up at launch_speed; "fixed" always uses
	// (launch_vx, launch_vy).
	LaunchMode    string  `yaml:"launch_mode"`
	LaunchSpeed   float64 `yaml:"launch_speed"`
	LaunchConeDeg float64 `yaml:"launch_cone_deg"`
	LaunchVX      float64 `yaml:"launch_vx"`
	LaunchVY      float64 `yaml:"launch_vy"`

	// Speed maintenance renormalizes velocity toward launch_speed after
	// every step and keeps |vy| above min_cross_speed so the ball never
	// settles into a flat horizontal loop.
	MaintainSpeed  bool    `yaml:"maintain_speed"`
	SpeedTolerance float64 `yaml:"speed_tolerance"`
	MinCrossSpeed  float64 `yaml:"min_cross_speed"`

	// Distance past the arena edges at which the ball counts as lost.
	OOBMargin float64 `yaml:"oob_margin"`
}

// TargetsConfig defines the destructible target population.
type TargetsConfig struct {
	Layout string `yaml:"layout"` // "grid" or "scatter"

	// Grid layout: rows x cols of boxes filling the region.
	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	HalfW float64 `yaml:"half_w"`
	HalfH float64 `yaml:"half_h"`

	// Scatter layout: count circles placed randomly in the region.
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`

	Region RegionConfig `yaml:"region"`
	Tiers  []TierRule   `yaml:"tiers"`
}

// RegionConfig is the world-space rectangle targets spawn in.
type RegionConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// TierRule buckets a target's spawn position into a point value and
// visual tag. Rules are evaluated in declared order against a scalar
// key (grid row from the bottom, or spawn height); the first rule whose
// threshold the key meets wins, so declare high tiers first.
type TierRule struct {
	Threshold float64 `yaml:"threshold"`
	Tag       string  `yaml:"tag"`
	Points    int     `yaml:"points"`
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Attempts int `yaml:"attempts"` // balls/lives per game

	// ClearPolicy decides what clearing every target does: "win" ends
	// the game, "respawn" spawns a fresh wave and play continues.
	ClearPolicy string `yaml:"clear_policy"`

	// Stepping selects the physics timestep: "fixed" always advances
	// by fixed_dt regardless of tick rate, "scaled" uses 1/tick_rate.
	Stepping string  `yaml:"stepping"`
	FixedDT  float64 `yaml:"fixed_dt"`

	ServeDelay int `yaml:"serve_delay"` // ticks before re-serve after a miss
}

// Clear policy and stepping mode values.
const (
	ClearPolicyWin     = "win"
	ClearPolicyRespawn = "respawn"

	SteppingFixed  = "fixed"
	SteppingScaled = "scaled"

	LayoutGrid    = "grid"
	LayoutScatter = "scatter"

	LaunchCone  = "cone"
	LaunchFixed = "fixed"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
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
