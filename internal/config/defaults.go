package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/targets.yaml
var defaultTargetsYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration:
// a grid of row-tiered bricks, no gravity, speed-maintained ball,
// win on clearing the wall.
func DefaultBreakoutConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:     40,
			Height:    30,
			GravityY:  0,
			MaxBodies: 64,
			Walls:     true,
		},
		Paddle: PaddleConfig{
			HalfW:  3,
			HalfH:  0.5,
			Speed:  30,
			StartX: 20,
			StartY: 2,
			MinX:   0,
			MaxX:   40,
			MinY:   2,
			MaxY:   2, // Y locked
		},
		Ball: BallConfig{
			Radius:         0.5,
			Restitution:    1.0,
			StandoffX:      0,
			StandoffY:      1.2,
			LaunchMode:     LaunchCone,
			LaunchSpeed:    18,
			LaunchConeDeg:  30,
			MaintainSpeed:  true,
			SpeedTolerance: 0.05,
			MinCrossSpeed:  2.0,
			OOBMargin:      2,
		},
		Targets: TargetsConfig{
			Layout: LayoutGrid,
			Rows:   5,
			Cols:   10,
			HalfW:  1.7,
			HalfH:  0.5,
			Region: RegionConfig{MinX: 1, MaxX: 39, MinY: 18, MaxY: 28},
			Tiers: []TierRule{
				{Threshold: 4, Tag: "red", Points: 50},
				{Threshold: 3, Tag: "orange", Points: 40},
				{Threshold: 2, Tag: "gold", Points: 30},
				{Threshold: 1, Tag: "green", Points: 20},
				{Threshold: 0, Tag: "blue", Points: 10},
			},
		},
		Gameplay: GameplayConfig{
			Attempts:    3,
			ClearPolicy: ClearPolicyWin,
			Stepping:    SteppingScaled,
			FixedDT:     1.0 / 60.0,
			ServeDelay:  60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultTargetsConfig returns the default Targets configuration:
// scattered height-tiered targets, gravity on, fixed launch vector,
// endless respawning waves, ten balls.
func DefaultTargetsConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:     40,
			Height:    20,
			GravityY:  -9.8,
			MaxBodies: 32,
		},
		Paddle: PaddleConfig{
			HalfW:  0.4,
			HalfH:  1.5,
			Speed:  12,
			StartX: 3,
			StartY: 3,
			MinX:   1,
			MaxX:   8,
			MinY:   1.5,
			MaxY:   18.5,
		},
		Ball: BallConfig{
			Radius:        0.4,
			Restitution:   0.5,
			StandoffX:     1.0,
			StandoffY:     0.5,
			LaunchMode:    LaunchFixed,
			LaunchVX:      15,
			LaunchVY:      6,
			MaintainSpeed: false,
			OOBMargin:     5,
		},
		Targets: TargetsConfig{
			Layout: LayoutScatter,
			Count:  5,
			Radius: 0.8,
			Region: RegionConfig{MinX: 20, MaxX: 38, MinY: 1, MaxY: 6},
			Tiers: []TierRule{
				{Threshold: 4, Tag: "gold", Points: 30},
				{Threshold: 2, Tag: "orange", Points: 20},
				{Threshold: 0, Tag: "white", Points: 10},
			},
		},
		Gameplay: GameplayConfig{
			Attempts:    10,
			ClearPolicy: ClearPolicyRespawn,
			Stepping:    SteppingFixed,
			FixedDT:     1.0 / 60.0,
			ServeDelay:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "targets":
		return defaultTargetsYAML
	default:
		return nil
	}
}
