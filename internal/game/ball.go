package game

import (
	"fmt"
	"math"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

// Ball manages the single dynamic projectile. The body is created once
// per game and only ever repositioned; losing the ball re-docks it on
// the paddle instead of recreating it.
type Ball struct {
	world    *physics.World
	body     physics.BodyID
	cfg      config.BallConfig
	launched bool
}

// NewBall creates the ball body. It starts docked; call Dock every tick
// while unlaunched to slave it to the paddle.
func NewBall(world *physics.World, cfg config.BallConfig) (*Ball, error) {
	body, err := world.CreateBody(physics.BodyDef{
		Shape:       physics.Circle(cfg.Radius),
		Motion:      physics.MotionDynamic,
		Restitution: cfg.Restitution,
	})
	if err != nil {
		return nil, fmt.Errorf("ball: create body: %w", err)
	}
	return &Ball{world: world, body: body, cfg: cfg}, nil
}

// Dock parks the ball at the paddle standoff with zero velocity and
// clears the launched flag.
func (b *Ball) Dock(paddle core.Vec2) {
	b.launched = false
	b.world.SetPosition(b.body, core.Vec2{
		X: paddle.X + b.cfg.StandoffX,
		Y: paddle.Y + b.cfg.StandoffY,
	})
	b.world.SetVelocity(b.body, core.Vec2{})
}

// Launch sends the ball off. Cone mode picks a random direction within
// the configured angle of straight up at the given speed; fixed mode
// always uses the configured vector.
func (b *Ball) Launch(rng *SimpleRNG, speed float64) {
	var v core.Vec2
	if b.cfg.LaunchMode == config.LaunchFixed {
		v = core.Vec2{X: b.cfg.LaunchVX, Y: b.cfg.LaunchVY}
	} else {
		theta := (rng.Float64()*2 - 1) * b.cfg.LaunchConeDeg * math.Pi / 180
		v = core.Vec2{X: speed * math.Sin(theta), Y: speed * math.Cos(theta)}
	}
	b.world.SetVelocity(b.body, v)
	b.launched = true
}

// Launched reports whether the ball is in flight.
func (b *Ball) Launched() bool {
	return b.launched
}

// MaintainSpeed renormalizes the ball velocity toward the target speed
// and keeps the vertical component above the configured minimum so the
// ball cannot settle into a near-horizontal loop. The clamp preserves
// sign; a dead-vertical zero gets pushed upward.
func (b *Ball) MaintainSpeed(target float64) {
	if !b.launched || !b.cfg.MaintainSpeed {
		return
	}
	v := b.world.Velocity(b.body)

	clamped := false
	if math.Abs(v.Y) < b.cfg.MinCrossSpeed {
		if v.Y < 0 {
			v.Y = -b.cfg.MinCrossSpeed
		} else {
			v.Y = b.cfg.MinCrossSpeed
		}
		clamped = true
	}

	speed := v.Length()
	if clamped || math.Abs(speed-target) > b.cfg.SpeedTolerance {
		if speed == 0 {
			v = core.Vec2{Y: target}
		} else {
			v = v.Normalized().Scale(target)
		}
	}
	b.world.SetVelocity(b.body, v)
}

// OutOfBounds reports whether the ball position has crossed any arena
// boundary plane by more than the configured margin.
func (b *Ball) OutOfBounds(width, height float64) bool {
	p := b.world.Position(b.body)
	m := b.cfg.OOBMargin
	return p.X < -m || p.X > width+m || p.Y < -m || p.Y > height+m
}

// Position returns the ball center.
func (b *Ball) Position() core.Vec2 {
	return b.world.Position(b.body)
}

// Velocity returns the ball velocity.
func (b *Ball) Velocity() core.Vec2 {
	return b.world.Velocity(b.body)
}

// Body returns the ball body handle.
func (b *Ball) Body() physics.BodyID {
	return b.body
}

// Radius returns the collision radius for rendering.
func (b *Ball) Radius() float64 {
	return b.cfg.Radius
}
