package game

import (
	"fmt"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

// Paddle drives the kinematic paddle body. Input deltas are scaled by
// speed and the timestep, clamped per axis, and written straight to the
// body position.
type Paddle struct {
	world *physics.World
	body  physics.BodyID
	cfg   config.PaddleConfig
	pos   core.Vec2
}

// NewPaddle creates the paddle body at its start position.
func NewPaddle(world *physics.World, cfg config.PaddleConfig) (*Paddle, error) {
	pos := core.Vec2{X: cfg.StartX, Y: cfg.StartY}
	body, err := world.CreateBody(physics.BodyDef{
		Position: pos,
		Shape:    physics.Box(cfg.HalfW, cfg.HalfH),
		Motion:   physics.MotionKinematic,
	})
	if err != nil {
		return nil, fmt.Errorf("paddle: create body: %w", err)
	}
	return &Paddle{world: world, body: body, cfg: cfg, pos: pos}, nil
}

// Update moves the paddle by the signed axis deltas. Each axis clamps
// to its travel range shrunk by the half extent; a degenerate range
// locks the axis at the range center.
func (p *Paddle) Update(dx, dy, dt float64) {
	p.pos.X = clampAxis(p.pos.X+dx*p.cfg.Speed*dt, p.cfg.MinX, p.cfg.MaxX, p.cfg.HalfW)
	p.pos.Y = clampAxis(p.pos.Y+dy*p.cfg.Speed*dt, p.cfg.MinY, p.cfg.MaxY, p.cfg.HalfH)
	p.world.SetPosition(p.body, p.pos)
}

func clampAxis(v, min, max, half float64) float64 {
	lo, hi := min+half, max-half
	if lo >= hi {
		return (min + max) / 2
	}
	return core.ClampF(v, lo, hi)
}

// Reset moves the paddle back to its start position.
func (p *Paddle) Reset() {
	p.pos = core.Vec2{X: p.cfg.StartX, Y: p.cfg.StartY}
	p.world.SetPosition(p.body, p.pos)
}

// Position returns the paddle center.
func (p *Paddle) Position() core.Vec2 {
	return p.pos
}

// SetPosition teleports the paddle, clamped to its travel range.
func (p *Paddle) SetPosition(pos core.Vec2) {
	p.pos.X = clampAxis(pos.X, p.cfg.MinX, p.cfg.MaxX, p.cfg.HalfW)
	p.pos.Y = clampAxis(pos.Y, p.cfg.MinY, p.cfg.MaxY, p.cfg.HalfH)
	p.world.SetPosition(p.body, p.pos)
}

// Body returns the paddle body handle.
func (p *Paddle) Body() physics.BodyID {
	return p.body
}

// HalfExtents returns the paddle half extents for rendering.
func (p *Paddle) HalfExtents() (float64, float64) {
	return p.cfg.HalfW, p.cfg.HalfH
}
