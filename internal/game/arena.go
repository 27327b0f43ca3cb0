// Package game implements the physics arcade core shared by the
// breakout and targets variants: arena geometry, destructible targets,
// contact resolution, paddle and ball control, and the round state
// machine. All simulation state lives in an internal/physics world
// owned by the single game-logic goroutine.
package game

import (
	"fmt"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

const wallThickness = 1.0

// Arena registers the static playfield geometry with the world once per
// game: optional solid walls and the out-of-bounds sink sensor under
// the floor line. It has no per-tick behavior.
type Arena struct {
	width  float64
	height float64
	sink   physics.BodyID
}

// NewArena creates the arena bodies. Breakout gets solid left/right/top
// walls with the sink below the paddle; targets plays open-court with
// the ground itself acting as the sink.
func NewArena(w *physics.World, cfg config.WorldConfig) (*Arena, error) {
	a := &Arena{width: cfg.Width, height: cfg.Height}

	if cfg.Walls {
		walls := []struct {
			name string
			def  physics.BodyDef
		}{
			{"left wall", physics.BodyDef{
				Position: core.Vec2{X: -wallThickness, Y: cfg.Height / 2},
				Shape:    physics.Box(wallThickness, cfg.Height),
			}},
			{"right wall", physics.BodyDef{
				Position: core.Vec2{X: cfg.Width + wallThickness, Y: cfg.Height / 2},
				Shape:    physics.Box(wallThickness, cfg.Height),
			}},
			{"ceiling", physics.BodyDef{
				Position: core.Vec2{X: cfg.Width / 2, Y: cfg.Height + wallThickness},
				Shape:    physics.Box(cfg.Width, wallThickness),
			}},
		}
		for _, wl := range walls {
			if _, err := w.CreateBody(wl.def); err != nil {
				return nil, fmt.Errorf("arena: create %s: %w", wl.name, err)
			}
		}
	}

	// The sink spans the full width just below y=0. A ball touching it
	// is out of play; the sensor reports the contact without deflecting.
	sink, err := w.CreateBody(physics.BodyDef{
		Position: core.Vec2{X: cfg.Width / 2, Y: -0.6},
		Shape:    physics.Box(cfg.Width*2, 0.6),
		Sensor:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("arena: create sink sensor: %w", err)
	}
	a.sink = sink

	return a, nil
}

// Sink returns the out-of-bounds sensor body.
func (a *Arena) Sink() physics.BodyID {
	return a.sink
}
