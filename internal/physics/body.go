// Package physics implements a small 2D rigid body world for arcade games.
// It supports static, kinematic and dynamic bodies with circle and box
// shapes. Collision begin events are returned from Step instead of being
// delivered through callbacks, so game code consumes them synchronously
// in tick order.
package physics

import "github.com/ainchor-labs/LevelForge/internal/core"

// MotionType determines how a body participates in the simulation.
type MotionType int

const (
	// MotionStatic bodies never move. Walls, bricks, sensors.
	MotionStatic MotionType = iota
	// MotionKinematic bodies are moved by game code via SetPosition and
	// are not affected by gravity or collision response. Paddles.
	MotionKinematic
	// MotionDynamic bodies are integrated and collide. Balls.
	MotionDynamic
)

// String returns a human-readable name for the motion type.
func (m MotionType) String() string {
	switch m {
	case MotionStatic:
		return "static"
	case MotionKinematic:
		return "kinematic"
	case MotionDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// ShapeKind identifies the geometry of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is the collision geometry of a body. Boxes are axis-aligned and
// defined by half extents around the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circle
	HalfW  float64 // box
	HalfH  float64 // box
}

// Circle returns a circle shape with the given radius.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned box shape with the given half extents.
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: halfW, HalfH: halfH}
}

// BodyID is a handle to a body in a World. Handles are generational:
// after a body is destroyed its slot may be reused, and the stale handle
// stops matching. A zero BodyID is never valid.
type BodyID struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether the handle is the zero value.
func (id BodyID) IsZero() bool {
	return id.Index == 0 && id.Generation == 0
}

// BodyDef describes a body to be created in a World.
type BodyDef struct {
	Position    core.Vec2
	Velocity    core.Vec2
	Shape       Shape
	Motion      MotionType
	Restitution float64 // bounciness in [0, 1], combined with max
	Sensor      bool    // sensors detect overlaps but do not collide
}
