package physics

import (
	"errors"
	"math"

	"github.com/ainchor-labs/LevelForge/internal/core"
)

// ErrBodyLimit is returned by CreateBody when the world is full.
var ErrBodyLimit = errors.New("physics: body limit reached")

type body struct {
	alive      bool
	generation uint32
	position   core.Vec2
	velocity   core.Vec2
	shape      Shape
	motion     MotionType
	restitut   float64
	sensor     bool
}

// World holds all bodies and steps the simulation. Bodies live in a
// fixed-capacity slot arena; handles are generational so destroyed
// bodies cannot be touched through stale IDs.
//
// World is not safe for concurrent use. The game loop owns it.
type World struct {
	gravity   core.Vec2
	bodies    []body
	freeSlots []uint32
	liveCount int
	maxBodies int
	tracker   *contactTracker
}

// NewWorld creates a world with the given gravity and body capacity.
func NewWorld(gravity core.Vec2, maxBodies int) *World {
	if maxBodies < 1 {
		maxBodies = 1
	}
	return &World{
		gravity:   gravity,
		maxBodies: maxBodies,
		tracker:   newContactTracker(),
	}
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int {
	return w.liveCount
}

// CreateBody adds a body to the world. It fails with ErrBodyLimit when
// the capacity given to NewWorld is exhausted.
func (w *World) CreateBody(def BodyDef) (BodyID, error) {
	if w.liveCount >= w.maxBodies {
		return BodyID{}, ErrBodyLimit
	}

	var idx uint32
	if n := len(w.freeSlots); n > 0 {
		idx = w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
	} else {
		w.bodies = append(w.bodies, body{})
		idx = uint32(len(w.bodies) - 1)
	}

	b := &w.bodies[idx]
	b.alive = true
	b.generation++
	b.position = def.Position
	b.velocity = def.Velocity
	b.shape = def.Shape
	b.motion = def.Motion
	b.restitut = core.ClampF(def.Restitution, 0, 1)
	b.sensor = def.Sensor
	w.liveCount++

	return BodyID{Index: idx, Generation: b.generation}, nil
}

// DestroyBody removes a body. Destroying an already-destroyed or stale
// handle is a no-op.
func (w *World) DestroyBody(id BodyID) {
	b := w.lookup(id)
	if b == nil {
		return
	}
	b.alive = false
	w.freeSlots = append(w.freeSlots, id.Index)
	w.liveCount--
}

// Alive reports whether the handle refers to a live body.
func (w *World) Alive(id BodyID) bool {
	return w.lookup(id) != nil
}

// Position returns the body position, or the zero vector for a stale handle.
func (w *World) Position(id BodyID) core.Vec2 {
	if b := w.lookup(id); b != nil {
		return b.position
	}
	return core.Vec2{}
}

// SetPosition teleports a body. Used to drive kinematic bodies and to
// re-dock balls.
func (w *World) SetPosition(id BodyID, p core.Vec2) {
	if b := w.lookup(id); b != nil {
		b.position = p
	}
}

// Velocity returns the body velocity, or the zero vector for a stale handle.
func (w *World) Velocity(id BodyID) core.Vec2 {
	if b := w.lookup(id); b != nil {
		return b.velocity
	}
	return core.Vec2{}
}

// SetVelocity overwrites a body velocity.
func (w *World) SetVelocity(id BodyID, v core.Vec2) {
	if b := w.lookup(id); b != nil {
		b.velocity = v
	}
}

func (w *World) lookup(id BodyID) *body {
	if int(id.Index) >= len(w.bodies) {
		return nil
	}
	b := &w.bodies[id.Index]
	if !b.alive || b.generation != id.Generation {
		return nil
	}
	return b
}

// Step advances the simulation by dt seconds and returns the collision
// begin events produced during the step. Events are ordered by body slot
// index, so identical inputs yield identical event sequences.
func (w *World) Step(dt float64) []Contact {
	// Integrate dynamic bodies.
	for i := range w.bodies {
		b := &w.bodies[i]
		if !b.alive || b.motion != MotionDynamic {
			continue
		}
		b.velocity = b.velocity.Add(w.gravity.Scale(dt))
		b.position = b.position.Add(b.velocity.Scale(dt))
	}

	// Detect and resolve overlaps. Dynamic bodies are tested against
	// every other body; the pair tracker keeps reports symmetric.
	for i := range w.bodies {
		a := &w.bodies[i]
		if !a.alive || a.motion != MotionDynamic {
			continue
		}
		for j := range w.bodies {
			if i == j {
				continue
			}
			b := &w.bodies[j]
			if !b.alive {
				continue
			}
			// Dynamic pairs are handled once, from the lower slot.
			if b.motion == MotionDynamic && j < i {
				continue
			}
			normal, depth, ok := overlap(a, b)
			if !ok {
				continue
			}
			aID := BodyID{Index: uint32(i), Generation: a.generation}
			bID := BodyID{Index: uint32(j), Generation: b.generation}
			w.tracker.report(aID, bID)
			if a.sensor || b.sensor {
				continue
			}
			resolve(a, b, normal, depth)
		}
	}

	return w.tracker.flush()
}

// overlap tests body a (dynamic) against body b. It returns the contact
// normal pointing from b toward a and the penetration depth.
func overlap(a, b *body) (core.Vec2, float64, bool) {
	switch {
	case a.shape.Kind == ShapeCircle && b.shape.Kind == ShapeCircle:
		return circleCircle(a, b)
	case a.shape.Kind == ShapeCircle && b.shape.Kind == ShapeBox:
		return circleBox(a, b)
	case a.shape.Kind == ShapeBox && b.shape.Kind == ShapeCircle:
		n, d, ok := circleBox(b, a)
		return n.Scale(-1), d, ok
	default:
		return boxBox(a, b)
	}
}

func circleCircle(a, b *body) (core.Vec2, float64, bool) {
	d := a.position.Sub(b.position)
	rsum := a.shape.Radius + b.shape.Radius
	distSq := d.LengthSq()
	if distSq >= rsum*rsum {
		return core.Vec2{}, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		// Coincident centers, pick an arbitrary axis.
		return core.Vec2{X: 0, Y: 1}, rsum, true
	}
	return d.Scale(1 / dist), rsum - dist, true
}

func circleBox(circle, box *body) (core.Vec2, float64, bool) {
	// Closest point on the box to the circle center.
	cx := core.ClampF(circle.position.X, box.position.X-box.shape.HalfW, box.position.X+box.shape.HalfW)
	cy := core.ClampF(circle.position.Y, box.position.Y-box.shape.HalfH, box.position.Y+box.shape.HalfH)
	d := circle.position.Sub(core.Vec2{X: cx, Y: cy})
	distSq := d.LengthSq()
	r := circle.shape.Radius
	if distSq > 0 {
		if distSq >= r*r {
			return core.Vec2{}, 0, false
		}
		dist := math.Sqrt(distSq)
		return d.Scale(1 / dist), r - dist, true
	}
	// Center inside the box, push out along the axis of least penetration.
	dx := box.shape.HalfW - math.Abs(circle.position.X-box.position.X)
	dy := box.shape.HalfH - math.Abs(circle.position.Y-box.position.Y)
	if dx < dy {
		n := core.Vec2{X: 1}
		if circle.position.X < box.position.X {
			n.X = -1
		}
		return n, dx + r, true
	}
	n := core.Vec2{Y: 1}
	if circle.position.Y < box.position.Y {
		n.Y = -1
	}
	return n, dy + r, true
}

func boxBox(a, b *body) (core.Vec2, float64, bool) {
	dx := (a.shape.HalfW + b.shape.HalfW) - math.Abs(a.position.X-b.position.X)
	if dx <= 0 {
		return core.Vec2{}, 0, false
	}
	dy := (a.shape.HalfH + b.shape.HalfH) - math.Abs(a.position.Y-b.position.Y)
	if dy <= 0 {
		return core.Vec2{}, 0, false
	}
	if dx < dy {
		n := core.Vec2{X: 1}
		if a.position.X < b.position.X {
			n.X = -1
		}
		return n, dx, true
	}
	n := core.Vec2{Y: 1}
	if a.position.Y < b.position.Y {
		n.Y = -1
	}
	return n, dy, true
}

// resolve separates a dynamic body from whatever it hit and reflects its
// velocity. The normal points from b toward a.
func resolve(a, b *body, normal core.Vec2, depth float64) {
	e := math.Max(a.restitut, b.restitut)

	if a.motion == MotionDynamic && b.motion == MotionDynamic {
		// Equal-mass split.
		half := normal.Scale(depth / 2)
		a.position = a.position.Add(half)
		b.position = b.position.Sub(half)
		rel := a.velocity.Sub(b.velocity)
		vn := rel.Dot(normal)
		if vn >= 0 {
			return
		}
		impulse := normal.Scale(-(1 + e) * vn / 2)
		a.velocity = a.velocity.Add(impulse)
		b.velocity = b.velocity.Sub(impulse)
		return
	}

	// b is static or kinematic, only a moves.
	a.position = a.position.Add(normal.Scale(depth))
	vn := a.velocity.Dot(normal)
	if vn >= 0 {
		return
	}
	a.velocity = a.velocity.Sub(normal.Scale((1 + e) * vn))
}
