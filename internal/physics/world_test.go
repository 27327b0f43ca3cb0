package physics

import (
	"math"
	"testing"

	"github.com/ainchor-labs/LevelForge/internal/core"
)

func TestCreateBodyLimit(t *testing.T) {
	w := NewWorld(core.Vec2{}, 2)

	a, err := w.CreateBody(BodyDef{Shape: Circle(1)})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := w.CreateBody(BodyDef{Shape: Circle(1)}); err != nil {
		t.Fatalf("second create: %v", err)
	}
	if _, err := w.CreateBody(BodyDef{Shape: Circle(1)}); err != ErrBodyLimit {
		t.Fatalf("third create: got %v, want ErrBodyLimit", err)
	}

	// Destroying frees capacity.
	w.DestroyBody(a)
	if _, err := w.CreateBody(BodyDef{Shape: Circle(1)}); err != nil {
		t.Fatalf("create after destroy: %v", err)
	}
	if w.BodyCount() != 2 {
		t.Errorf("BodyCount: got %d, want 2", w.BodyCount())
	}
}

func TestDestroyIdempotentAndStaleHandles(t *testing.T) {
	w := NewWorld(core.Vec2{}, 4)
	id, _ := w.CreateBody(BodyDef{Position: core.Vec2{X: 5}, Shape: Circle(1)})

	w.DestroyBody(id)
	w.DestroyBody(id) // second destroy is a no-op
	if w.BodyCount() != 0 {
		t.Fatalf("BodyCount after double destroy: got %d, want 0", w.BodyCount())
	}

	// The slot is reused with a new generation; the stale handle must
	// not reach the new body.
	fresh, _ := w.CreateBody(BodyDef{Position: core.Vec2{X: 9}, Shape: Circle(1)})
	if fresh.Index != id.Index {
		t.Fatalf("expected slot reuse, got index %d vs %d", fresh.Index, id.Index)
	}
	if w.Alive(id) {
		t.Error("stale handle reports alive")
	}
	if p := w.Position(id); p.X != 0 {
		t.Errorf("stale Position: got %v, want zero", p)
	}
	w.SetVelocity(id, core.Vec2{X: 100})
	if v := w.Velocity(fresh); v.X != 0 {
		t.Errorf("stale SetVelocity leaked onto new body: %v", v)
	}
}

func TestStepIntegratesGravity(t *testing.T) {
	w := NewWorld(core.Vec2{Y: -10}, 4)
	id, _ := w.CreateBody(BodyDef{
		Position: core.Vec2{Y: 100},
		Shape:    Circle(0.5),
		Motion:   MotionDynamic,
	})

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	v := w.Velocity(id)
	if math.Abs(v.Y-(-10)) > 1e-6 {
		t.Errorf("velocity after 1s of gravity: got %v, want -10", v.Y)
	}
	p := w.Position(id)
	if p.Y >= 100 {
		t.Errorf("body did not fall: y=%v", p.Y)
	}
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	w := NewWorld(core.Vec2{Y: -10}, 4)
	wall, _ := w.CreateBody(BodyDef{Position: core.Vec2{X: 3, Y: 4}, Shape: Box(1, 1)})
	pad, _ := w.CreateBody(BodyDef{
		Position: core.Vec2{X: -3},
		Velocity: core.Vec2{X: 99},
		Shape:    Box(1, 0.5),
		Motion:   MotionKinematic,
	})

	w.Step(1.0 / 60.0)

	if p := w.Position(wall); p.X != 3 || p.Y != 4 {
		t.Errorf("static body moved: %v", p)
	}
	if p := w.Position(pad); p.X != -3 || p.Y != 0 {
		t.Errorf("kinematic body integrated: %v", p)
	}
}

func TestBounceOffStaticBox(t *testing.T) {
	w := NewWorld(core.Vec2{}, 4)
	w.CreateBody(BodyDef{Position: core.Vec2{X: 10}, Shape: Box(0.5, 10)})
	ball, _ := w.CreateBody(BodyDef{
		Position:    core.Vec2{X: 8},
		Velocity:    core.Vec2{X: 60},
		Shape:       Circle(0.5),
		Motion:      MotionDynamic,
		Restitution: 1,
	})

	dt := 1.0 / 60.0
	var hit bool
	for i := 0; i < 20; i++ {
		if len(w.Step(dt)) > 0 {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatal("ball never contacted the wall")
	}
	v := w.Velocity(ball)
	if v.X >= 0 {
		t.Errorf("velocity not reflected: %v", v)
	}
	if math.Abs(v.X-(-60)) > 1e-6 {
		t.Errorf("restitution 1 should preserve speed: got %v", v.X)
	}
	// The ball must end up outside the wall.
	if p := w.Position(ball); p.X > 9.0 {
		t.Errorf("ball left inside the wall: %v", p)
	}
}

func TestSensorDetectsWithoutCollision(t *testing.T) {
	w := NewWorld(core.Vec2{}, 4)
	sensor, _ := w.CreateBody(BodyDef{
		Position: core.Vec2{Y: -5},
		Shape:    Box(50, 1),
		Sensor:   true,
	})
	ball, _ := w.CreateBody(BodyDef{
		Position: core.Vec2{Y: -3},
		Velocity: core.Vec2{Y: -30},
		Shape:    Circle(0.5),
		Motion:   MotionDynamic,
	})

	dt := 1.0 / 60.0
	var contacts []Contact
	for i := 0; i < 30; i++ {
		if events := w.Step(dt); len(events) > 0 {
			contacts = events
			break
		}
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts: got %d, want 1", len(contacts))
	}
	c := contacts[0]
	if !((c.A == sensor && c.B == ball) || (c.A == ball && c.B == sensor)) {
		t.Errorf("unexpected contact pair: %+v", c)
	}
	// Sensors must not deflect the ball.
	if v := w.Velocity(ball); v.Y != -30 {
		t.Errorf("sensor altered velocity: %v", v)
	}
}

func TestContactReportedOncePerEpisode(t *testing.T) {
	w := NewWorld(core.Vec2{}, 4)
	zone, _ := w.CreateBody(BodyDef{Shape: Box(2, 2), Sensor: true})
	ball, _ := w.CreateBody(BodyDef{
		Position: core.Vec2{X: -5},
		Velocity: core.Vec2{X: 10},
		Shape:    Circle(0.5),
		Motion:   MotionDynamic,
	})
	_ = zone

	var begins int
	dt := 1.0 / 60.0
	// Ball crosses the sensor, leaves, then is sent back through.
	for i := 0; i < 120; i++ {
		begins += len(w.Step(dt))
	}
	if begins != 1 {
		t.Fatalf("begin events for one crossing: got %d, want 1", begins)
	}

	w.SetPosition(ball, core.Vec2{X: 5})
	w.SetVelocity(ball, core.Vec2{X: -10})
	for i := 0; i < 120; i++ {
		begins += len(w.Step(dt))
	}
	if begins != 2 {
		t.Errorf("begin events after re-entry: got %d, want 2", begins)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() (core.Vec2, core.Vec2) {
		w := NewWorld(core.Vec2{Y: -9}, 16)
		w.CreateBody(BodyDef{Position: core.Vec2{Y: -2}, Shape: Box(20, 1)})
		w.CreateBody(BodyDef{Position: core.Vec2{X: 4}, Shape: Box(1, 20)})
		ball, _ := w.CreateBody(BodyDef{
			Position:    core.Vec2{X: -3, Y: 3},
			Velocity:    core.Vec2{X: 7, Y: 1},
			Shape:       Circle(0.4),
			Motion:      MotionDynamic,
			Restitution: 0.8,
		})
		for i := 0; i < 600; i++ {
			w.Step(1.0 / 60.0)
		}
		return w.Position(ball), w.Velocity(ball)
	}

	p1, v1 := run()
	p2, v2 := run()
	if p1 != p2 || v1 != v2 {
		t.Errorf("two identical runs diverged: %v/%v vs %v/%v", p1, v1, p2, v2)
	}
}
