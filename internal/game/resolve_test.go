package game

import (
	"testing"

	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

// resolveFixture builds a world with a ball, a sink sensor and a
// scatter batch, returning the pieces a resolver pass needs.
func resolveFixture(t *testing.T, targetCount int) (*physics.World, *Registry, physics.BodyID, physics.BodyID) {
	t.Helper()
	w := physics.NewWorld(core.Vec2{}, 32)

	ball, err := w.CreateBody(physics.BodyDef{Shape: physics.Circle(0.4), Motion: physics.MotionDynamic})
	if err != nil {
		t.Fatalf("create ball: %v", err)
	}
	sink, err := w.CreateBody(physics.BodyDef{
		Position: core.Vec2{Y: -1},
		Shape:    physics.Box(50, 1),
		Sensor:   true,
	})
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}

	reg := NewRegistry(w, scatterConfig(targetCount), NewSimpleRNG(7))
	if err := reg.Spawn(); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return w, reg, ball, sink
}

func TestResolveScoresEachTargetOnce(t *testing.T) {
	_, reg, ball, sink := resolveFixture(t, 3)
	tgt := reg.All()[0]

	// The same target referenced by several events within one step must
	// score exactly once.
	events := []physics.Contact{
		{A: ball, B: tgt.Body},
		{A: tgt.Body, B: ball},
		{A: ball, B: tgt.Body},
	}
	out := Resolve(events, ball, sink, reg)
	if out.Points != tgt.Points {
		t.Errorf("points: got %d, want %d", out.Points, tgt.Points)
	}
	if out.Destroyed != 1 {
		t.Errorf("destroyed: got %d, want 1", out.Destroyed)
	}

	// A repeat event the next frame is ignored too.
	out = Resolve([]physics.Contact{{A: ball, B: tgt.Body}}, ball, sink, reg)
	if out.Points != 0 || out.Destroyed != 0 {
		t.Errorf("stale event scored again: %+v", out)
	}
}

func TestResolveTierPointSums(t *testing.T) {
	_, reg, ball, sink := resolveFixture(t, 5)

	var want int
	var events []physics.Contact
	for _, tgt := range reg.All() {
		want += tgt.Points
		events = append(events, physics.Contact{A: ball, B: tgt.Body})
	}

	out := Resolve(events, ball, sink, reg)
	if out.Points != want {
		t.Errorf("summed points: got %d, want %d", out.Points, want)
	}
	if out.Destroyed != 5 {
		t.Errorf("destroyed: got %d, want 5", out.Destroyed)
	}
	if !reg.AllDestroyed() {
		t.Error("expected the whole batch destroyed")
	}
}

func TestResolveIgnoresForeignEvents(t *testing.T) {
	w, reg, ball, sink := resolveFixture(t, 2)
	a := reg.All()[0]
	b := reg.All()[1]

	// Events not involving the ball, and events referencing bodies that
	// are not targets, change nothing.
	wall, _ := w.CreateBody(physics.BodyDef{Shape: physics.Box(1, 1)})
	events := []physics.Contact{
		{A: a.Body, B: b.Body}, // no ball side
		{A: ball, B: wall},     // not a target
	}
	out := Resolve(events, ball, sink, reg)
	if out.Points != 0 || out.Destroyed != 0 || out.BallLost {
		t.Errorf("foreign events had effects: %+v", out)
	}
	if reg.LiveCount() != 2 {
		t.Errorf("targets affected: %d live", reg.LiveCount())
	}
}

func TestResolveIgnoresDeadBodyEvents(t *testing.T) {
	_, reg, ball, sink := resolveFixture(t, 2)
	tgt := reg.All()[0]
	body := tgt.Body
	reg.Destroy(tgt)

	// An event referencing a body destroyed earlier in the same tick is
	// ignored, never fatal.
	out := Resolve([]physics.Contact{{A: ball, B: body}}, ball, sink, reg)
	if out.Points != 0 || out.Destroyed != 0 {
		t.Errorf("dead-body event scored: %+v", out)
	}
}

func TestResolveDetectsSink(t *testing.T) {
	_, reg, ball, sink := resolveFixture(t, 2)
	tgt := reg.All()[1]

	// A sink touch and a target hit can land in the same step.
	events := []physics.Contact{
		{A: ball, B: tgt.Body},
		{A: sink, B: ball},
	}
	out := Resolve(events, ball, sink, reg)
	if !out.BallLost {
		t.Error("sink contact not reported")
	}
	if out.Points != tgt.Points {
		t.Errorf("points: got %d, want %d", out.Points, tgt.Points)
	}
}
