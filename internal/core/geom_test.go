package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("Add: got %v, want {4 -2}", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("Sub: got %v, want {-2 6}", diff)
	}

	scaled := a.Scale(2.5)
	if scaled.X != 2.5 || scaled.Y != 5 {
		t.Errorf("Scale: got %v, want {2.5 5}", scaled)
	}

	if dot := a.Dot(b); dot != -5 {
		t.Errorf("Dot: got %v, want -5", dot)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Length() != 5 {
		t.Errorf("Length: got %v, want 5", v.Length())
	}
	if v.LengthSq() != 25 {
		t.Errorf("LengthSq: got %v, want 25", v.LengthSq())
	}

	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Errorf("Normalized length: got %v, want 1", n.Length())
	}

	// Normalizing the zero vector must not produce NaN.
	z := Vec2{}.Normalized()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Normalized zero vector: got %v, want {0 0}", z)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	c := NewRect(20, 20, 5, 5)

	if !a.Intersects(b) {
		t.Error("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("expected a and c not to intersect")
	}
	// Edge-adjacent rects do not overlap.
	d := NewRect(10, 0, 5, 5)
	if a.Intersects(d) {
		t.Error("expected edge-adjacent rects not to intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if !r.Contains(2, 3) {
		t.Error("expected top-left corner to be contained")
	}
	if !r.Contains(5, 7) {
		t.Error("expected interior point to be contained")
	}
	if r.Contains(6, 3) {
		t.Error("expected right edge to be excluded")
	}
	if r.Contains(2, 8) {
		t.Error("expected bottom edge to be excluded")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp in range: got %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp below: got %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp above: got %d", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF above: got %v", got)
	}
}
