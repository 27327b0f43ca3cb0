package game

import "github.com/ainchor-labs/LevelForge/internal/physics"

// Outcome summarizes one frame of contact resolution.
type Outcome struct {
	Points    int  // total points scored this frame
	Destroyed int  // targets destroyed this frame
	BallLost  bool // ball touched the sink sensor
}

// Resolve consumes the contact-begin events from one physics step and
// maps them to scoring decisions. Only events involving the ball
// matter; the other body is either the sink sensor or, if it matches a
// live registry entry, a target to destroy and score. Liveness is
// checked before destruction, so a target referenced by several events
// in the same step scores once. Events referencing unknown or dead
// bodies are ignored.
func Resolve(events []physics.Contact, ball, sink physics.BodyID, reg *Registry) Outcome {
	var out Outcome
	for _, ev := range events {
		var other physics.BodyID
		switch ball {
		case ev.A:
			other = ev.B
		case ev.B:
			other = ev.A
		default:
			continue
		}

		if other == sink {
			out.BallLost = true
			continue
		}

		t := reg.Lookup(other)
		if t == nil {
			continue
		}
		reg.Destroy(t)
		out.Points += t.Points
		out.Destroyed++
	}
	return out
}
