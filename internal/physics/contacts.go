package physics

// Contact is a begin-touch event between two bodies, reported once per
// touching episode. A is always the body with the lower slot index.
type Contact struct {
	A, B BodyID
}

// pairKey identifies a touching pair. Generations are part of the key so
// that a slot reused after destruction starts a fresh episode.
type pairKey struct {
	a, b BodyID
}

// contactTracker deduplicates overlap reports across steps. A pair that
// stays in contact for many ticks produces a single begin event.
type contactTracker struct {
	touching map[pairKey]bool
	current  map[pairKey]bool
	begins   []Contact
}

func newContactTracker() *contactTracker {
	return &contactTracker{
		touching: make(map[pairKey]bool),
		current:  make(map[pairKey]bool),
	}
}

// report records that a and b overlap during the current step. Pairs are
// reported in slot index order, so begin events come out deterministic.
func (t *contactTracker) report(a, b BodyID) {
	if b.Index < a.Index {
		a, b = b, a
	}
	key := pairKey{a: a, b: b}
	if t.current[key] {
		return
	}
	t.current[key] = true
	if !t.touching[key] {
		t.begins = append(t.begins, Contact{A: a, B: b})
	}
}

// flush ends the current step and returns the begin events it produced.
// Pairs that stopped overlapping are forgotten so a later re-touch is a
// new episode.
func (t *contactTracker) flush() []Contact {
	t.touching, t.current = t.current, t.touching
	for k := range t.current {
		delete(t.current, k)
	}
	begins := t.begins
	t.begins = nil
	return begins
}
