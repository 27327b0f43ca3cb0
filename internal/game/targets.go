package game

import (
	"fmt"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

// Target is one destructible scoring entity backed by a physics body.
// Once destroyed the body is gone and the entry stays dead until the
// next respawn.
type Target struct {
	Body   physics.BodyID
	Pos    core.Vec2
	Tag    string
	Points int
	Alive  bool
}

// Registry owns the destructible target population. It is the only
// component that creates or destroys target bodies.
type Registry struct {
	world   *physics.World
	cfg     config.TargetsConfig
	rng     *SimpleRNG
	targets []*Target
	byBody  map[physics.BodyID]*Target
}

// NewRegistry creates an empty registry. Call Spawn to populate it.
func NewRegistry(world *physics.World, cfg config.TargetsConfig, rng *SimpleRNG) *Registry {
	return &Registry{
		world:  world,
		cfg:    cfg,
		rng:    rng,
		byBody: make(map[physics.BodyID]*Target),
	}
}

// Spawn creates the configured target batch. Grid layout fills the
// region with rows x cols of boxes; scatter layout places count circles
// at random positions. Each target's tier is bucketed from its spawn
// position at creation time.
func (r *Registry) Spawn() error {
	switch r.cfg.Layout {
	case config.LayoutScatter:
		return r.spawnScatter()
	default:
		return r.spawnGrid()
	}
}

func (r *Registry) spawnGrid() error {
	reg := r.cfg.Region
	cellW := (reg.MaxX - reg.MinX) / float64(r.cfg.Cols)
	cellH := (reg.MaxY - reg.MinY) / float64(r.cfg.Rows)

	for row := 0; row < r.cfg.Rows; row++ {
		for col := 0; col < r.cfg.Cols; col++ {
			pos := core.Vec2{
				X: reg.MinX + (float64(col)+0.5)*cellW,
				Y: reg.MinY + (float64(row)+0.5)*cellH,
			}
			// Tier key is the row counted from the bottom of the grid.
			if err := r.addTarget(pos, physics.Box(r.cfg.HalfW, r.cfg.HalfH), float64(row)); err != nil {
				return fmt.Errorf("targets: spawn grid row %d col %d: %w", row, col, err)
			}
		}
	}
	return nil
}

func (r *Registry) spawnScatter() error {
	reg := r.cfg.Region
	for i := 0; i < r.cfg.Count; i++ {
		pos := core.Vec2{
			X: r.rng.FloatRange(reg.MinX, reg.MaxX),
			Y: r.rng.FloatRange(reg.MinY, reg.MaxY),
		}
		// Tier key is the spawn height.
		if err := r.addTarget(pos, physics.Circle(r.cfg.Radius), pos.Y); err != nil {
			return fmt.Errorf("targets: spawn scatter %d: %w", i, err)
		}
	}
	return nil
}

func (r *Registry) addTarget(pos core.Vec2, shape physics.Shape, tierKey float64) error {
	body, err := r.world.CreateBody(physics.BodyDef{
		Position: pos,
		Shape:    shape,
	})
	if err != nil {
		return err
	}
	tag, points := tierFor(r.cfg.Tiers, tierKey)
	t := &Target{
		Body:   body,
		Pos:    pos,
		Tag:    tag,
		Points: points,
		Alive:  true,
	}
	r.targets = append(r.targets, t)
	r.byBody[body] = t
	return nil
}

// tierFor evaluates the tier table in declared order and returns the
// first rule the key meets. Tables are declared with high tiers first.
func tierFor(tiers []config.TierRule, key float64) (string, int) {
	for _, rule := range tiers {
		if key >= rule.Threshold {
			return rule.Tag, rule.Points
		}
	}
	if n := len(tiers); n > 0 {
		last := tiers[n-1]
		return last.Tag, last.Points
	}
	return "", 0
}

// Lookup returns the live target backed by the given body, or nil for
// unknown bodies and targets already destroyed.
func (r *Registry) Lookup(id physics.BodyID) *Target {
	t, ok := r.byBody[id]
	if !ok || !t.Alive {
		return nil
	}
	return t
}

// Destroy kills a target and releases its physics body. Destroying an
// already-dead target is a no-op.
func (r *Registry) Destroy(t *Target) {
	if t == nil || !t.Alive {
		return
	}
	t.Alive = false
	delete(r.byBody, t.Body)
	r.world.DestroyBody(t.Body)
}

// AllDestroyed reports whether the registry is non-empty and every
// target is dead.
func (r *Registry) AllDestroyed() bool {
	if len(r.targets) == 0 {
		return false
	}
	for _, t := range r.targets {
		if t.Alive {
			return false
		}
	}
	return true
}

// Respawn destroys whatever is left and spawns a fresh batch.
func (r *Registry) Respawn() error {
	for _, t := range r.targets {
		r.Destroy(t)
	}
	r.targets = r.targets[:0]
	return r.Spawn()
}

// All returns every target, dead or alive, in spawn order.
func (r *Registry) All() []*Target {
	return r.targets
}

// LiveCount returns the number of live targets.
func (r *Registry) LiveCount() int {
	n := 0
	for _, t := range r.targets {
		if t.Alive {
			n++
		}
	}
	return n
}

// Count returns the total batch size.
func (r *Registry) Count() int {
	return len(r.targets)
}

// Restore rebuilds the population from recorded state. Used when
// applying a snapshot.
func (r *Registry) Restore(states []Target) error {
	for _, t := range r.targets {
		r.Destroy(t)
	}
	r.targets = r.targets[:0]
	for i, s := range states {
		var shape physics.Shape
		if r.cfg.Layout == config.LayoutScatter {
			shape = physics.Circle(r.cfg.Radius)
		} else {
			shape = physics.Box(r.cfg.HalfW, r.cfg.HalfH)
		}
		if !s.Alive {
			// Dead targets keep their slot but no body.
			r.targets = append(r.targets, &Target{
				Pos:    s.Pos,
				Tag:    s.Tag,
				Points: s.Points,
			})
			continue
		}
		body, err := r.world.CreateBody(physics.BodyDef{Position: s.Pos, Shape: shape})
		if err != nil {
			return fmt.Errorf("targets: restore %d: %w", i, err)
		}
		t := &Target{
			Body:   body,
			Pos:    s.Pos,
			Tag:    s.Tag,
			Points: s.Points,
			Alive:  true,
		}
		r.targets = append(r.targets, t)
		r.byBody[body] = t
	}
	return nil
}
