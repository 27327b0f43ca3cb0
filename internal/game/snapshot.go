package game

import (
	"math"

	"github.com/ainchor-labs/LevelForge/internal/core"
)

// Snapshot captures the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Phase      int
	Score      int
	Attempts   int
	Generation int
	Wave       int
	ServeDelay int

	PaddleX, PaddleY float64

	BallX, BallY   float64
	BallVX, BallVY float64
	BallLaunched   bool

	// Target state (each target is 4 floats: X, Y, Points, Alive)
	TargetCount int
	TargetData  []float64
	TargetTags  []string

	// RNG state for launch angles and scatter layouts
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	targets := g.reg.All()
	targetData := make([]float64, 0, len(targets)*4)
	targetTags := make([]string, 0, len(targets))
	for _, t := range targets {
		alive := 0.0
		if t.Alive {
			alive = 1.0
		}
		targetData = append(targetData, t.Pos.X, t.Pos.Y, float64(t.Points), alive)
		targetTags = append(targetTags, t.Tag)
	}

	ballPos := g.ball.Position()
	ballVel := g.ball.Velocity()
	paddlePos := g.paddle.Position()

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:      int(g.round.Phase()),
		Score:      g.round.Score(),
		Attempts:   g.round.Attempts(),
		Generation: g.round.Generation(),
		Wave:       g.wave,
		ServeDelay: g.round.serveDelay,

		PaddleX: paddlePos.X,
		PaddleY: paddlePos.Y,

		BallX:        ballPos.X,
		BallY:        ballPos.Y,
		BallVX:       ballVel.X,
		BallVY:       ballVel.Y,
		BallLaunched: g.ball.Launched(),

		TargetCount: len(targets),
		TargetData:  targetData,
		TargetTags:  targetTags,

		RNGState: g.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot. The simulation
// must already be initialized via Reset with the same configuration.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.wave = snap.Wave

	g.round.phase = Phase(snap.Phase)
	g.round.score = snap.Score
	g.round.attempts = snap.Attempts
	g.round.generation = snap.Generation
	g.round.serveDelay = snap.ServeDelay

	g.paddle.SetPosition(core.Vec2{X: snap.PaddleX, Y: snap.PaddleY})

	g.ball.launched = snap.BallLaunched
	g.world.SetPosition(g.ball.body, core.Vec2{X: snap.BallX, Y: snap.BallY})
	g.world.SetVelocity(g.ball.body, core.Vec2{X: snap.BallVX, Y: snap.BallVY})

	states := make([]Target, 0, snap.TargetCount)
	for i := 0; i < snap.TargetCount; i++ {
		idx := i * 4
		if idx+3 >= len(snap.TargetData) {
			break
		}
		tag := ""
		if i < len(snap.TargetTags) {
			tag = snap.TargetTags[i]
		}
		states = append(states, Target{
			Pos:    core.Vec2{X: snap.TargetData[idx], Y: snap.TargetData[idx+1]},
			Points: int(snap.TargetData[idx+2]),
			Tag:    tag,
			Alive:  snap.TargetData[idx+3] == 1,
		})
	}
	if err := g.reg.Restore(states); err != nil {
		return err
	}

	g.rng.state = snap.RNGState
	return nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attempts)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Generation) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	if snap.BallLaunched {
		h = h*31 + 1
	}

	h = h*31 + uint64(snap.TargetCount) //#nosec G115 -- hash computation
	for _, v := range snap.TargetData {
		h = h*31 + math.Float64bits(v)
	}
	for _, tag := range snap.TargetTags {
		for _, r := range tag {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}

	h = h*31 + snap.RNGState

	return h
}
