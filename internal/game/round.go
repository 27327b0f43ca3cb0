package game

import "github.com/ainchor-labs/LevelForge/internal/config"

// Phase is the round state machine position.
type Phase int

const (
	// PhaseServe: ball docked on the paddle, waiting for launch.
	PhaseServe Phase = iota
	// PhasePlaying: ball launched, simulation running.
	PhasePlaying
	// PhaseGameOver: out of attempts. Terminal until restart.
	PhaseGameOver
	// PhaseWon: every target cleared under the win policy. Terminal.
	PhaseWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseServe:
		return "serve"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Round is the authoritative game state: score, remaining attempts and
// the terminal flags. Score is mutated only through AddScore and
// attempts only through Launch, so both stay monotonic within a round.
type Round struct {
	cfg        config.GameplayConfig
	phase      Phase
	score      int
	attempts   int
	generation int
	serveDelay int
}

// NewRound creates a round in the serve phase with full attempts.
func NewRound(cfg config.GameplayConfig) *Round {
	return &Round{
		cfg:        cfg,
		phase:      PhaseServe,
		attempts:   cfg.Attempts,
		generation: 1,
	}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Score returns the current score.
func (r *Round) Score() int { return r.score }

// Attempts returns the remaining attempts.
func (r *Round) Attempts() int { return r.attempts }

// Generation returns the reset counter, starting at 1.
func (r *Round) Generation() int { return r.generation }

// AddScore adds points. Negative deltas are rejected to keep the score
// monotonic.
func (r *Round) AddScore(points int) {
	if points > 0 {
		r.score += points
	}
}

// CanLaunch reports whether a launch command would be accepted.
func (r *Round) CanLaunch() bool {
	return r.phase == PhaseServe && r.attempts > 0 && r.serveDelay <= 0
}

// Launch consumes an attempt and enters play. It reports whether the
// launch was accepted; launching outside the serve phase or with no
// attempts left is a no-op.
func (r *Round) Launch() bool {
	if !r.CanLaunch() {
		return false
	}
	r.attempts--
	r.phase = PhasePlaying
	return true
}

// BallLost handles the ball leaving play. With attempts left the round
// goes back to serve after a short delay; otherwise the game is over.
func (r *Round) BallLost() {
	if r.phase != PhasePlaying {
		return
	}
	if r.attempts > 0 {
		r.phase = PhaseServe
		r.serveDelay = r.cfg.ServeDelay
		return
	}
	r.phase = PhaseGameOver
}

// Cleared handles the all-targets-destroyed event. Under the win policy
// the round ends; under the respawn policy it reports that a fresh wave
// should spawn. Terminal phases ignore the event, so clearing is acted
// on exactly once.
func (r *Round) Cleared() (respawn bool) {
	if r.phase == PhaseGameOver || r.phase == PhaseWon {
		return false
	}
	if r.cfg.ClearPolicy == config.ClearPolicyRespawn {
		return true
	}
	r.phase = PhaseWon
	return false
}

// TickServeDelay counts down the post-miss serve delay.
func (r *Round) TickServeDelay() {
	if r.serveDelay > 0 {
		r.serveDelay--
	}
}

// Reset reinitializes the round for a new game, bumping the generation
// counter.
func (r *Round) Reset() {
	r.phase = PhaseServe
	r.score = 0
	r.attempts = r.cfg.Attempts
	r.serveDelay = 0
	r.generation++
}
