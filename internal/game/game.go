package game

import (
	"fmt"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
	"github.com/ainchor-labs/LevelForge/internal/registry"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	SeparatorH = '─'
)

// tagColors maps tier tags to screen colors.
var tagColors = map[string]core.Color{
	"red":    core.ColorRed,
	"orange": core.ColorOrange,
	"gold":   core.ColorGold,
	"green":  core.ColorGreen,
	"blue":   core.ColorBlue,
	"white":  core.ColorWhite,
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game runs one physics arcade variant. Each tick it wires input to the
// paddle and ball, steps the world, resolves contacts into score, and
// advances the round state machine.
type Game struct {
	id           string
	title        string
	attemptLabel string
	paddleGlyph  rune
	targetGlyph  rune

	// Simulation
	world  *physics.World
	arena  *Arena
	reg    *Registry
	paddle *Paddle
	ball   *Ball
	round  *Round
	rng    *SimpleRNG

	// Game state
	tickCount     int
	wave          int
	targetsScored int
	paused        bool
	respawnErr    error

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GameConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// NewBreakout creates the breakout variant: a wall of row-tiered
// bricks, no gravity, win on clearing the wall.
func NewBreakout() *Game {
	return &Game{
		id:           "breakout",
		title:        "Breakout",
		attemptLabel: "Lives",
		paddleGlyph:  '=',
		targetGlyph:  '█',
	}
}

// NewTargets creates the targets variant: scattered height-tiered
// targets under gravity, endless respawning waves, ten balls.
func NewTargets() *Game {
	return &Game{
		id:           "targets",
		title:        "Target Practice",
		attemptLabel: "Balls",
		paddleGlyph:  '█',
		targetGlyph:  '◉',
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or reinitializes the whole simulation. It fails
// when the physics body budget cannot hold the configured arena,
// paddle, ball and target batch.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	// Load game config
	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		if configPath != "" {
			return fmt.Errorf("%s: load config: %w", g.id, err)
		}
		cfg = config.Default(g.id)
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)

	// Build the simulation from scratch. This is the only place bodies
	// for the arena, paddle and ball are created.
	g.world = physics.NewWorld(core.Vec2{Y: cfg.World.GravityY}, cfg.World.MaxBodies)

	g.arena, err = NewArena(g.world, cfg.World)
	if err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}

	g.reg = NewRegistry(g.world, cfg.Targets, g.rng)
	if err := g.reg.Spawn(); err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}

	g.paddle, err = NewPaddle(g.world, cfg.Paddle)
	if err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}

	g.ball, err = NewBall(g.world, cfg.Ball)
	if err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}

	g.round = NewRound(cfg.Gameplay)
	g.tickCount = 0
	g.wave = 1
	g.targetsScored = 0
	g.paused = false
	g.respawnErr = nil
	g.ball.Dock(g.paddle.Position())

	return nil
}

// restart begins a new game inside the existing simulation. The ball
// and paddle bodies survive; only the target batch is regenerated.
func (g *Game) restart() {
	g.round.Reset()
	g.paddle.Reset()
	g.ball.Dock(g.paddle.Position())
	g.tickCount = 0
	g.wave = 1
	g.targetsScored = 0
	g.paused = false
	g.respawnErr = nil
	if err := g.reg.Respawn(); err != nil {
		// No wave to play; end the game instead of running empty.
		g.round.phase = PhaseGameOver
		g.respawnErr = err
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart is accepted in any phase, including mid-flight.
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		phase := g.round.Phase()
		if phase == PhaseServe || phase == PhasePlaying {
			g.paused = !g.paused
		}
	}

	if g.paused || g.round.Phase() == PhaseGameOver || g.round.Phase() == PhaseWon {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.round.TickServeDelay()

	dt := g.stepDT()

	// Paddle movement
	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy++
	}
	if in.Has(core.ActionDown) {
		dy--
	}
	g.paddle.Update(dx, dy, dt)

	// Docked ball follows the paddle until launch.
	if !g.ball.Launched() {
		g.ball.Dock(g.paddle.Position())
		if in.Has(core.ActionLaunch) && g.round.Launch() {
			g.ball.Launch(g.rng, g.targetSpeed())
		}
	}

	// One synchronous physics step, then resolve its contacts.
	events := g.world.Step(dt)
	out := Resolve(events, g.ball.Body(), g.arena.Sink(), g.reg)
	g.round.AddScore(out.Points)
	g.targetsScored += out.Destroyed

	// Clearing the batch is checked before ball loss, so winning on the
	// final brick beats losing the ball in the same tick.
	if g.reg.AllDestroyed() {
		if g.round.Cleared() {
			g.wave++
			if err := g.reg.Respawn(); err != nil {
				g.round.phase = PhaseGameOver
				g.respawnErr = err
			}
		}
	}

	if g.round.Phase() == PhasePlaying && g.ball.Launched() {
		g.ball.MaintainSpeed(g.targetSpeed())
		if out.BallLost || g.ball.OutOfBounds(g.cfg.World.Width, g.cfg.World.Height) {
			g.round.BallLost()
			g.ball.Dock(g.paddle.Position())
		}
	}

	return core.StepResult{State: g.State()}
}

// stepDT returns the physics timestep for this tick. Fixed stepping
// always advances by the configured dt; scaled stepping follows the
// platform tick rate so a slower terminal still simulates real time.
func (g *Game) stepDT() float64 {
	if g.cfg.Gameplay.Stepping == config.SteppingScaled {
		tr := g.runtime.TickRate
		if tr <= 0 {
			tr = 60
		}
		return 1.0 / float64(tr)
	}
	dt := g.cfg.Gameplay.FixedDT
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return dt
}

// targetSpeed returns the difficulty-scaled ball speed.
func (g *Game) targetSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Ball.LaunchSpeed, g.round.Score(), g.tickCount)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.round.Phase()
	return core.GameState{
		Score:         g.round.Score(),
		GameOver:      phase == PhaseGameOver || phase == PhaseWon,
		Won:           phase == PhaseWon,
		Paused:        g.paused,
		Generation:    g.round.Generation(),
		Wave:          g.wave,
		TargetsScored: g.targetsScored,
		Tick:          g.tickCount,
	}
}

// Err reports a failure that ended the game early, such as the world
// refusing a respawned target batch. Nil during normal play and after
// normal game overs.
func (g *Game) Err() error {
	return g.respawnErr
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return NewBreakout()
	})
	registry.Register("targets", func() registry.Game {
		return NewTargets()
	})
}
