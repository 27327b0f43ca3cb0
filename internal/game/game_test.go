package game

import (
	"errors"
	"testing"

	"github.com/ainchor-labs/LevelForge/internal/core"
	"github.com/ainchor-labs/LevelForge/internal/physics"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs produce identical state.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 10 {
			inputSequence[i].Set(core.ActionLaunch)
		} else if i > 10 && i%5 < 3 {
			inputSequence[i].Set(core.ActionRight)
		} else if i > 10 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := NewBreakout()
		if err := g.Reset(testRuntime(12345)); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("Determinism failed: ball positions differ")
	}
}

func TestGameServeState(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if g.round.Phase() != PhaseServe {
		t.Fatalf("game should start in serve, got %v", g.round.Phase())
	}
	if v := g.ball.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("docked ball velocity: %v", v)
	}

	// Without launch the ball tracks the paddle.
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	pos := g.ball.Position()
	pad := g.paddle.Position()
	if pos.X != pad.X || pos.Y != pad.Y+g.cfg.Ball.StandoffY {
		t.Errorf("ball not slaved to paddle: ball %v paddle %v", pos, pad)
	}

	// Launch enters play, consumes an attempt, and the ball goes up.
	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)
	if g.round.Phase() != PhasePlaying {
		t.Errorf("phase after launch: got %v, want playing", g.round.Phase())
	}
	if g.round.Attempts() != g.cfg.Gameplay.Attempts-1 {
		t.Errorf("attempts after launch: got %d", g.round.Attempts())
	}
	if v := g.ball.Velocity(); v.Y <= 0 {
		t.Errorf("launched ball should move up, velocity %v", v)
	}
}

func TestBreakoutScoresBricks(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)

	// The brick rows have no ball-sized gaps, so an upward launch must
	// connect within a few traversals.
	empty := core.NewInputFrame()
	for i := 0; i < 600 && g.round.Score() == 0; i++ {
		g.Step(empty)
	}
	if g.round.Score() == 0 {
		t.Fatal("ball never scored a brick")
	}
	if g.reg.LiveCount() >= g.reg.Count() {
		t.Error("score without a destroyed brick")
	}
}

func TestGamePause(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.ball.Position()
	g.Step(core.NewInputFrame())
	if after := g.ball.Position(); after != before {
		t.Error("ball moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestGameRestartMidFlight(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(42)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	ballBody := g.ball.Body()

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	oldGen := g.round.Generation()
	oldBodies := make(map[uint32]uint32)
	for _, tgt := range g.reg.All() {
		if tgt.Alive {
			oldBodies[tgt.Body.Index] = tgt.Body.Generation
		}
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.round.Score() != 0 {
		t.Errorf("score after restart: got %d", g.round.Score())
	}
	if g.round.Attempts() != g.cfg.Gameplay.Attempts {
		t.Errorf("attempts after restart: got %d", g.round.Attempts())
	}
	if g.round.Phase() != PhaseServe {
		t.Errorf("phase after restart: got %v", g.round.Phase())
	}
	if g.round.Generation() != oldGen+1 {
		t.Errorf("generation: got %d, want %d", g.round.Generation(), oldGen+1)
	}
	// Time-based difficulty progression starts over with the new game.
	if g.tickCount != 0 {
		t.Errorf("tick count after restart: got %d, want 0", g.tickCount)
	}
	if g.targetsScored != 0 {
		t.Errorf("targets scored after restart: got %d, want 0", g.targetsScored)
	}
	// The ball body survives a restart; it is repositioned, never
	// recreated.
	if g.ball.Body() != ballBody {
		t.Error("restart recreated the ball body")
	}
	if g.ball.Launched() {
		t.Error("ball still launched after restart")
	}
	// The new wave must not share handles with the old one.
	for _, tgt := range g.reg.All() {
		if gen, ok := oldBodies[tgt.Body.Index]; ok && gen == tgt.Body.Generation {
			t.Errorf("restart reused target handle %+v", tgt.Body)
		}
	}
	if g.reg.LiveCount() != g.reg.Count() {
		t.Error("restart left dead targets in the batch")
	}
}

func TestTargetsTenBallGameOver(t *testing.T) {
	g := NewTargets()
	if err := g.Reset(testRuntime(3)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.round.Attempts() != 10 {
		t.Fatalf("initial attempts: got %d, want 10", g.round.Attempts())
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	empty := core.NewInputFrame()

	for i := 0; i < 10; i++ {
		// Wait out the serve delay.
		for j := 0; j < 200 && !g.round.CanLaunch(); j++ {
			g.Step(empty)
		}
		g.Step(launch)
		if g.round.Phase() != PhasePlaying {
			t.Fatalf("attempt %d: phase %v after launch", i+1, g.round.Phase())
		}
		// Throw the ball far past the boundary margin without letting
		// it touch anything.
		g.world.SetPosition(g.ball.body, core.Vec2{X: 200, Y: 50})
		g.Step(empty)
		if i < 9 {
			if g.round.Phase() != PhaseServe {
				t.Fatalf("attempt %d: phase %v, want serve", i+1, g.round.Phase())
			}
		}
	}

	if g.round.Phase() != PhaseGameOver {
		t.Fatalf("after 10 misses: phase %v, want gameover", g.round.Phase())
	}
	if !g.State().GameOver || g.State().Won {
		t.Errorf("state flags: %+v", g.State())
	}

	// Launch input in game over is ignored.
	g.Step(launch)
	if g.round.Phase() != PhaseGameOver {
		t.Error("launch revived a finished game")
	}
}

func TestBreakoutWinOnClear(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	for _, tgt := range g.reg.All() {
		g.reg.Destroy(tgt)
	}
	g.Step(core.NewInputFrame())

	if g.round.Phase() != PhaseWon {
		t.Fatalf("phase after clearing: got %v, want won", g.round.Phase())
	}
	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("state flags: %+v", state)
	}

	// The win is acted on once; later ticks stay terminal and do not
	// respawn anything.
	g.Step(core.NewInputFrame())
	if g.reg.LiveCount() != 0 {
		t.Error("win policy respawned targets")
	}
	if g.round.Phase() != PhaseWon {
		t.Errorf("phase drifted to %v", g.round.Phase())
	}
}

func TestTargetsRespawnOnClear(t *testing.T) {
	g := NewTargets()
	if err := g.Reset(testRuntime(9)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.wave != 1 {
		t.Fatalf("initial wave: got %d", g.wave)
	}

	for _, tgt := range g.reg.All() {
		g.reg.Destroy(tgt)
	}
	g.Step(core.NewInputFrame())

	if g.wave != 2 {
		t.Fatalf("wave after clear: got %d, want 2", g.wave)
	}
	if g.reg.LiveCount() != g.cfg.Targets.Count {
		t.Fatalf("respawned wave size: got %d, want %d", g.reg.LiveCount(), g.cfg.Targets.Count)
	}
	if g.State().Won {
		t.Error("respawn policy should never declare a win")
	}

	// The respawn fires once per clear, not on every following frame.
	g.Step(core.NewInputFrame())
	if g.wave != 2 {
		t.Errorf("wave advanced without a clear: %d", g.wave)
	}
}

func TestRespawnFailureEndsGameWithError(t *testing.T) {
	g := NewTargets()
	if err := g.Reset(testRuntime(9)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	// Ask the next wave for more bodies than the world can hold.
	g.reg.cfg.Count = g.cfg.World.MaxBodies + 1
	for _, tgt := range g.reg.All() {
		g.reg.Destroy(tgt)
	}
	g.Step(core.NewInputFrame())

	if g.round.Phase() != PhaseGameOver {
		t.Fatalf("phase after failed respawn: got %v", g.round.Phase())
	}
	if !g.State().GameOver {
		t.Error("state does not report game over")
	}
	if g.Err() == nil {
		t.Fatal("failed respawn left no error")
	}
	if !errors.Is(g.Err(), physics.ErrBodyLimit) {
		t.Errorf("error does not report the body limit: %v", g.Err())
	}

	// A later tick neither clears the error nor revives the round.
	g.Step(core.NewInputFrame())
	if g.Err() == nil || g.round.Phase() != PhaseGameOver {
		t.Error("game over after failed respawn is not terminal")
	}
}

func TestGameRender(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Fatal("render drew nothing")
	}

	// Paddle cell at its world position.
	pad := g.paddle.Position()
	x := g.cellX(screen, pad.X)
	y := g.cellY(screen, pad.Y)
	if screen.Get(x, y) != g.paddleGlyph {
		t.Errorf("paddle glyph missing at (%d,%d), got %q", x, y, screen.Get(x, y))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewBreakout()
	if err := g.Reset(testRuntime(77)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionLaunch)
	g.Step(launch)
	for i := 0; i < 150; i++ {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	snap := g.Snapshot()
	if snap.Tick != uint64(g.tickCount) {
		t.Errorf("snapshot tick: got %d, want %d", snap.Tick, g.tickCount)
	}
	if snap.Score != g.round.Score() {
		t.Errorf("snapshot score: got %d, want %d", snap.Score, g.round.Score())
	}

	g2 := NewBreakout()
	if err := g2.Reset(testRuntime(77)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := g2.ApplySnapshot(snap); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}

	snap2 := g2.Snapshot()
	if snap.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch after apply: %d vs %d", snap.Hash(), snap2.Hash())
	}
}
