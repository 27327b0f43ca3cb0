package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, gameID := range []string{"breakout", "targets"} {
		data := GetDefaultYAML(gameID)
		if data == nil {
			t.Fatalf("%s: no embedded default", gameID)
		}
		var cfg GameConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			t.Fatalf("%s: embedded YAML does not parse: %v", gameID, err)
		}

		want := Default(gameID)
		if cfg.World.Width != want.World.Width || cfg.World.Height != want.World.Height {
			t.Errorf("%s: world size %vx%v, want %vx%v",
				gameID, cfg.World.Width, cfg.World.Height, want.World.Width, want.World.Height)
		}
		if cfg.Gameplay.Attempts != want.Gameplay.Attempts {
			t.Errorf("%s: attempts %d, want %d", gameID, cfg.Gameplay.Attempts, want.Gameplay.Attempts)
		}
		if cfg.Gameplay.ClearPolicy != want.Gameplay.ClearPolicy {
			t.Errorf("%s: clear policy %q, want %q", gameID, cfg.Gameplay.ClearPolicy, want.Gameplay.ClearPolicy)
		}
		if cfg.Gameplay.Stepping != want.Gameplay.Stepping {
			t.Errorf("%s: stepping %q, want %q", gameID, cfg.Gameplay.Stepping, want.Gameplay.Stepping)
		}
		if len(cfg.Targets.Tiers) != len(want.Targets.Tiers) {
			t.Errorf("%s: %d tiers, want %d", gameID, len(cfg.Targets.Tiers), len(want.Targets.Tiers))
		}
	}
}

func TestDefaultVariants(t *testing.T) {
	breakout := Default("breakout")
	if breakout.World.GravityY != 0 {
		t.Errorf("breakout gravity: %v", breakout.World.GravityY)
	}
	if !breakout.World.Walls {
		t.Error("breakout should have walls")
	}
	if breakout.Gameplay.ClearPolicy != ClearPolicyWin {
		t.Errorf("breakout clear policy: %q", breakout.Gameplay.ClearPolicy)
	}
	if breakout.Ball.LaunchMode != LaunchCone {
		t.Errorf("breakout launch mode: %q", breakout.Ball.LaunchMode)
	}
	// Tiers must come highest-threshold first so row lookups stop at
	// the right rule.
	for i := 1; i < len(breakout.Targets.Tiers); i++ {
		if breakout.Targets.Tiers[i].Threshold >= breakout.Targets.Tiers[i-1].Threshold {
			t.Errorf("breakout tiers out of order at %d", i)
		}
	}

	targets := Default("targets")
	if targets.World.GravityY >= 0 {
		t.Errorf("targets gravity: %v", targets.World.GravityY)
	}
	if targets.World.Walls {
		t.Error("targets court should be open")
	}
	if targets.Gameplay.ClearPolicy != ClearPolicyRespawn {
		t.Errorf("targets clear policy: %q", targets.Gameplay.ClearPolicy)
	}
	if targets.Ball.LaunchMode != LaunchFixed {
		t.Errorf("targets launch mode: %q", targets.Ball.LaunchMode)
	}
	if targets.Paddle.MinY >= targets.Paddle.MaxY {
		t.Error("targets paddle should move on both axes")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
world:
  width: 50
  height: 25
  max_bodies: 16
gameplay:
  attempts: 7
  clear_policy: respawn
`)

	cfg, err := Load("breakout", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 50 || cfg.Gameplay.Attempts != 7 {
		t.Errorf("custom config not applied: %+v", cfg.World)
	}

	if _, err := Load("breakout", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestLoadUnknownGameFallsBack(t *testing.T) {
	if _, err := Load("no-such-game", ""); err == nil {
		t.Error("unknown game without custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default("breakout")
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Attempts != 5 {
		t.Errorf("easy attempts: %d", easy.Gameplay.Attempts)
	}
	if easy.Paddle.HalfW <= 3 {
		t.Errorf("easy paddle half width: %v", easy.Paddle.HalfW)
	}

	hard := Default("breakout")
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Attempts != 2 {
		t.Errorf("hard attempts: %d", hard.Gameplay.Attempts)
	}
	if hard.Paddle.HalfW >= 3 {
		t.Errorf("hard paddle half width: %v", hard.Paddle.HalfW)
	}
	if hard.Ball.LaunchSpeed <= 18 {
		t.Errorf("hard launch speed: %v", hard.Ball.LaunchSpeed)
	}

	fixed := Default("targets")
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := d.Speed(18, 0, 0); got != 18 {
		t.Errorf("base speed: %v", got)
	}
	if got := d.Speed(18, 500, 0); got != 18*1.25 {
		t.Errorf("mid speed: %v", got)
	}
	// Progress clamps at max_at, so the cap holds beyond it.
	if got := d.Speed(18, 5000, 0); got != 27 {
		t.Errorf("capped speed: %v", got)
	}

	d.SetEnabled(false)
	if got := d.Speed(18, 5000, 0); got != 18 {
		t.Errorf("disabled speed: %v", got)
	}
}
