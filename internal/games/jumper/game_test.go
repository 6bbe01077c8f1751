package jumper

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper/sim"
	"github.com/vovakirdan/sky-jumper/internal/registry"
)

// isolate keeps user and working-directory config files out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// started returns a game that has left the title screen.
func started(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	g.Reset(runtimeConfig(seed))
	if st := g.Step(frame(core.ActionConfirm)).State; !st.Playing {
		t.Fatalf("confirm did not start a run: %+v", st)
	}
	return g
}

func simRun(t *testing.T, ruleset string, seed uint32, steps int) *sim.State {
	t.Helper()
	cfg := config.DefaultJumperConfig()
	if err := config.ApplyRuleset(&cfg, ruleset); err != nil {
		t.Fatal(err)
	}
	s, err := sim.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Start(seed); err != nil {
		t.Fatal(err)
	}
	for range steps {
		s.Step(1.0/60, sim.Input{})
	}
	return s
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"jumper", "jumper_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("created game has ID %q", g.ID())
		}
		if _, ok := g.(registry.BestKeeper); !ok {
			t.Errorf("%s does not restore best scores", id)
		}
		if _, ok := g.(registry.RunReporter); !ok {
			t.Errorf("%s does not report runs", id)
		}
	}
}

func TestTitleScreenWaitsForConfirm(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(runtimeConfig(428202))

	for range 10 {
		if st := g.Step(frame(core.ActionLeft)).State; st.Playing || st.GameOver {
			t.Fatalf("game left the title screen without confirm: %+v", st)
		}
	}
	if g.Sim().Ticks() != 0 {
		t.Error("title screen ran simulation steps")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Sim().Mode() != sim.ModePlaying || g.Sim().Seed() != 428202 {
		t.Errorf("after confirm: mode %s seed %d", g.Sim().Mode(), g.Sim().Seed())
	}
}

func TestStepsMatchSimulation(t *testing.T) {
	isolate(t)
	tests := []struct {
		name    string
		game    *Game
		ruleset string
		seed    uint32
		steps   int
	}{
		{"pro falls", New(), "pro", 428202, 120},
		{"pro climbs", New(), "pro", 42, 180},
		{"classic climbs", NewClassic(), "classic", 2, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := started(t, tt.game, int64(tt.seed))
			for range tt.steps {
				g.Step(core.NewInputFrame())
			}
			want := simRun(t, tt.ruleset, tt.seed, tt.steps)
			if g.Sim().Hash() != want.Hash() {
				t.Errorf("game diverged from a direct simulation run")
			}
		})
	}
}

func TestRunEndReportsAndRestarts(t *testing.T) {
	isolate(t)
	g := started(t, New(), 2)

	var ended int
	for range 180 {
		if g.Step(core.NewInputFrame()).RunEnded {
			ended++
		}
	}
	if ended != 1 {
		t.Fatalf("RunEnded reported %d times, expected 1", ended)
	}

	st := g.State()
	if !st.GameOver || st.Score != 20 || st.Best != 20 {
		t.Errorf("state after run = %+v", st)
	}
	run := g.LastRun()
	if run.Seed != 2 || run.Ruleset != "pro" || run.Cause != "enemy" || run.Ticks == 0 {
		t.Errorf("last run = %+v", run)
	}

	g.Step(frame(core.ActionRestart))
	st = g.State()
	if !st.Playing || st.Score != 0 || st.Best != 20 {
		t.Errorf("state after restart = %+v", st)
	}
	if g.Sim().Seed() != 2+seedStride {
		t.Errorf("second run seed = %d, expected %d", g.Sim().Seed(), uint32(2+seedStride))
	}
}

func TestResetKeepsBest(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(runtimeConfig(1))
	g.RestoreBest(500)
	g.RestoreBest(100)
	if g.State().Best != 500 {
		t.Fatalf("best = %d, expected 500", g.State().Best)
	}

	g.Reset(runtimeConfig(2))
	if g.State().Best != 500 || g.State().Playing {
		t.Errorf("after reset: %+v", g.State())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	isolate(t)
	g := started(t, New(), 99)
	g.Step(core.NewInputFrame())
	ticks := g.Sim().Ticks()

	if st := g.Step(frame(core.ActionPause)).State; !st.Paused {
		t.Fatal("pause did not pause")
	}
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.Sim().Ticks() != ticks {
		t.Error("paused game advanced")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused || g.Sim().Ticks() != ticks+1 {
		t.Errorf("resume: paused %v ticks %d", g.State().Paused, g.Sim().Ticks())
	}
}

func TestDifficultyPreset(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { _ = SetDifficultyPreset("") })

	if err := SetDifficultyPreset("brutal"); err == nil {
		t.Error("unknown preset accepted")
	}
	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatal(err)
	}
	cfg, err := New().LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Difficulty.Enabled || cfg.Powerups.JetpackTime != 1.4 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
}

func TestClassicConfig(t *testing.T) {
	isolate(t)
	cfg, err := NewClassic().LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Features != (config.JumperFeatures{}) || !cfg.Steering.PointerDigital {
		t.Errorf("classic config = %+v %+v", cfg.Features, cfg.Steering)
	}
}

func TestKeyHold(t *testing.T) {
	var s steering
	l := newLayout(80, 24, config.DefaultJumperConfig().World)

	in := s.input(frame(core.ActionRight), l, 80)
	if in.Source != sim.SourceKeys || !in.Right || in.Left {
		t.Fatalf("first tick = %+v", in)
	}
	for i := 1; i < holdTicks; i++ {
		if in := s.input(core.NewInputFrame(), l, 80); !in.Right {
			t.Fatalf("tick %d released early", i)
		}
	}
	if in := s.input(core.NewInputFrame(), l, 80); in.Source != sim.SourceNone {
		t.Errorf("key still held after %d ticks: %+v", holdTicks, in)
	}

	// The opposite key takes over at once
	s.input(frame(core.ActionRight), l, 80)
	if in := s.input(frame(core.ActionLeft), l, 80); !in.Left || in.Right {
		t.Errorf("left after right = %+v", in)
	}
}

func TestPointerOverridesKeys(t *testing.T) {
	var s steering
	l := newLayout(80, 24, config.DefaultJumperConfig().World)

	in := frame(core.ActionLeft)
	in.Pointer = core.Pointer{Active: true, X: 39.5 / 80}
	got := s.input(in, l, 80)
	if got.Source != sim.SourcePointer {
		t.Fatalf("source = %s, expected pointer", got.Source)
	}
	if math.Abs(got.PointerX-240) > 1e-9 {
		t.Errorf("pointer at playfield center maps to %v, expected 240", got.PointerX)
	}
	if next := s.input(core.NewInputFrame(), l, 80); next.Source != sim.SourceNone {
		t.Errorf("key hold survived pointer input: %+v", next)
	}
}

func TestBadConfigFallsBack(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, []byte("world:\n  max_step: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := NewClassic()
	g.Reset(runtimeConfig(1))
	if !errors.Is(g.ConfigErr(), config.ErrInvalidConfig) {
		t.Fatalf("ConfigErr() = %v, expected ErrInvalidConfig", g.ConfigErr())
	}
	cfg := g.Sim().Config()
	if cfg.World.MaxStep != 0.033 || cfg.Features.Enemies {
		t.Errorf("fallback max_step %v, enemies %v; expected built-in classic", cfg.World.MaxStep, cfg.Features.Enemies)
	}
	started(t, g, 1)

	SetConfigPath("")
	g.Reset(runtimeConfig(1))
	if g.ConfigErr() != nil {
		t.Errorf("ConfigErr() = %v after a good load", g.ConfigErr())
	}
}
