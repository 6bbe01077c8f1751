package sim

import (
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
)

// Reference runs recorded at 60 ticks per second. Positions are rounded to
// one decimal as in the diagnostic snapshot.
type fixture struct {
	name    string
	ruleset string
	seed    uint32
	steps   int
	input   Input

	mode         Mode
	x, y, vx, vy float64
	platforms    int
	score, best  int
	combo        int
	puffs        int
	streaks      int
	collectibles int
	enemies      int
	gusts        int
	first        []PlatformSnapshot
}

var fixtures = []fixture{
	{
		name: "default seed one second", ruleset: "pro", seed: 428202, steps: 60,
		mode: ModeGameOver, x: 240, y: 934.2, vx: 0, vy: 1203.3,
		platforms: 14, score: 0, best: 0, combo: 0,
		puffs: 0, streaks: 0, collectibles: 6, enemies: 2, gusts: 0,
		first: []PlatformSnapshot{
			{X: 18.1, Y: 673, W: 110, H: 22, Type: "moving", Spring: false},
			{X: 170.8, Y: 557.2, W: 110, H: 22, Type: "moving", Spring: true},
			{X: 311.5, Y: 472.4, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "default seed first tick", ruleset: "pro", seed: 428202, steps: 1,
		mode: ModePlaying, x: 240, y: 670.1, vx: 0, vy: -593.3,
		platforms: 14, collectibles: 6, enemies: 2,
		first: []PlatformSnapshot{
			{X: 48, Y: 673, W: 110, H: 22, Type: "moving", Spring: false},
			{X: 107.3, Y: 557.2, W: 110, H: 22, Type: "moving", Spring: true},
			{X: 254.2, Y: 472.4, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "jetpack climb", ruleset: "pro", seed: 42, steps: 180,
		mode: ModePlaying, x: 240, y: 320, vx: 0, vy: -1200,
		platforms: 14, score: 1455, combo: 0,
		puffs: 0, streaks: 25, collectibles: 1, enemies: 1, gusts: 3,
		first: []PlatformSnapshot{
			{X: 149.7, Y: 933.7, W: 110, H: 22, Type: "static", Spring: true},
			{X: 80.7, Y: 827.5, W: 110, H: 22, Type: "static", Spring: true},
			{X: 160.6, Y: 705.8, W: 110, H: 22, Type: "static", Spring: false},
		},
	},
	{
		name: "enemy ends run", ruleset: "pro", seed: 2, steps: 180,
		mode: ModeGameOver, x: 240, y: 516.7, vx: 0, vy: -496.7,
		platforms: 14, score: 20, best: 20, combo: 1,
		puffs: 4, streaks: 0, collectibles: 6, enemies: 2, gusts: 1,
		first: []PlatformSnapshot{
			{X: 197.5, Y: 670.5, W: 110, H: 22, Type: "static", Spring: false},
			{X: 86.5, Y: 593.7, W: 110, H: 22, Type: "static", Spring: false},
			{X: 117, Y: 519.9, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "three seconds idle", ruleset: "pro", seed: 99, steps: 180,
		mode: ModePlaying, x: 240, y: 349.5, vx: 0, vy: -386.7,
		platforms: 14, score: 381, combo: 1,
		puffs: 5, streaks: 0, collectibles: 2, enemies: 2, gusts: 2,
		first: []PlatformSnapshot{
			{X: 247.8, Y: 933.1, W: 110, H: 22, Type: "static", Spring: false},
			{X: 81.9, Y: 819.5, W: 110, H: 22, Type: "static", Spring: false},
			{X: 275.3, Y: 703.8, W: 110, H: 22, Type: "static", Spring: false},
		},
	},
	{
		name: "pointer right of center", ruleset: "pro", seed: 99, steps: 180,
		input: Input{Source: SourcePointer, PointerX: 300},
		mode:  ModePlaying, x: 450, y: 464.8, vx: 80, vy: 780,
		platforms: 14, score: 2255, combo: 0,
		puffs: 0, streaks: 0, collectibles: 6, enemies: 3, gusts: 2,
		first: []PlatformSnapshot{
			{X: 222.6, Y: 918, W: 110, H: 22, Type: "moving", Spring: true},
			{X: 174.1, Y: 839.6, W: 110, H: 22, Type: "static", Spring: false},
			{X: 215.3, Y: 752.7, W: 110, H: 22, Type: "static", Spring: false},
		},
	},
	{
		name: "two seconds", ruleset: "pro", seed: 7, steps: 120,
		mode: ModePlaying, x: 240, y: 567.4, vx: 0, vy: 603.3,
		platforms: 14, score: 40, combo: 1,
		puffs: 0, streaks: 0, collectibles: 3, enemies: 2, gusts: 3,
		first: []PlatformSnapshot{
			{X: 250.7, Y: 686.3, W: 110, H: 22, Type: "static", Spring: false},
			{X: 71.5, Y: 572.5, W: 110, H: 22, Type: "static", Spring: false},
			{X: 342.7, Y: 470.4, W: 110, H: 22, Type: "static", Spring: false},
		},
	},
	{
		name: "classic climb", ruleset: "classic", seed: 2, steps: 180,
		mode: ModePlaying, x: 240, y: 348.4, vx: 0, vy: 236.7,
		platforms: 14, score: 123,
		first: []PlatformSnapshot{
			{X: 114.1, Y: 769.1, W: 110, H: 22, Type: "static", Spring: false},
			{X: 184.7, Y: 646.5, W: 110, H: 22, Type: "static", Spring: false},
			{X: 93.1, Y: 529.6, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "classic pointer inside dead zone", ruleset: "classic", seed: 2, steps: 180,
		input: Input{Source: SourcePointer, PointerX: 245},
		mode:  ModePlaying, x: 240, y: 348.4, vx: 0, vy: 236.7,
		platforms: 14, score: 123,
		first: []PlatformSnapshot{
			{X: 114.1, Y: 769.1, W: 110, H: 22, Type: "static", Spring: false},
			{X: 184.7, Y: 646.5, W: 110, H: 22, Type: "static", Spring: false},
			{X: 93.1, Y: 529.6, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "classic keys right", ruleset: "classic", seed: 2, steps: 180,
		input: Input{Source: SourceKeys, Right: true},
		mode:  ModeGameOver, x: 506.7, y: 934.2, vx: 320, vy: 1203.3,
		platforms: 14, score: 0,
		first: []PlatformSnapshot{
			{X: 114.1, Y: 645.9, W: 110, H: 22, Type: "static", Spring: false},
			{X: 184.7, Y: 523.4, W: 110, H: 22, Type: "static", Spring: false},
			{X: 227.6, Y: 406.5, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
	{
		name: "classic default seed falls", ruleset: "classic", seed: 428202, steps: 60,
		mode: ModeGameOver, x: 240, y: 934.2, vx: 0, vy: 1203.3,
		platforms: 14, score: 0,
		first: []PlatformSnapshot{
			{X: 44.3, Y: 644.5, W: 110, H: 22, Type: "static", Spring: true},
			{X: 286, Y: 572.1, W: 110, H: 22, Type: "moving", Spring: true},
			{X: 35.5, Y: 445.1, W: 110, H: 22, Type: "static", Spring: false},
		},
	},
	{
		name: "classic long run", ruleset: "classic", seed: 2, steps: 300,
		mode: ModePlaying, x: 240, y: 578.2, vx: 0, vy: 786.7,
		platforms: 14, score: 453,
		first: []PlatformSnapshot{
			{X: 54.4, Y: 859.5, W: 110, H: 22, Type: "moving", Spring: false},
			{X: 114.4, Y: 754.7, W: 110, H: 22, Type: "moving", Spring: false},
			{X: 268.3, Y: 629.7, W: 110, H: 22, Type: "moving", Spring: false},
		},
	},
}

func TestReferenceRuns(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			cfg := config.DefaultJumperConfig()
			if err := config.ApplyRuleset(&cfg, fx.ruleset); err != nil {
				t.Fatal(err)
			}
			s := newPlaying(t, cfg, fx.seed)
			for i := 0; i < fx.steps; i++ {
				s.Step(tick, fx.input)
			}

			snap := s.Snapshot()
			if s.Mode() != fx.mode {
				t.Errorf("mode = %s, expected %s", s.Mode(), fx.mode)
			}
			p := snap.Player
			if p.X != fx.x || p.Y != fx.y || p.VX != fx.vx || p.VY != fx.vy {
				t.Errorf("player = (%v, %v) v(%v, %v), expected (%v, %v) v(%v, %v)",
					p.X, p.Y, p.VX, p.VY, fx.x, fx.y, fx.vx, fx.vy)
			}
			if len(s.Platforms()) != fx.platforms {
				t.Errorf("platforms = %d, expected %d", len(s.Platforms()), fx.platforms)
			}
			if snap.Score != fx.score || snap.Best != fx.best {
				t.Errorf("score/best = %d/%d, expected %d/%d", snap.Score, snap.Best, fx.score, fx.best)
			}
			if snap.Combo != fx.combo {
				t.Errorf("combo = %d, expected %d", snap.Combo, fx.combo)
			}
			if snap.Particles.Puffs != fx.puffs || snap.Particles.Streaks != fx.streaks {
				t.Errorf("particles = %+v, expected %d puffs and %d streaks",
					snap.Particles, fx.puffs, fx.streaks)
			}
			if snap.Collectibles != fx.collectibles || snap.Enemies != fx.enemies || snap.Gusts != fx.gusts {
				t.Errorf("collectibles/enemies/gusts = %d/%d/%d, expected %d/%d/%d",
					snap.Collectibles, snap.Enemies, snap.Gusts, fx.collectibles, fx.enemies, fx.gusts)
			}
			for i, want := range fx.first {
				if got := snap.Platforms[i]; got != want {
					t.Errorf("platform %d = %+v, expected %+v", i, got, want)
				}
			}
		})
	}
}
