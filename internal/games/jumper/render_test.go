package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
)

func TestLayout(t *testing.T) {
	world := config.DefaultJumperConfig().World
	tests := []struct {
		name       string
		w, h       int
		x0, lw, lh int
	}{
		{"standard terminal is height bound", 80, 24, 26, 27, 23},
		{"tall terminal is width bound", 60, 100, 1, 58, 48},
		{"tiny terminal", 1, 1, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(tt.w, tt.h, world)
			if l.x0 != tt.x0 || l.w != tt.lw || l.h != tt.lh || l.y0 != hudRows {
				t.Errorf("layout = %+v, expected x0 %d w %d h %d", l, tt.x0, tt.lw, tt.lh)
			}
		})
	}
}

func TestLayoutCellCorners(t *testing.T) {
	l := newLayout(80, 24, config.DefaultJumperConfig().World)
	if x, y := l.cell(0, 0); x != l.x0 || y != l.y0 {
		t.Errorf("origin maps to (%d, %d)", x, y)
	}
	if x, y := l.cell(479.9, 799.9); !l.inside(x, y) {
		t.Errorf("far corner maps outside the playfield: (%d, %d)", x, y)
	}
	if l.inside(l.cell(-40, 400)) {
		t.Error("off-world point reported inside")
	}
}

func TestRenderScreens(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(runtimeConfig(428202))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Sky Jumper") || !strings.Contains(out, "Enter/Space") {
		t.Errorf("title screen missing text:\n%s", out)
	}

	g.Step(frame(core.ActionConfirm))
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.ContainsRune(out, PlayerChar) || !strings.ContainsRune(out, WallChar) {
		t.Errorf("player or walls not drawn:\n%s", out)
	}

	// This seed falls off the bottom within two seconds
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") {
		t.Errorf("game over box missing:\n%s", out)
	}
}

func TestRenderPaused(t *testing.T) {
	isolate(t)
	g := started(t, New(), 99)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause box missing")
	}
}

func TestRenderColorsPlayer(t *testing.T) {
	isolate(t)
	g := started(t, New(), 99)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == PlayerChar {
				found = true
				if c.Color != core.ColorPink {
					t.Fatalf("player cell color = %d", c.Color)
				}
			}
		}
	}
	if !found {
		t.Error("no player cells drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 3, ScreenH: 2, TickRate: 60, Seed: 1})
	g.Step(frame(core.ActionConfirm))
	g.Render(core.NewScreen(3, 2))
}
