package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 7")
	s.DrawTextColored(2, 1, "JET", core.ColorOrange)
	s.SetColored(11, 2, '*', core.Color(200)) // Outside the palette

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Score: 7") {
		t.Errorf("plain row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "JET") {
		t.Errorf("colored row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "*") {
		t.Errorf("unknown color dropped its rune: %q", lines[2])
	}
}

func TestPaletteStyled(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSky; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
