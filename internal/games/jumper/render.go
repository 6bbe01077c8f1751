package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper/sim"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	EyeChar       = 'o'
	BlinkChar     = '-'
	StaticChar    = '='
	MovingChar    = '≡'
	BreakableChar = '-'
	CrumbleChar   = '.'
	SpringChar    = '^'
	OrbChar       = '•'
	JetpackChar   = '▲'
	ShieldChar    = '◈'
	EnemyChar     = '◉'
	GustChar      = '~'
	PuffChar      = '·'
	StreakChar    = '|'
	FlameChar     = '*'
	WallChar      = '│'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// layout maps world coordinates onto the character screen. Terminal cells
// are about twice as tall as they are wide, so one row covers twice the
// world distance of one column.
type layout struct {
	x0, y0 int // Top-left cell of the playfield
	w, h   int // Playfield size in cells
	sx, sy float64
}

func newLayout(screenW, screenH int, world config.JumperWorld) layout {
	rows := max(screenH-hudRows, 1)
	w := max(screenW-2, 1) // Leave room for the side walls
	h := int(float64(w) * world.Height / world.Width / 2)
	if h > rows {
		h = rows
		w = max(int(float64(h)*2*world.Width/world.Height), 1)
	}
	h = max(h, 1)
	return layout{
		x0: (screenW - w) / 2,
		y0: hudRows,
		w:  w,
		h:  h,
		sx: float64(w) / world.Width,
		sy: float64(h) / world.Height,
	}
}

// cell converts a world point to a screen cell.
func (l layout) cell(x, y float64) (int, int) {
	return l.x0 + int(math.Floor(x*l.sx)), l.y0 + int(math.Floor(y*l.sy))
}

// inside reports whether a screen cell lies in the playfield.
func (l layout) inside(cx, cy int) bool {
	return core.NewRect(l.x0, l.y0, l.w, l.h).Contains(cx, cy)
}

// worldX converts a pointer position, as a fraction of the screen width,
// to a world x coordinate.
func (l layout) worldX(frac float64, screenW int) float64 {
	return (frac*float64(screenW) - float64(l.x0)) / l.sx
}

func (l layout) plot(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if l.inside(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	l := g.layout
	s := g.state

	for y := l.y0; y < l.y0+l.h; y++ {
		dst.SetColored(l.x0-1, y, WallChar, core.ColorGray)
		dst.SetColored(l.x0+l.w, y, WallChar, core.ColorGray)
	}

	g.drawGusts(dst, l)
	for _, pl := range s.Platforms() {
		drawPlatform(dst, l, pl)
	}
	for _, c := range s.Collectibles() {
		cx, cy := l.cell(c.X, c.Y)
		switch c.Kind {
		case sim.CollectibleOrb:
			l.plot(dst, cx, cy, OrbChar, core.ColorYellow)
		case sim.CollectibleJetpack:
			l.plot(dst, cx, cy, JetpackChar, core.ColorOrange)
		case sim.CollectibleShield:
			l.plot(dst, cx, cy, ShieldChar, core.ColorBlue)
		}
	}
	for _, e := range s.Enemies() {
		cx, cy := l.cell(e.X, e.Y)
		l.plot(dst, cx, cy, EnemyChar, core.ColorRed)
	}
	for _, p := range s.Puffs() {
		cx, cy := l.cell(p.X, p.Y)
		l.plot(dst, cx, cy, PuffChar, tintColor(p.Tint))
	}
	for _, st := range s.Streaks() {
		cx, cy := l.cell(st.X, st.Y)
		l.plot(dst, cx, cy, StreakChar, tintColor(st.Tint))
	}
	g.drawPlayer(dst, l)
	g.drawHUD(dst)

	switch {
	case s.Mode() == sim.ModeMenu:
		drawCenteredMessage(dst, g.title, "Enter/Space to start  |  arrows or mouse to steer")
	case s.Mode() == sim.ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  R to restart", s.Score(), s.Best()))
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawPlatform(dst *core.Screen, l layout, pl sim.Platform) {
	r, c := StaticChar, core.ColorGreen
	switch {
	case pl.Breaking:
		r, c = CrumbleChar, core.ColorBrown
	case pl.Breakable:
		r, c = BreakableChar, core.ColorBrown
	case pl.Kind == sim.PlatformMoving:
		r, c = MovingChar, core.ColorCyan
	}

	x0, y := l.cell(pl.X, pl.Y)
	x1, _ := l.cell(pl.X+pl.W, pl.Y)
	for x := x0; x < max(x1, x0+1); x++ {
		l.plot(dst, x, y, r, c)
	}
	if pl.SpringReady() {
		sx, _ := l.cell(pl.X+pl.W/2, pl.Y)
		l.plot(dst, sx, y-1, SpringChar, core.ColorYellow)
	}
}

func (g *Game) drawGusts(dst *core.Screen, l layout) {
	shift := int(g.state.Time() * 8)
	for _, gu := range g.state.Gusts() {
		x0, y0 := l.cell(gu.X, gu.Y)
		x1, y1 := l.cell(gu.X+gu.W, gu.Y+gu.H)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if (x+y*2+shift)%5 == 0 {
					l.plot(dst, x, y, GustChar, core.ColorSky)
				}
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout) {
	p := g.state.Player()
	x0, y0 := l.cell(p.X-p.W/2, p.Y-p.H/2)
	x1, y1 := l.cell(p.X+p.W/2, p.Y+p.H/2)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	if p.SquashTimer > 0 && y1-y0 > 1 {
		y0++
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			l.plot(dst, x, y, PlayerChar, core.ColorPink)
		}
	}

	eye := EyeChar
	if p.BlinkTimer > 0 {
		eye = BlinkChar
	}
	if x1-x0 >= 3 {
		l.plot(dst, x0+(x1-x0)/3, y0, eye, core.ColorWhite)
		l.plot(dst, x1-1-(x1-x0)/3, y0, eye, core.ColorWhite)
	}

	mid := (y0 + y1) / 2
	if g.state.ShieldTime() > 0 {
		l.plot(dst, x0-1, mid, '(', core.ColorBlue)
		l.plot(dst, x1, mid, ')', core.ColorBlue)
	}
	if g.state.JetpackTime() > 0 {
		l.plot(dst, (x0+x1)/2, y1, FlameChar, core.ColorOrange)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Best: %d", s.Score(), s.Best()))

	x := dst.Width() - 1
	put := func(text string, c core.Color) {
		x -= len([]rune(text)) + 1
		dst.DrawTextColored(x, 0, text, c)
	}
	if s.ShieldTime() > 0 {
		put("SHIELD", core.ColorBlue)
	}
	if s.JetpackTime() > 0 {
		put(fmt.Sprintf("JET %.1fs", s.JetpackTime()), core.ColorOrange)
	}
	if s.Combo() > 1 {
		put(fmt.Sprintf("x%d", s.Combo()), core.ColorYellow)
	}
}

func tintColor(t sim.Tint) core.Color {
	switch t {
	case sim.TintBoost:
		return core.ColorYellow
	case sim.TintJet:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(max(boxX+(boxW-len([]rune(subtitle)))/2, boxX+1), boxY+3, subtitle)
}
