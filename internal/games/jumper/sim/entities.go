package sim

// Mode is the game-mode state machine position.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// PlatformKind distinguishes fixed from sliding platforms.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// CollectibleKind is the power-up carried by a collectible.
type CollectibleKind int

const (
	CollectibleOrb CollectibleKind = iota
	CollectibleJetpack
	CollectibleShield
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleOrb:
		return "orb"
	case CollectibleJetpack:
		return "jetpack"
	case CollectibleShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Tint is the color tag carried by particles.
type Tint int

const (
	TintWhite Tint = iota // Landing dust
	TintBoost             // Spring streaks and sparkles
	TintJet               // Jetpack exhaust
)

func (t Tint) String() string {
	switch t {
	case TintWhite:
		return "white"
	case TintBoost:
		return "boost"
	case TintJet:
		return "jet"
	default:
		return "unknown"
	}
}

// EndCause records why a run ended.
type EndCause int

const (
	EndNone EndCause = iota
	EndFell
	EndEnemy
)

func (c EndCause) String() string {
	switch c {
	case EndNone:
		return "none"
	case EndFell:
		return "fell"
	case EndEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the bouncing character. X, Y is the body center in world pixels.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	SquashTimer   float64 // Landing squash animation
	BlinkTimer    float64 // Eyes closed while positive
	NextBlinkTime float64 // Run time of the next blink
}

// Bottom returns the y of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H/2
}

// Platform is a landable ledge. X, Y is the top-left corner.
type Platform struct {
	X, Y float64
	W, H float64
	Kind PlatformKind
	VX   float64 // Zero unless Kind is PlatformMoving

	HasSpring  bool
	SpringUsed bool // Once set, stays set for the run

	Breakable  bool
	Breaking   bool
	BreakTimer float64
}

// SpringReady reports whether the next landing gets the spring impulse.
func (p Platform) SpringReady() bool {
	return p.HasSpring && !p.SpringUsed
}

// Collectible is a power-up floating above a platform.
type Collectible struct {
	Kind CollectibleKind
	X, Y float64
	R    float64
}

// Enemy is a drone patrolling horizontally between the walls.
type Enemy struct {
	X, Y float64
	R    float64
	VX   float64
}

// Gust is a rectangular wind zone pushing the player sideways.
type Gust struct {
	X, Y  float64
	W, H  float64
	Force float64 // Signed horizontal acceleration in px/s
	Phase float64 // Animation only
}

// Contains reports whether a point is inside the gust's reach, which
// extends a little beyond its sides.
func (g Gust) Contains(x, y float64) bool {
	return x > g.X-gustReach && x < g.X+g.W+gustReach && y > g.Y && y < g.Y+g.H
}

// Puff is a round dust or sparkle particle.
type Puff struct {
	X, Y    float64
	VX, VY  float64
	R       float64
	Life    float64
	MaxLife float64
	Tint    Tint
}

// Streak is a line particle trailing a boosted player.
type Streak struct {
	X, Y    float64
	VX, VY  float64
	Length  float64
	Width   float64
	Life    float64
	MaxLife float64
	Tint    Tint
}
