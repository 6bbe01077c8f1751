package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sky-jumper/internal/config"
)

// ErrBadTransition is returned when a mode transition is not allowed from
// the current mode.
var ErrBadTransition = errors.New("sim: bad mode transition")

// State is one jumper simulation. It is owned by the caller and mutated
// only through InitRun, Start, Restart and Step. A State is not safe for
// concurrent use.
type State struct {
	cfg  config.JumperConfig
	diff *config.DifficultyManager

	rng  RNG
	seed uint32

	mode  Mode
	time  float64
	ticks int

	player       Player
	platforms    []Platform
	collectibles []Collectible
	enemies      []Enemy
	gusts        []Gust
	puffs        []Puff
	streaks      []Streak

	score Tracker
	best  int

	jetpackTime  float64
	jetpackTrail float64
	shieldTime   float64

	ended bool
	cause EndCause
}

// New creates a simulation in menu mode. The configuration is validated.
func New(cfg config.JumperConfig) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	s := &State{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		mode: ModeMenu,
		score: NewTracker(
			cfg.Powerups.LandingScore,
			cfg.Powerups.ComboStep,
			cfg.Powerups.ComboWindow,
		),
	}
	s.player = s.spawnPlayer()
	return s, nil
}

// Config returns the configuration the simulation runs with.
func (s *State) Config() config.JumperConfig {
	return s.cfg
}

// InitRun resets every run-scoped value and regenerates the world from
// seed. Best score and mode are kept.
func (s *State) InitRun(seed uint32) {
	s.rng = Seed(seed)
	s.seed = seed
	s.time = 0
	s.ticks = 0
	s.score.Reset()
	s.jetpackTime = 0
	s.jetpackTrail = 0
	s.shieldTime = 0
	s.ended = false
	s.cause = EndNone

	s.platforms = s.platforms[:0]
	s.collectibles = s.collectibles[:0]
	s.enemies = s.enemies[:0]
	s.gusts = s.gusts[:0]
	s.puffs = s.puffs[:0]
	s.streaks = s.streaks[:0]

	s.player = s.spawnPlayer()
	s.player.VY = -float64(s.cfg.Physics.JumpVelocity * s.cfg.Physics.LaunchFactor)
	if s.cfg.Features.Blink {
		s.player.NextBlinkTime = s.rng.Range(firstBlinkMin, firstBlinkMax)
	}

	s.ensurePlatforms()
}

// Start begins the first run. Only valid from the menu.
func (s *State) Start(seed uint32) error {
	if s.mode != ModeMenu {
		return fmt.Errorf("%w: start from %s", ErrBadTransition, s.mode)
	}
	s.InitRun(seed)
	s.mode = ModePlaying
	return nil
}

// Restart begins a new run after game over.
func (s *State) Restart(seed uint32) error {
	if s.mode != ModeGameOver {
		return fmt.Errorf("%w: restart from %s", ErrBadTransition, s.mode)
	}
	s.InitRun(seed)
	s.mode = ModePlaying
	return nil
}

// SetBest restores a best score loaded from persistence. It never lowers
// the current best.
func (s *State) SetBest(best int) {
	if best > s.best {
		s.best = best
	}
}

func (s *State) spawnPlayer() Player {
	w := s.cfg.World
	return Player{
		X: w.Width / 2,
		Y: w.Height - s.cfg.Player.StartOffset,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
}

// endRun moves to game over and settles the best score. Only the first
// call in a run has any effect.
func (s *State) endRun(cause EndCause, ev *Events) {
	if s.ended {
		return
	}
	s.ended = true
	s.cause = cause
	s.mode = ModeGameOver
	if score := s.score.Floor(); score > s.best {
		s.best = score
	}
	ev.RunEnded = true
	ev.Cause = cause
}

// Read-only views. Slices alias internal storage and are valid until the
// next call to Step or InitRun; callers must not modify them.

func (s *State) Mode() Mode                  { return s.mode }
func (s *State) Seed() uint32                { return s.seed }
func (s *State) Time() float64               { return s.time }
func (s *State) Ticks() int                  { return s.ticks }
func (s *State) Score() int                  { return s.score.Floor() }
func (s *State) RawScore() float64           { return s.score.Score }
func (s *State) Best() int                   { return s.best }
func (s *State) Combo() int                  { return s.score.Combo }
func (s *State) ComboTimer() float64         { return s.score.ComboTimer }
func (s *State) JetpackTime() float64        { return s.jetpackTime }
func (s *State) ShieldTime() float64         { return s.shieldTime }
func (s *State) EndCause() EndCause          { return s.cause }
func (s *State) Player() Player              { return s.player }
func (s *State) Platforms() []Platform       { return s.platforms }
func (s *State) Collectibles() []Collectible { return s.collectibles }
func (s *State) Enemies() []Enemy            { return s.enemies }
func (s *State) Gusts() []Gust               { return s.gusts }
func (s *State) Puffs() []Puff               { return s.puffs }
func (s *State) Streaks() []Streak           { return s.streaks }
