// Package jumper adapts the Sky Jumper simulation to the game registry and
// the terminal screen. The climb itself lives in package sim; this package
// loads configuration, maps platform input onto steering, drives fixed steps
// and draws the world into a character screen.
package jumper

import (
	"fmt"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper/sim"
	"github.com/vovakirdan/sky-jumper/internal/registry"
)

// seedStride spaces the seeds of consecutive runs in one session.
const seedStride = 0x9e3779b9

// configPath and difficultyPreset are set from CLI flags before games are
// created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty string keeps the
// config's own difficulty section.
func SetDifficultyPreset(preset string) error {
	if preset == "" {
		difficultyPreset = ""
		return nil
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Game implements registry.Game for one ruleset.
type Game struct {
	id      string
	title   string
	ruleset config.Ruleset

	runtime core.RuntimeConfig
	cfg     config.JumperConfig
	state   *sim.State
	driver  *sim.Driver
	steer   steering
	layout  layout
	paused  bool
	runs    uint32
	last    registry.RunInfo

	configErr error
}

// New creates the default game.
func New() *Game {
	return newGame("jumper", "Sky Jumper", config.RulesetPro)
}

// NewClassic creates the platforms-only variant.
func NewClassic() *Game {
	return newGame("jumper_classic", "Sky Jumper Classic", config.RulesetClassic)
}

func newGame(id, title string, ruleset config.Ruleset) *Game {
	return &Game{id: id, title: title, ruleset: ruleset}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Ruleset returns the ruleset the game was registered with.
func (g *Game) Ruleset() config.Ruleset {
	return g.ruleset
}

// LoadConfig resolves the configuration this game would run with.
func (g *Game) LoadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		return config.DefaultJumperConfig(), err
	}
	if err := config.ApplyRuleset(&cfg, string(g.ruleset)); err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Reset loads the configuration and returns to the title screen. The best
// score of earlier runs is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.configErr = nil
	cfg, err := g.LoadConfig()
	var state *sim.State
	if err == nil {
		state, err = sim.New(cfg)
	}
	if err != nil {
		g.configErr = err
		cfg, state = g.defaultState()
	}
	if g.state != nil {
		state.SetBest(g.state.Best())
	}

	g.cfg = cfg
	g.state = state
	g.driver = sim.NewDriver(state, runtime.TickRate)
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.World)
	g.steer = steering{}
	g.paused = false
	g.runs = 0
}

// defaultState builds a world from the built-in configuration. The built-in
// values are validated by tests, so an error here is a programming bug.
func (g *Game) defaultState() (config.JumperConfig, *sim.State) {
	cfg := config.DefaultJumperConfig()
	if err := config.ApplyRuleset(&cfg, string(g.ruleset)); err != nil {
		panic(fmt.Sprintf("jumper: built-in ruleset %q: %v", g.ruleset, err))
	}
	state, err := sim.New(cfg)
	if err != nil {
		panic(fmt.Sprintf("jumper: built-in config: %v", err))
	}
	return cfg, state
}

// ConfigErr reports why the last Reset fell back to the built-in
// configuration, or nil when the loaded configuration was used.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Resize adapts the drawing layout to a new screen size without touching
// the run in progress.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = newLayout(w, h, g.cfg.World)
}

// RestoreBest seeds the best score from persistence.
func (g *Game) RestoreBest(best int) {
	if g.state != nil {
		g.state.SetBest(best)
	}
}

// LastRun describes the most recently ended run.
func (g *Game) LastRun() registry.RunInfo {
	return g.last
}

// Sim exposes the underlying simulation for diagnostics.
func (g *Game) Sim() *sim.State {
	return g.state
}

// nextSeed returns the seed of the next run. The first run of a session
// uses the runtime seed as is so that a given --seed reproduces it.
func (g *Game) nextSeed() uint32 {
	seed := uint32(g.runtime.Seed) + g.runs*seedStride //#nosec G115 -- seeds wrap
	g.runs++
	return seed
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	switch g.state.Mode() {
	case sim.ModeMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			_ = g.state.Start(g.nextSeed())
			g.steer = steering{}
		}
		return core.StepResult{State: g.State()}

	case sim.ModeGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			_ = g.state.Restart(g.nextSeed())
			g.steer = steering{}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	ev := g.driver.Steps(1, g.steer.input(in, g.layout, g.runtime.ScreenW))
	if ev.RunEnded {
		g.last = registry.RunInfo{
			Seed:    g.state.Seed(),
			Ruleset: string(g.ruleset),
			Ticks:   g.state.Ticks(),
			Cause:   ev.Cause.String(),
		}
	}
	return core.StepResult{State: g.State(), RunEnded: ev.RunEnded}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	mode := g.state.Mode()
	return core.GameState{
		Score:    g.state.Score(),
		Best:     g.state.Best(),
		Playing:  mode == sim.ModePlaying,
		GameOver: mode == sim.ModeGameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("jumper", func() registry.Game { return New() })
	registry.Register("jumper_classic", func() registry.Game { return NewClassic() })
}
