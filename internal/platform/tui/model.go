package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/registry"
	"github.com/vovakirdan/sky-jumper/internal/storage"
)

// Options carries the collaborators a game model reports to. All fields are
// optional.
type Options struct {
	// Store records finished runs.
	Store *storage.Store

	// Best opens the store that persists a game's best score. When nil and
	// Store is set, the best score lives in Store under the game's key.
	Best func(gameID string) storage.BestStore

	// Logger receives storage failures and run summaries.
	Logger *log.Logger
}

// resizer is implemented by games that can follow a terminal resize without
// restarting the run.
type resizer interface {
	Resize(w, h int)
}

// configChecker is implemented by games that can fall back to built-in
// settings when the user's configuration does not load.
type configChecker interface {
	ConfigErr() error
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	best       storage.BestStore
	logger     *log.Logger
	config     core.RuntimeConfig
	clock      *core.Clock
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	embedded   bool // Hosted by a session that has a menu to go back to
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	var best storage.BestStore
	switch {
	case opts.Best != nil:
		best = opts.Best(game.ID())
	case opts.Store != nil:
		best = opts.Store.Best(storage.BestKey(game.ID()))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		best:       best,
		logger:     opts.Logger,
		config:     cfg,
		clock:      core.NewClock(cfg.TickRate, 0),
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, restores its best score and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.reset()
	m.restoreBest()
	return tickCmd(m.clock.Step())
}

// reset restarts the game and logs a configuration it had to replace.
func (m Model) reset() {
	m.game.Reset(m.config)
	if c, ok := m.game.(configChecker); ok {
		if err := c.ConfigErr(); err != nil {
			m.logger.Warn("using built-in config", "game", m.game.ID(), "error", err)
		}
	}
}

func (m Model) restoreBest() {
	keeper, ok := m.game.(registry.BestKeeper)
	if !ok || m.best == nil {
		return
	}
	best, err := m.best.LoadBest()
	if err != nil {
		m.logger.Warn("could not load best score", "game", m.game.ID(), "error", err)
		return
	}
	keeper.RestoreBest(best)
	m.logger.Debug("best score restored", "game", m.game.ID(), "best", best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouse(msg, m.config.ScreenW, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.embedded && (m.gameState.GameOver || m.gameState.Paused || !m.gameState.Playing) {
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	// Games without layout support restart at the new size
	if !m.gameState.GameOver {
		m.reset()
	}
	return m, nil
}

// handleTick runs as many fixed steps as the time since the previous frame
// covers. Edge-triggered actions reach only the first of them.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.Step()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	steps := m.clock.Frame(elapsed)
	for i := range steps {
		in := m.inputFrame
		if i > 0 {
			in = core.InputFrame{Pointer: m.inputFrame.Pointer}
		}
		result := m.game.Step(in)
		m.gameState = result.State
		if result.RunEnded {
			m.recordRun()
		}
	}

	// Keep unconsumed presses for the next frame
	if steps > 0 {
		m.inputFrame.Clear()
	}

	return m, tickCmd(m.clock.Step())
}

// recordRun stores the run that just ended and, if it set one, the new
// best score.
func (m Model) recordRun() {
	st := m.gameState
	rec := storage.RunRecord{Score: st.Score}
	if rr, ok := m.game.(registry.RunReporter); ok {
		run := rr.LastRun()
		rec.Seed = run.Seed
		rec.Ruleset = run.Ruleset
		rec.Ticks = run.Ticks
		m.logger.Info("run ended", "game", m.game.ID(), "score", st.Score,
			"best", st.Best, "seed", run.Seed, "cause", run.Cause)
	}

	if m.store != nil && st.Score > 0 {
		id, err := m.store.SaveRun(m.game.ID(), rec)
		if err != nil {
			m.logger.Error("could not save run", "game", m.game.ID(), "error", err)
		} else {
			m.logger.Debug("run saved", "id", id)
		}
	}

	// Only a record run writes, so concurrent sessions sharing a store
	// cannot lower each other's best
	if m.best != nil && st.Score > 0 && st.Score >= st.Best {
		if err := m.best.SaveBest(st.Best); err != nil {
			m.logger.Error("could not save best score", "game", m.game.ID(), "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".sky-jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen at the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse drag steers
	)

	_, err := p.Run()
	return err
}
