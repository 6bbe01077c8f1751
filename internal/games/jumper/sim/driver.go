package sim

import (
	"time"

	"github.com/vovakirdan/sky-jumper/internal/core"
)

// Driver turns elapsed time into fixed-size steps of one State.
type Driver struct {
	state *State
	clock *core.Clock
	dt    float64
}

// NewDriver binds a driver to s, stepping tickRate times per second.
// Wall-clock frames are capped at the configured max step.
func NewDriver(s *State, tickRate int) *Driver {
	maxFrame := time.Duration(s.cfg.World.MaxStep * float64(time.Second))
	clock := core.NewClock(tickRate, maxFrame)
	return &Driver{
		state: s,
		clock: clock,
		dt:    clock.StepSeconds(),
	}
}

// State returns the driven simulation.
func (d *Driver) State() *State {
	return d.state
}

// StepSeconds returns the fixed dt passed to each Step.
func (d *Driver) StepSeconds() float64 {
	return d.dt
}

// Frame feeds one wall-clock frame interval and runs the steps it covers.
func (d *Driver) Frame(elapsed time.Duration, in Input) Events {
	return d.run(d.clock.Frame(elapsed), in)
}

// Advance runs exactly the number of steps covered by dur, with no frame
// cap. Advance(time.Second) at 60 ticks per second is 60 steps.
func (d *Driver) Advance(dur time.Duration, in Input) Events {
	return d.run(d.clock.Advance(dur), in)
}

// Steps runs n steps.
func (d *Driver) Steps(n int, in Input) Events {
	return d.run(n, in)
}

// Reset drops any partial step carried by the clock, for use after a
// pause or a mode change.
func (d *Driver) Reset() {
	d.clock.Reset()
}

func (d *Driver) run(n int, in Input) Events {
	var ev Events
	for range n {
		ev.Merge(d.state.Step(d.dt, in))
	}
	return ev
}
