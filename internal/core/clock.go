package core

import "time"

// DefaultMaxFrame caps how much wall-clock time a single frame may feed into
// the simulation. Longer hitches are dropped instead of replayed.
const DefaultMaxFrame = 33 * time.Millisecond

// Clock converts elapsed time into a whole number of fixed-size simulation
// steps. The fractional remainder carries over to the next call, so the
// step count over many frames tracks total elapsed time.
//
// Clock never reads the wall clock itself; callers pass elapsed durations.
type Clock struct {
	rate     int
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
	ticks    uint64
}

// NewClock creates a clock stepping tickRate times per second.
// A non-positive tickRate falls back to 60; a non-positive maxFrame to
// DefaultMaxFrame.
func NewClock(tickRate int, maxFrame time.Duration) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	return &Clock{
		rate:     tickRate,
		step:     time.Second / time.Duration(tickRate),
		maxFrame: maxFrame,
	}
}

// Step returns the fixed step duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// StepSeconds returns the step length in seconds as 1/tickRate. Simulations
// should integrate with this value rather than Step().Seconds(), which is
// truncated to whole nanoseconds.
func (c *Clock) StepSeconds() float64 {
	return 1 / float64(c.rate)
}

// Ticks returns how many steps the clock has handed out.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Frame accepts one wall-clock frame interval and returns how many fixed
// steps to run. Negative intervals count as zero and intervals longer than
// the frame cap are truncated to it.
func (c *Clock) Frame(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	return c.take(elapsed)
}

// Advance returns the exact number of fixed steps covered by d, carrying the
// remainder. Unlike Frame it applies no cap, which makes it the entry point
// for reproducible runs: Advance(time.Second) at 60 ticks per second is
// exactly 60 steps.
func (c *Clock) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	return c.take(d)
}

// Reset drops any accumulated remainder and the tick counter.
func (c *Clock) Reset() {
	c.acc = 0
	c.ticks = 0
}

func (c *Clock) take(d time.Duration) int {
	c.acc += d
	n := c.acc / c.step
	c.acc -= n * c.step
	c.ticks += uint64(n) //#nosec G115 -- n is never negative
	return int(n)
}
