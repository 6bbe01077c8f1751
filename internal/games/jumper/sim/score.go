package sim

import "math"

// Tracker accumulates score and the landing combo.
//
// Score is a float so that scroll distance adds up exactly; it is floored
// for display and for best-score comparison only.
type Tracker struct {
	Score      float64
	Combo      int
	ComboTimer float64

	base   float64 // Points for a landing at combo 1
	step   float64 // Extra points per combo level
	window float64 // Seconds a combo stays open
}

// NewTracker creates a tracker with the given landing scoring.
func NewTracker(base, step, window float64) Tracker {
	return Tracker{base: base, step: step, window: window}
}

// Reset clears score and combo for a new run.
func (t *Tracker) Reset() {
	t.Score = 0
	t.Combo = 0
	t.ComboTimer = 0
}

// Add adds points. Negative amounts are ignored so the score never drops.
func (t *Tracker) Add(points float64) {
	if points > 0 {
		t.Score += points
	}
}

// Land registers a landing: the combo grows if the window is still open,
// otherwise restarts at 1, and the window is refreshed. It returns the
// landing bonus, which the caller adds.
func (t *Tracker) Land() float64 {
	if t.ComboTimer > 0 {
		t.Combo++
	} else {
		t.Combo = 1
	}
	t.ComboTimer = t.window
	return t.base + float64(float64(t.Combo-1)*t.step)
}

// Decay runs the combo window down; the combo drops to 0 when it closes.
func (t *Tracker) Decay(dt float64) {
	if t.ComboTimer > 0 {
		t.ComboTimer = math.Max(0, t.ComboTimer-dt)
		if t.ComboTimer == 0 {
			t.Combo = 0
		}
	}
}

// Floor returns the displayed score.
func (t Tracker) Floor() int {
	return int(math.Floor(t.Score))
}
