package jumper

import (
	"github.com/vovakirdan/sky-jumper/internal/core"
	"github.com/vovakirdan/sky-jumper/internal/games/jumper/sim"
)

// holdTicks is how long a single key press keeps steering. Terminals send
// no key-up events, only auto-repeat, so a press is held until the next
// repeat is due.
const holdTicks = 9

// steering turns platform input frames into simulation input. The pointer
// wins while it is held; otherwise recently pressed keys steer.
type steering struct {
	left, right int
}

func (s *steering) input(in core.InputFrame, l layout, screenW int) sim.Input {
	if in.Has(core.ActionLeft) {
		s.left, s.right = holdTicks, 0
	}
	if in.Has(core.ActionRight) {
		s.right, s.left = holdTicks, 0
	}

	if in.Pointer.Active {
		s.left, s.right = 0, 0
		return sim.Input{Source: sim.SourcePointer, PointerX: l.worldX(in.Pointer.X, screenW)}
	}

	out := sim.Input{Source: sim.SourceNone}
	if s.left > 0 || s.right > 0 {
		out = sim.Input{Source: sim.SourceKeys, Left: s.left > 0, Right: s.right > 0}
	}
	if s.left > 0 {
		s.left--
	}
	if s.right > 0 {
		s.right--
	}
	return out
}
