//go:build simdebug

package sim

import (
	"fmt"
	"math"
)

const debugChecks = true

// violation panics in debug builds.
func violation(format string, args ...any) {
	panic(fmt.Sprintf("sim: "+format, args...))
}

// checkInvariants verifies the post-step guarantees of the simulation.
func (s *State) checkInvariants() {
	p := s.player
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY, s.score.Score} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			violation("non-finite player or score state %+v score=%v", p, s.score.Score)
		}
	}
	if len(s.platforms) < s.cfg.Platforms.MaxCount {
		violation("%d platforms, want at least %d", len(s.platforms), s.cfg.Platforms.MaxCount)
	}
	if top := s.highestPlatformY(); top > s.cfg.Platforms.TopLimit {
		violation("highest platform at y=%v, want at most %v", top, s.cfg.Platforms.TopLimit)
	}
	if s.score.Score < 0 {
		violation("negative score %v", s.score.Score)
	}
}
