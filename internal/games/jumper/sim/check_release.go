//go:build !simdebug

package sim

const debugChecks = false

// violation is a no-op in release builds; callers clamp or reject the bad
// value themselves.
func violation(string, ...any) {}

func (s *State) checkInvariants() {}
