package sim

// RNG is a deterministic pseudo-random number generator (mulberry32).
// The zero value is a valid generator seeded with 0. RNG is a plain value:
// copying it forks the stream.
type RNG struct {
	state uint32
}

// Seed creates a generator from a 32-bit seed.
func Seed(seed uint32) RNG {
	return RNG{state: seed}
}

// State returns the raw generator state.
func (r RNG) State() uint32 {
	return r.state
}

// Step is the pure form of the generator: it returns the next value in
// [0, 1) together with the advanced generator, leaving r untouched.
func (r RNG) Step() (float64, RNG) {
	s := r.state + 0x6d2b79f5
	t := s
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296, RNG{state: s}
}

// Float64 returns a value in [0, 1) and advances the generator.
func (r *RNG) Float64() float64 {
	v, next := r.Step()
	*r = next
	return v
}

// Range returns a value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + float64((max-min)*r.Float64())
}

// Sign returns +1 or -1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}
