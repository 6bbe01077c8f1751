// Package sim is the Sky Jumper simulation core.
//
// A State owns one world: the player, the platform column, collectibles,
// enemies, wind gusts and cosmetic particles. Step advances it by a fixed
// dt and reports what happened as Events. All randomness comes from a
// seeded mulberry32 RNG, so a seed and an input sequence reproduce a run
// bit for bit.
//
// Coordinates are screen-space: origin top-left, y grows downward. The
// world scrolls by moving everything down once the player climbs past the
// scroll threshold.
//
// Build with -tags simdebug to panic on invalid input and to check world
// invariants after every step.
package sim
