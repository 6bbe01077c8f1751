package sim

import (
	"encoding/json"
	"math"
)

// SnapshotVersion is bumped whenever a Snapshot field changes meaning.
const SnapshotVersion = 1

// snapshotPlatforms caps how many platforms a Snapshot lists.
const snapshotPlatforms = 12

const snapshotNote = "Origin top-left, y increases downward. Platform and player positions are screen-space."

// Snapshot is the diagnostic record of a State. Field names are stable;
// positions and velocities are rounded to one decimal.
type Snapshot struct {
	Version      int                `json:"version"`
	Mode         string             `json:"mode"`
	Note         string             `json:"note"`
	Seed         uint32             `json:"seed"`
	Tick         int                `json:"tick"`
	Player       PlayerSnapshot     `json:"player"`
	Platforms    []PlatformSnapshot `json:"platforms"`
	Particles    ParticleCounts     `json:"particles"`
	Collectibles int                `json:"collectibles"`
	Enemies      int                `json:"enemies"`
	Gusts        int                `json:"gusts"`
	Combo        int                `json:"combo"`
	Jetpack      bool               `json:"jetpack"`
	Shield       bool               `json:"shield"`
	Score        int                `json:"score"`
	Best         int                `json:"best"`
}

// PlayerSnapshot is the player's kinematic state.
type PlayerSnapshot struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// PlatformSnapshot is one platform; Spring reports an unused spring.
type PlatformSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Type   string  `json:"type"`
	Spring bool    `json:"spring"`
}

// ParticleCounts counts live particles.
type ParticleCounts struct {
	Puffs   int `json:"puffs"`
	Streaks int `json:"streaks"`
}

// Snapshot captures the current state.
func (s *State) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Version: SnapshotVersion,
		Mode:    s.mode.String(),
		Note:    snapshotNote,
		Seed:    s.seed,
		Tick:    s.ticks,
		Player: PlayerSnapshot{
			X:  round1(p.X),
			Y:  round1(p.Y),
			VX: round1(p.VX),
			VY: round1(p.VY),
			W:  p.W,
			H:  p.H,
		},
		Platforms: make([]PlatformSnapshot, 0, min(len(s.platforms), snapshotPlatforms)),
		Particles: ParticleCounts{
			Puffs:   len(s.puffs),
			Streaks: len(s.streaks),
		},
		Collectibles: len(s.collectibles),
		Enemies:      len(s.enemies),
		Gusts:        len(s.gusts),
		Combo:        s.score.Combo,
		Jetpack:      s.jetpackTime > 0,
		Shield:       s.shieldTime > 0,
		Score:        s.score.Floor(),
		Best:         s.best,
	}
	for i, pl := range s.platforms {
		if i == snapshotPlatforms {
			break
		}
		snap.Platforms = append(snap.Platforms, PlatformSnapshot{
			X:      round1(pl.X),
			Y:      round1(pl.Y),
			W:      pl.W,
			H:      pl.H,
			Type:   pl.Kind.String(),
			Spring: pl.SpringReady(),
		})
	}
	return snap
}

// JSON encodes the snapshot on one line.
func (snap Snapshot) JSON() ([]byte, error) {
	return json.Marshal(snap)
}

// Hash returns a hash of the exact simulation state, down to float bits,
// for determinism testing.
func (s *State) Hash() uint64 {
	h := uint64(s.mode)
	mix := func(v float64) {
		h = h*31 + math.Float64bits(v)
	}
	mixInt := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(s.rng.State())
	mixInt(s.ticks)
	mix(s.time)
	mix(s.score.Score)
	mixInt(s.score.Combo)
	mix(s.score.ComboTimer)
	mixInt(s.best)
	mix(s.jetpackTime)
	mix(s.shieldTime)

	p := s.player
	for _, v := range []float64{p.X, p.Y, p.VX, p.VY, p.SquashTimer, p.BlinkTimer, p.NextBlinkTime} {
		mix(v)
	}
	for _, pl := range s.platforms {
		mix(pl.X)
		mix(pl.Y)
		mix(pl.VX)
		mixInt(int(pl.Kind))
		mix(pl.BreakTimer)
		mixInt(boolInt(pl.HasSpring) | boolInt(pl.SpringUsed)<<1 | boolInt(pl.Breakable)<<2 | boolInt(pl.Breaking)<<3)
	}
	for _, c := range s.collectibles {
		mixInt(int(c.Kind))
		mix(c.X)
		mix(c.Y)
	}
	for _, e := range s.enemies {
		mix(e.X)
		mix(e.Y)
		mix(e.VX)
	}
	for _, g := range s.gusts {
		mix(g.X)
		mix(g.Y)
		mix(g.Force)
	}
	for _, pf := range s.puffs {
		mix(pf.Y)
		mix(pf.Life)
	}
	for _, st := range s.streaks {
		mix(st.Y)
		mix(st.Life)
	}
	return h
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
