package sim

import "math"

const (
	puffMinCount  = 4
	puffExtra     = 3 // Up to this many more, exclusive
	puffSpread    = 18
	puffDrop      = 2
	puffJitterMin = -4
	puffJitterMax = 6
	puffSpeedMin  = 30
	puffSpeedMax  = 90
	puffLiftMin   = 10
	puffLiftMax   = 40
	puffRadiusMin = 4
	puffRadiusMax = 9
	puffLifeMin   = 0.35
	puffLifeMax   = 0.55
	puffGravity   = 120
	puffDrag      = 0.98

	streakCount    = 10
	streakSpread   = 10
	streakBody     = 0.35 // Emission point, as a fraction of player height below center
	streakDrift    = 40
	streakSpeedMin = 220
	streakSpeedMax = 360
	streakLifeMin  = 0.22
	streakLifeMax  = 0.36
	streakLenMin   = 10
	streakLenMax   = 22
	streakWidth    = 2
	streakGravity  = 40

	sparkleCount    = 6
	sparkleSpeedMin = 40
	sparkleSpeedMax = 120
	sparkleRadMin   = 3
	sparkleRadMax   = 6
	sparkleLifeMin  = 0.25
	sparkleLifeMax  = 0.4
)

// spawnPuff kicks up dust around the center of a platform's top edge.
func (s *State) spawnPuff(p Platform) {
	if !s.cfg.Features.Particles {
		return
	}
	count := puffMinCount + int(math.Floor(s.rng.Float64()*puffExtra))
	baseX := p.X + p.W/2
	baseY := p.Y + puffDrop
	for range count {
		angle := s.rng.Range(-math.Pi, 0)
		speed := s.rng.Range(puffSpeedMin, puffSpeedMax)
		x := baseX + s.rng.Range(-puffSpread, puffSpread)
		y := baseY + s.rng.Range(puffJitterMin, puffJitterMax)
		vx := float64(math.Cos(angle) * speed)
		vy := float64(float64(math.Sin(angle)*speed)*0.5) - s.rng.Range(puffLiftMin, puffLiftMax)
		r := s.rng.Range(puffRadiusMin, puffRadiusMax)
		life := s.rng.Range(puffLifeMin, puffLifeMax)
		maxLife := s.rng.Range(puffLifeMin, puffLifeMax)
		s.puffs = append(s.puffs, Puff{
			X: x, Y: y, VX: vx, VY: vy, R: r,
			Life: life, MaxLife: maxLife, Tint: TintWhite,
		})
	}
}

// spawnStreaks emits a burst of falling lines below the player.
func (s *State) spawnStreaks(tint Tint) {
	if !s.cfg.Features.Particles {
		return
	}
	p := s.player
	for range streakCount {
		x := p.X + s.rng.Range(-streakSpread, streakSpread)
		y := p.Y + float64(p.H*streakBody)
		vx := s.rng.Range(-streakDrift, streakDrift)
		vy := s.rng.Range(streakSpeedMin, streakSpeedMax)
		life := s.rng.Range(streakLifeMin, streakLifeMax)
		maxLife := s.rng.Range(streakLifeMin, streakLifeMax)
		length := s.rng.Range(streakLenMin, streakLenMax)
		s.streaks = append(s.streaks, Streak{
			X: x, Y: y, VX: vx, VY: vy, Length: length, Width: streakWidth,
			Life: life, MaxLife: maxLife, Tint: tint,
		})
	}
}

// spawnSparkle bursts puffs in every direction from a point.
func (s *State) spawnSparkle(x, y float64) {
	if !s.cfg.Features.Particles {
		return
	}
	for range sparkleCount {
		angle := s.rng.Range(-math.Pi, math.Pi)
		speed := s.rng.Range(sparkleSpeedMin, sparkleSpeedMax)
		r := s.rng.Range(sparkleRadMin, sparkleRadMax)
		life := s.rng.Range(sparkleLifeMin, sparkleLifeMax)
		maxLife := s.rng.Range(sparkleLifeMin, sparkleLifeMax)
		s.puffs = append(s.puffs, Puff{
			X: x, Y: y,
			VX:   float64(math.Cos(angle) * speed),
			VY:   float64(math.Sin(angle) * speed),
			R:    r,
			Life: life, MaxLife: maxLife, Tint: TintBoost,
		})
	}
}

// updatePuffs moves puffs ballistically with drag and drops expired ones.
func (s *State) updatePuffs(dt float64) {
	valid := s.puffs[:0]
	for _, p := range s.puffs {
		p.Life -= dt
		p.X += float64(p.VX * dt)
		p.Y += float64(p.VY * dt)
		p.VY += float64(puffGravity * dt)
		p.VX *= puffDrag
		if p.Life > 0 {
			valid = append(valid, p)
		}
	}
	s.puffs = valid
}

// updateStreaks moves streaks under light gravity and drops expired ones.
func (s *State) updateStreaks(dt float64) {
	valid := s.streaks[:0]
	for _, st := range s.streaks {
		st.Life -= dt
		st.X += float64(st.VX * dt)
		st.Y += float64(st.VY * dt)
		st.VY += float64(streakGravity * dt)
		if st.Life > 0 {
			valid = append(valid, st)
		}
	}
	s.streaks = valid
}
