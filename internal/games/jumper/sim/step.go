package sim

import (
	"math"

	"github.com/vovakirdan/sky-jumper/internal/core"
)

const (
	firstBlinkMin = 1.6
	firstBlinkMax = 3.2
	blinkGapMin   = 2.4
	blinkGapMax   = 4.6
	blinkDuration = 0.12

	squashDuration = 0.12
	jetTrailPeriod = 0.12

	pickupReach = 0.35 // Fraction of player width added to a collectible's radius
	enemyReach  = 0.28 // Fraction of player width added to an enemy's radius
	enemyWall   = 30
)

// Step advances the simulation by dt seconds. It does nothing outside
// ModePlaying. A NaN, infinite or negative dt is rejected; a dt above the
// configured max step is clamped to it.
//
// Products of two variables are wrapped in float64 conversions throughout
// the package so that no target fuses them into FMA instructions; runs
// must be bit-identical across platforms.
func (s *State) Step(dt float64, in Input) Events {
	var ev Events
	if s.mode != ModePlaying {
		return ev
	}
	dt, ok := s.checkDt(dt)
	if !ok {
		return ev
	}
	ev.Steps = 1

	cfg := &s.cfg
	world := cfg.World
	p := &s.player

	s.time += dt

	if cfg.Features.Blink {
		if p.BlinkTimer > 0 {
			p.BlinkTimer = math.Max(0, p.BlinkTimer-dt)
		}
		if s.time >= p.NextBlinkTime {
			p.BlinkTimer = blinkDuration
			p.NextBlinkTime = s.time + s.rng.Range(blinkGapMin, blinkGapMax)
		}
	}

	steer := Steer(cfg.Steering, world.Width, in)
	p.VX = float64(steer * cfg.Physics.MoveSpeed)
	p.VY += float64(cfg.Physics.Gravity * dt)
	p.X += float64(p.VX * dt)
	p.Y += float64(p.VY * dt)
	s.wrapPlayer()

	s.movePlatforms(dt)

	if p.VY > 0 && s.jetpackTime <= 0 {
		for i := range s.platforms {
			if Lands(*p, s.platforms[i], dt, cfg.Platforms.LandingInset) {
				s.land(&s.platforms[i], &ev)
				break
			}
		}
	}

	if p.Y < world.ScrollThreshold {
		s.scroll(world.ScrollThreshold - p.Y)
	}

	s.prunePlatforms(dt)
	s.ensurePlatforms()

	if p.Y > world.Height+world.FallMargin {
		s.endRun(EndFell, &ev)
	}

	s.decayTimers(dt)
	s.updatePuffs(dt)
	s.resolvePickups(&ev)
	s.resolveEnemies(dt, &ev)
	s.applyGusts(dt)
	s.updateStreaks(dt)

	s.ticks++
	if debugChecks {
		s.checkInvariants()
	}
	return ev
}

// Lands reports whether a player crossing downward onto pl this tick lands:
// the player's horizontal extent overlaps the platform inset by inset on
// both sides, and the feet went from at or above the platform top to at or
// below it, with the previous position taken as bottom - vy*dt.
func Lands(p Player, pl Platform, dt, inset float64) bool {
	bottom := p.Bottom()
	prevBottom := bottom - float64(p.VY*dt)
	top := pl.Y

	withinX := p.X+p.W/2 > pl.X+inset && p.X-p.W/2 < pl.X+pl.W-inset
	crossed := prevBottom <= top && bottom >= top
	return withinX && crossed
}

// checkDt validates a step length.
func (s *State) checkDt(dt float64) (float64, bool) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		violation("invalid dt %v", dt)
		return 0, false
	}
	if dt > s.cfg.World.MaxStep {
		violation("dt %v exceeds max step %v", dt, s.cfg.World.MaxStep)
		return s.cfg.World.MaxStep, true
	}
	return dt, true
}

// wrapPlayer teleports the player to the opposite side once its center
// passes half a body width beyond an edge.
func (s *State) wrapPlayer() {
	p := &s.player
	half := p.W / 2
	if p.X < -half {
		p.X = s.cfg.World.Width + half
	} else if p.X > s.cfg.World.Width+half {
		p.X = -half
	}
}

func (s *State) movePlatforms(dt float64) {
	width := s.cfg.World.Width
	wall := s.cfg.Platforms.WallMargin
	for i := range s.platforms {
		pl := &s.platforms[i]
		if pl.Kind != PlatformMoving {
			continue
		}
		pl.X += float64(pl.VX * dt)
		if pl.X <= wall || pl.X+pl.W >= width-wall {
			pl.VX = -pl.VX
			pl.X = core.ClampF(pl.X, wall, width-pl.W-wall)
		}
	}
}

// land bounces the player off pl.
func (s *State) land(pl *Platform, ev *Events) {
	cfg := &s.cfg
	p := &s.player

	jump := cfg.Physics.JumpVelocity
	if pl.SpringReady() {
		jump = cfg.Physics.SpringVelocity
		ev.SpringJumps++
	}
	if pl.HasSpring {
		pl.SpringUsed = true
		s.spawnStreaks(TintBoost)
	}
	p.VY = -jump
	p.SquashTimer = squashDuration
	s.spawnPuff(*pl)

	if pl.Breakable && !pl.Breaking {
		pl.Breaking = true
		pl.BreakTimer = cfg.Platforms.BreakTime
	}

	if cfg.Features.LandingScore {
		s.score.Add(s.score.Land())
	}
	ev.Landings++
}

// scroll shifts the world down by diff so the player stays at the
// threshold, and scores the distance climbed.
func (s *State) scroll(diff float64) {
	s.player.Y = s.cfg.World.ScrollThreshold
	for i := range s.platforms {
		s.platforms[i].Y += diff
	}
	for i := range s.collectibles {
		s.collectibles[i].Y += diff
	}
	for i := range s.enemies {
		s.enemies[i].Y += diff
	}
	for i := range s.gusts {
		s.gusts[i].Y += diff
	}
	for i := range s.puffs {
		s.puffs[i].Y += diff
	}
	for i := range s.streaks {
		s.streaks[i].Y += diff
	}
	s.score.Add(diff)
}

func (s *State) decayTimers(dt float64) {
	p := &s.player
	if p.SquashTimer > 0 {
		p.SquashTimer = math.Max(0, p.SquashTimer-dt)
	}

	s.score.Decay(dt)

	if s.jetpackTime > 0 {
		s.jetpackTime = math.Max(0, s.jetpackTime-dt)
		p.VY = -s.cfg.Physics.JetpackVelocity
		s.jetpackTrail -= dt
		if s.jetpackTrail <= 0 {
			s.spawnStreaks(TintJet)
			s.jetpackTrail = jetTrailPeriod
		}
	}

	if s.shieldTime > 0 {
		s.shieldTime = math.Max(0, s.shieldTime-dt)
	}
}

func (s *State) resolvePickups(ev *Events) {
	p := s.player
	limit := s.cfg.World.Height + collectiblePrune
	valid := s.collectibles[:0]
	for _, c := range s.collectibles {
		if math.Hypot(p.X-c.X, p.Y-c.Y) < c.R+float64(p.W*pickupReach) {
			s.collect(c, ev)
			continue
		}
		if c.Y < limit {
			valid = append(valid, c)
		}
	}
	s.collectibles = valid
}

func (s *State) collect(c Collectible, ev *Events) {
	pu := s.cfg.Powerups
	switch c.Kind {
	case CollectibleOrb:
		s.score.Add(pu.OrbScore)
		s.spawnSparkle(c.X, c.Y)
		ev.Orbs++
	case CollectibleJetpack:
		s.jetpackTime = pu.JetpackTime
		s.jetpackTrail = 0
		s.spawnStreaks(TintJet)
		ev.Jetpacks++
	case CollectibleShield:
		s.shieldTime = pu.ShieldTime
		s.spawnSparkle(c.X, c.Y)
		ev.Shields++
	}
}

func (s *State) resolveEnemies(dt float64, ev *Events) {
	width := s.cfg.World.Width
	limit := s.cfg.World.Height + enemyPrune
	valid := s.enemies[:0]
	for _, e := range s.enemies {
		e.X += float64(e.VX * dt)
		if e.X < enemyWall || e.X > width-enemyWall {
			e.VX = -e.VX
			e.X = core.ClampF(e.X, enemyWall, width-enemyWall)
		}

		p := s.player
		if math.Hypot(p.X-e.X, p.Y-e.Y) < e.R+float64(p.W*enemyReach) {
			switch {
			case s.jetpackTime > 0:
				s.spawnSparkle(e.X, e.Y)
				s.score.Add(s.cfg.Powerups.EnemyBonus)
				ev.EnemiesDefeated++
			case s.shieldTime > 0:
				s.shieldTime = 0
				s.spawnSparkle(e.X, e.Y)
				ev.ShieldBlocks++
			default:
				s.endRun(EndEnemy, ev)
			}
			continue
		}
		if e.Y < limit {
			valid = append(valid, e)
		}
	}
	s.enemies = valid
}

func (s *State) applyGusts(dt float64) {
	p := &s.player
	for _, g := range s.gusts {
		if g.Contains(p.X, p.Y) {
			p.X += float64(g.Force * dt)
		}
	}
	s.wrapPlayer()

	limit := s.cfg.World.Height + gustPrune
	valid := s.gusts[:0]
	for _, g := range s.gusts {
		if g.Y < limit {
			valid = append(valid, g)
		}
	}
	s.gusts = valid
}
