package sim

import "math"

// Row attachments. Offsets are measured upward from the platform top.
const (
	jetpackLift   = 42
	jetpackRadius = 20
	shieldLift    = 36
	shieldRadius  = 16
	orbLift       = 30
	orbRadius     = 14

	enemyMargin   = 40
	enemyLiftMin  = 80
	enemyLiftMax  = 160
	enemyRadius   = 18
	enemySpeedMin = 40
	enemySpeedMax = 90

	gustLeft     = 30
	gustRight    = 90
	gustLiftMin  = 40
	gustLiftMax  = 140
	gustWidthMin = 60
	gustWidthMax = 90
	gustTallMin  = 120
	gustTallMax  = 180
	gustForceMin = 120
	gustForceMax = 220
	gustReach    = 10
)

// Prune margins below the bottom edge.
const (
	collectiblePrune = 120
	enemyPrune       = 160
	gustPrune        = 200
)

// highestPlatformY returns the smallest platform y, or the base row when
// there are no platforms.
func (s *State) highestPlatformY() float64 {
	if len(s.platforms) == 0 {
		return s.cfg.World.Height - s.cfg.Platforms.BaseOffset
	}
	minY := s.platforms[0].Y
	for _, p := range s.platforms[1:] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	return minY
}

// ensurePlatforms spawns rows above the highest platform until there are at
// least MaxCount platforms and the highest one is at or above TopLimit.
func (s *State) ensurePlatforms() {
	pc := s.cfg.Platforms
	minY := s.highestPlatformY()
	for len(s.platforms) < pc.MaxCount || minY > pc.TopLimit {
		p := s.generateRow(minY)
		s.platforms = append(s.platforms, p)
		s.attachCollectible(p)
		s.attachEnemy(p)
		s.attachGust(p)
		minY = p.Y
	}
}

// generateRow creates the platform of the next row above highestY. The
// order of random draws is fixed: gap, kind, x, [speed, direction],
// spring, [breakable].
func (s *State) generateRow(highestY float64) Platform {
	pc := s.cfg.Platforms
	score := s.score.Floor()

	gap := s.rng.Range(pc.GapMin, s.diff.GapMax(pc.GapMax, score, s.ticks))
	p := Platform{
		Y: highestY - gap,
		W: pc.Width,
		H: pc.Height,
	}

	if s.rng.Float64() < pc.MovingChance {
		p.Kind = PlatformMoving
	}
	p.X = s.rng.Range(pc.SpawnMargin, s.cfg.World.Width-p.W-pc.SpawnMargin)
	if p.Kind == PlatformMoving {
		speed := s.rng.Range(
			s.diff.Speed(pc.SpeedMin, score, s.ticks),
			s.diff.Speed(pc.SpeedMax, score, s.ticks),
		)
		p.VX = speed * s.rng.Sign()
	}
	p.HasSpring = s.rng.Float64() < pc.SpringChance
	if p.Kind == PlatformStatic && s.cfg.Features.Breakables {
		p.Breakable = s.rng.Float64() < pc.BreakableChance
	}
	return p
}

// attachCollectible places at most one power-up above p from a single
// cumulative roll.
func (s *State) attachCollectible(p Platform) {
	if !s.cfg.Features.Collectibles {
		return
	}
	sp := s.cfg.Spawns
	cx := p.X + p.W/2
	roll := s.rng.Float64()
	switch {
	case roll < sp.JetpackRoll:
		s.collectibles = append(s.collectibles, Collectible{
			Kind: CollectibleJetpack, X: cx, Y: p.Y - jetpackLift, R: jetpackRadius,
		})
	case roll < sp.ShieldRoll:
		s.collectibles = append(s.collectibles, Collectible{
			Kind: CollectibleShield, X: cx, Y: p.Y - shieldLift, R: shieldRadius,
		})
	case roll < sp.OrbRoll:
		s.collectibles = append(s.collectibles, Collectible{
			Kind: CollectibleOrb, X: cx, Y: p.Y - orbLift, R: orbRadius,
		})
	}
}

func (s *State) attachEnemy(p Platform) {
	if !s.cfg.Features.Enemies {
		return
	}
	chance := s.diff.Chance(s.cfg.Spawns.EnemyChance, s.score.Floor(), s.ticks)
	if s.rng.Float64() > chance {
		return
	}
	x := s.rng.Range(enemyMargin, s.cfg.World.Width-enemyMargin)
	y := p.Y - s.rng.Range(enemyLiftMin, enemyLiftMax)
	vx := s.rng.Range(enemySpeedMin, enemySpeedMax) * s.rng.Sign()
	s.enemies = append(s.enemies, Enemy{X: x, Y: y, R: enemyRadius, VX: vx})
}

func (s *State) attachGust(p Platform) {
	if !s.cfg.Features.Gusts {
		return
	}
	chance := s.diff.Chance(s.cfg.Spawns.GustChance, s.score.Floor(), s.ticks)
	if s.rng.Float64() > chance {
		return
	}
	g := Gust{}
	g.X = s.rng.Range(gustLeft, s.cfg.World.Width-gustRight)
	g.Y = p.Y - s.rng.Range(gustLiftMin, gustLiftMax)
	g.W = s.rng.Range(gustWidthMin, gustWidthMax)
	g.H = s.rng.Range(gustTallMin, gustTallMax)
	g.Force = s.rng.Range(gustForceMin, gustForceMax) * s.rng.Sign()
	g.Phase = s.rng.Range(0, 2*math.Pi)
	s.gusts = append(s.gusts, g)
}

// prunePlatforms counts down breaking platforms, dropping them at zero, and
// drops platforms that scrolled below the bottom margin. Survivors keep
// their relative order.
func (s *State) prunePlatforms(dt float64) {
	limit := s.cfg.World.Height + s.cfg.Platforms.PruneMargin
	valid := s.platforms[:0]
	for _, p := range s.platforms {
		if p.Breaking {
			p.BreakTimer = math.Max(0, p.BreakTimer-dt)
			if p.BreakTimer == 0 {
				continue
			}
		}
		if p.Y < limit {
			valid = append(valid, p)
		}
	}
	s.platforms = valid
}
