// Package config provides YAML-based game configuration loading and
// difficulty management for the jumper.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// JumperConfig contains all configuration for the jumper simulation.
type JumperConfig struct {
	World      JumperWorld      `yaml:"world"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Spawns     JumperSpawns     `yaml:"spawns"`
	Powerups   JumperPowerups   `yaml:"powerups"`
	Steering   JumperSteering   `yaml:"steering"`
	Features   JumperFeatures   `yaml:"features"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperWorld defines the simulated playfield in world pixels.
type JumperWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ScrollThreshold float64 `yaml:"scroll_threshold"` // Player y above this scrolls the world
	FallMargin      float64 `yaml:"fall_margin"`      // Run ends once player y > height + fall_margin
	MaxStep         float64 `yaml:"max_step"`         // Largest dt accepted by one step, in seconds
}

// JumperPhysics defines kinematic constants, in pixels and seconds.
type JumperPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	MoveSpeed       float64 `yaml:"move_speed"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	SpringVelocity  float64 `yaml:"spring_velocity"`
	LaunchFactor    float64 `yaml:"launch_factor"` // Fraction of jump velocity given at run start
	JetpackVelocity float64 `yaml:"jetpack_velocity"`
}

// JumperPlayer defines the player's body and spawn point.
type JumperPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the bottom edge
}

// JumperPlatforms defines platform generation and collision parameters.
type JumperPlatforms struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GapMin          float64 `yaml:"gap_min"`
	GapMax          float64 `yaml:"gap_max"`
	MaxCount        int     `yaml:"max_count"`
	TopLimit        float64 `yaml:"top_limit"`   // Highest platform must sit at or above this y
	BaseOffset      float64 `yaml:"base_offset"` // First row is generated below height - base_offset
	SpawnMargin     float64 `yaml:"spawn_margin"`
	WallMargin      float64 `yaml:"wall_margin"` // Moving platforms bounce at this inset
	LandingInset    float64 `yaml:"landing_inset"`
	PruneMargin     float64 `yaml:"prune_margin"`
	MovingChance    float64 `yaml:"moving_chance"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	SpringChance    float64 `yaml:"spring_chance"`
	BreakableChance float64 `yaml:"breakable_chance"`
	BreakTime       float64 `yaml:"break_time"`
}

// JumperSpawns defines per-row attachment probabilities.
// Collectible thresholds are cumulative: a single roll below jetpack_roll
// yields a jetpack, below shield_roll a shield, below orb_roll an orb.
type JumperSpawns struct {
	JetpackRoll float64 `yaml:"jetpack_roll"`
	ShieldRoll  float64 `yaml:"shield_roll"`
	OrbRoll     float64 `yaml:"orb_roll"`
	EnemyChance float64 `yaml:"enemy_chance"`
	GustChance  float64 `yaml:"gust_chance"`
}

// JumperPowerups defines scoring and power-up timings.
type JumperPowerups struct {
	LandingScore float64 `yaml:"landing_score"`
	ComboStep    float64 `yaml:"combo_step"`
	ComboWindow  float64 `yaml:"combo_window"`
	OrbScore     float64 `yaml:"orb_score"`
	EnemyBonus   float64 `yaml:"enemy_bonus"`
	JetpackTime  float64 `yaml:"jetpack_time"`
	ShieldTime   float64 `yaml:"shield_time"`
}

// JumperSteering defines how raw input becomes a steering value.
type JumperSteering struct {
	PointerDeadZone float64 `yaml:"pointer_dead_zone"` // Fraction of half width
	PointerDigital  bool    `yaml:"pointer_digital"`   // Full speed left or right instead of proportional
	PointerDeadPx   float64 `yaml:"pointer_dead_px"`   // Dead zone in pixels when digital
	TiltDeadZone    float64 `yaml:"tilt_dead_zone"`
	TiltExponent    float64 `yaml:"tilt_exponent"`
	TiltGain        float64 `yaml:"tilt_gain"`
	TiltSmoothing   float64 `yaml:"tilt_smoothing"`
}

// JumperFeatures toggles the systems that distinguish the rulesets.
type JumperFeatures struct {
	Breakables   bool `yaml:"breakables"`
	Collectibles bool `yaml:"collectibles"`
	Enemies      bool `yaml:"enemies"`
	Gusts        bool `yaml:"gusts"`
	LandingScore bool `yaml:"landing_score"`
	Particles    bool `yaml:"particles"`
	Blink        bool `yaml:"blink"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to moving platform speed at max difficulty
	GapIncrease      float64 `yaml:"gap_increase"`      // Added to gap_max at max difficulty
	HazardMultiplier float64 `yaml:"hazard_multiplier"` // Added to enemy and gust chances at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// Ruleset names a bundle of feature toggles.
type Ruleset string

const (
	// RulesetPro enables every system: hazards, power-ups, landing combos, particles.
	RulesetPro Ruleset = "pro"
	// RulesetClassic plays platforms only, scored by climb distance.
	RulesetClassic Ruleset = "classic"
)

// Rulesets lists the known rulesets, default first.
func Rulesets() []Ruleset {
	return []Ruleset{RulesetPro, RulesetClassic}
}

// ApplyRuleset switches features (and classic pointer handling) on cfg.
func ApplyRuleset(cfg *JumperConfig, name string) error {
	switch Ruleset(strings.ToLower(name)) {
	case RulesetPro:
		cfg.Features = JumperFeatures{
			Breakables:   true,
			Collectibles: true,
			Enemies:      true,
			Gusts:        true,
			LandingScore: true,
			Particles:    true,
			Blink:        true,
		}
		cfg.Steering.PointerDigital = false
	case RulesetClassic:
		cfg.Features = JumperFeatures{}
		cfg.Steering.PointerDigital = true
	default:
		return fmt.Errorf("%w: unknown ruleset %q", ErrInvalidConfig, name)
	}
	return nil
}

// Validate checks that the configuration can drive a simulation.
func (c JumperConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		add("world size must be positive, got %gx%g", w.Width, w.Height)
	}
	if w.ScrollThreshold <= 0 || w.ScrollThreshold >= w.Height {
		add("scroll_threshold %g must be inside the world height", w.ScrollThreshold)
	}
	if w.MaxStep <= 0 {
		add("max_step must be positive")
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player size must be positive")
	}
	if c.Physics.Gravity <= 0 || c.Physics.JumpVelocity <= 0 {
		add("gravity and jump_velocity must be positive")
	}

	p := c.Platforms
	if p.Width <= 0 || p.Height <= 0 {
		add("platform size must be positive")
	}
	if p.Width+2*p.SpawnMargin > w.Width {
		add("platform width %g plus margins does not fit the world", p.Width)
	}
	if p.Width+2*p.WallMargin > w.Width {
		add("platform width %g plus wall margins does not fit the world", p.Width)
	}
	if p.GapMin <= 0 || p.GapMax < p.GapMin {
		add("gap range [%g, %g] is invalid", p.GapMin, p.GapMax)
	}
	if p.MaxCount <= 0 {
		add("max_count must be positive")
	}
	if p.SpeedMax < p.SpeedMin {
		add("platform speed range [%g, %g] is invalid", p.SpeedMin, p.SpeedMax)
	}

	s := c.Spawns
	if !(0 <= s.JetpackRoll && s.JetpackRoll <= s.ShieldRoll && s.ShieldRoll <= s.OrbRoll && s.OrbRoll <= 1) {
		add("collectible rolls must ascend within [0, 1]")
	}
	chances := []struct {
		name string
		v    float64
	}{
		{"moving_chance", p.MovingChance},
		{"spring_chance", p.SpringChance},
		{"breakable_chance", p.BreakableChance},
		{"enemy_chance", s.EnemyChance},
		{"gust_chance", s.GustChance},
	}
	for _, ch := range chances {
		if ch.v < 0 || ch.v > 1 {
			add("%s %g must be within [0, 1]", ch.name, ch.v)
		}
	}

	if c.Steering.TiltExponent <= 0 {
		add("tilt_exponent must be positive")
	}
	if c.Steering.TiltSmoothing < 0 || c.Steering.TiltSmoothing > 1 {
		add("tilt_smoothing must be within [0, 1]")
	}

	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		add("unknown progression type %q", c.Difficulty.Progression.Type)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
