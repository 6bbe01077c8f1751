package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
// It matches defaults/jumper.yaml and is used when the embedded file
// cannot be parsed.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: JumperWorld{
			Width:           480,
			Height:          800,
			ScrollThreshold: 320, // 40% of height
			FallMargin:      120,
			MaxStep:         0.033,
		},
		Physics: JumperPhysics{
			Gravity:         2200,
			MoveSpeed:       320,
			JumpVelocity:    900,
			SpringVelocity:  1350,
			LaunchFactor:    0.7,
			JetpackVelocity: 1200,
		},
		Player: JumperPlayer{
			Width:       62,
			Height:      68,
			StartOffset: 120,
		},
		Platforms: JumperPlatforms{
			Width:           110,
			Height:          22,
			GapMin:          70,
			GapMax:          130,
			MaxCount:        14,
			TopLimit:        -200,
			BaseOffset:      40,
			SpawnMargin:     20,
			WallMargin:      12,
			LandingInset:    6,
			PruneMargin:     140,
			MovingChance:    0.22,
			SpeedMin:        50,
			SpeedMax:        110,
			SpringChance:    0.15,
			BreakableChance: 0.2,
			BreakTime:       0.18,
		},
		Spawns: JumperSpawns{
			JetpackRoll: 0.06,
			ShieldRoll:  0.14,
			OrbRoll:     0.32,
			EnemyChance: 0.16,
			GustChance:  0.12,
		},
		Powerups: JumperPowerups{
			LandingScore: 20,
			ComboStep:    10,
			ComboWindow:  0.8,
			OrbScore:     150,
			EnemyBonus:   120,
			JetpackTime:  1.8,
			ShieldTime:   6,
		},
		Steering: JumperSteering{
			PointerDeadZone: 0.08,
			PointerDigital:  false,
			PointerDeadPx:   12,
			TiltDeadZone:    0.03,
			TiltExponent:    0.7,
			TiltGain:        1.9,
			TiltSmoothing:   0.25,
		},
		Features: JumperFeatures{
			Breakables:   true,
			Collectibles: true,
			Enemies:      true,
			Gusts:        true,
			LandingScore: true,
			Particles:    true,
			Blink:        true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				GapIncrease:      40,
				HazardMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}
