package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledReturnsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultJumperConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(110, 50000, 0); got != 110 {
		t.Errorf("Speed = %v, expected base 110", got)
	}
	if got := d.GapMax(130, 50000, 0); got != 130 {
		t.Errorf("GapMax = %v, expected base 130", got)
	}
	if got := d.Chance(0.16, 50000, 0); got != 0.16 {
		t.Errorf("Chance = %v, expected base 0.16", got)
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, GapIncrease: 40, HazardMultiplier: 1},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	if got := d.GapMax(130, 1000, 0); got != 170 {
		t.Errorf("GapMax at max = %v, expected 170", got)
	}
	if got := d.Speed(100, 1000, 0); got != 200 {
		t.Errorf("Speed at max = %v, expected 200", got)
	}
	if got := d.Chance(0.8, 1000, 0); got != 1 {
		t.Errorf("Chance should cap at 1, got %v", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(0, 300); got != 0.5 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}

	d.SetEnabled(false)
	d.SetInitialLevel(1.5)
	if got := d.Level(0, 300); got != 1 {
		t.Errorf("disabled level should be the clamped initial level, got %v", got)
	}
}
