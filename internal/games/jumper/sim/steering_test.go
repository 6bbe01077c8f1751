package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
)

func TestSteer(t *testing.T) {
	analog := config.DefaultJumperConfig().Steering
	digital := analog
	digital.PointerDigital = true

	tests := []struct {
		name     string
		cfg      config.JumperSteering
		in       Input
		expected float64
	}{
		{"no source", analog, Input{Left: true}, 0},
		{"pointer center", analog, Input{Source: SourcePointer, PointerX: 240}, 0},
		{"pointer inside dead zone", analog, Input{Source: SourcePointer, PointerX: 252}, 0},
		{"pointer half right", analog, Input{Source: SourcePointer, PointerX: 360}, 0.5},
		{"pointer half left", analog, Input{Source: SourcePointer, PointerX: 120}, -0.5},
		{"pointer past edge", analog, Input{Source: SourcePointer, PointerX: 900}, 1},
		{"pointer left edge", analog, Input{Source: SourcePointer, PointerX: 0}, -1},
		{"digital inside dead zone", digital, Input{Source: SourcePointer, PointerX: 251}, 0},
		{"digital at dead zone", digital, Input{Source: SourcePointer, PointerX: 252}, 1},
		{"digital left", digital, Input{Source: SourcePointer, PointerX: 200}, -1},
		{"tilt below dead zone", analog, Input{Source: SourceTilt, Tilt: 0.001}, 0},
		{"tilt full", analog, Input{Source: SourceTilt, Tilt: 1}, 1},
		{"tilt saturates", analog, Input{Source: SourceTilt, Tilt: -0.5}, -1},
		{"tilt out of range", analog, Input{Source: SourceTilt, Tilt: 7}, 1},
		{"keys left", analog, Input{Source: SourceKeys, Left: true}, -1},
		{"keys right", analog, Input{Source: SourceKeys, Right: true}, 1},
		{"keys both", analog, Input{Source: SourceKeys, Left: true, Right: true}, 0},
		{"keys none", analog, Input{Source: SourceKeys}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Steer(tt.cfg, 480, tt.in); got != tt.expected {
				t.Errorf("Steer = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSteerTiltCurve(t *testing.T) {
	cfg := config.DefaultJumperConfig().Steering
	for _, raw := range []float64{0.01, 0.1, 0.2, -0.2} {
		expected := math.Copysign(math.Pow(math.Abs(raw), cfg.TiltExponent)*cfg.TiltGain, raw)
		got := Steer(cfg, 480, Input{Source: SourceTilt, Tilt: raw})
		if math.Abs(got-expected) > 1e-12 {
			t.Errorf("tilt %v: Steer = %v, expected %v", raw, got, expected)
		}
	}
}

func TestTiltFilter(t *testing.T) {
	f := NewTiltFilter(0.25)
	steps := []struct {
		raw, expected float64
	}{
		{1, 0.25},
		{1, 0.4375},
		{5, 0.578125}, // clamped to 1
	}
	for i, st := range steps {
		if got := f.Update(st.raw); got != st.expected {
			t.Errorf("update %d = %v, expected %v", i, got, st.expected)
		}
	}
	if f.Value() != 0.578125 {
		t.Errorf("Value = %v", f.Value())
	}
}
