package sim

import (
	"math"

	"github.com/vovakirdan/sky-jumper/internal/config"
	"github.com/vovakirdan/sky-jumper/internal/core"
)

// Source selects which input device drives steering.
type Source int

const (
	SourceNone Source = iota
	SourcePointer
	SourceTilt
	SourceKeys
)

func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourcePointer:
		return "pointer"
	case SourceTilt:
		return "tilt"
	case SourceKeys:
		return "keys"
	default:
		return "unknown"
	}
}

// Input is the steering signal for one tick. Only the field matching
// Source is read.
type Input struct {
	Source   Source
	PointerX float64 // World x of the pointer
	Tilt     float64 // Device tilt, nominally [-1, 1]
	Left     bool
	Right    bool
}

// Steer maps an input to a steering value in [-1, 1].
func Steer(cfg config.JumperSteering, worldWidth float64, in Input) float64 {
	switch in.Source {
	case SourcePointer:
		center := worldWidth / 2
		if cfg.PointerDigital {
			delta := in.PointerX - center
			if math.Abs(delta) < cfg.PointerDeadPx {
				return 0
			}
			if delta > 0 {
				return 1
			}
			return -1
		}
		n := core.ClampF((in.PointerX-center)/(worldWidth/2), -1, 1)
		if math.Abs(n) < cfg.PointerDeadZone {
			return 0
		}
		return n
	case SourceTilt:
		raw := core.ClampF(in.Tilt, -1, 1)
		curved := sign(raw) * math.Pow(math.Abs(raw), cfg.TiltExponent)
		n := core.ClampF(float64(curved*cfg.TiltGain), -1, 1)
		if math.Abs(n) < cfg.TiltDeadZone {
			return 0
		}
		return n
	case SourceKeys:
		if in.Left && !in.Right {
			return -1
		}
		if in.Right && !in.Left {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// TiltFilter smooths raw accelerometer readings before they reach Steer.
type TiltFilter struct {
	Amount float64
	value  float64
}

// NewTiltFilter creates a filter moving toward each reading by amount.
func NewTiltFilter(amount float64) *TiltFilter {
	return &TiltFilter{Amount: amount}
}

// Update feeds one reading and returns the smoothed tilt.
func (f *TiltFilter) Update(raw float64) float64 {
	f.value = core.Lerp(f.value, core.ClampF(raw, -1, 1), f.Amount)
	return f.value
}

// Value returns the current smoothed tilt.
func (f *TiltFilter) Value() float64 {
	return f.value
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
