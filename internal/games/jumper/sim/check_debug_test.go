//go:build simdebug

package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-jumper/internal/config"
)

func TestInvalidDtPanics(t *testing.T) {
	s := newPlaying(t, config.DefaultJumperConfig(), 7)
	defer func() {
		if recover() == nil {
			t.Error("Step(NaN) did not panic")
		}
	}()
	s.Step(math.NaN(), Input{})
}

func TestLargeDtPanics(t *testing.T) {
	s := newPlaying(t, config.DefaultJumperConfig(), 3)
	defer func() {
		if recover() == nil {
			t.Error("Step(5) did not panic")
		}
	}()
	s.Step(5, Input{})
}
