package slicer

import (
	"testing"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

func TestExplosionPhases(t *testing.T) {
	cfg := config.RoundConfig{Burst: 1, Wipe: 0.5, BurstSize: 100}
	e := newExplosion(core.V(50, 50), cfg)

	tests := []struct {
		name      string
		t         float64
		minRadius float64
		maxRadius float64
		wipe      bool
		done      bool
	}{
		{"start", 0, 0, 0, false, false},
		{"mid burst", 0.5, 1, 99.99, false, false},
		{"wiping", 1.25, 100, 100, true, false},
		{"finished", 2, 100, 100, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, w, done := e.At(tc.t)
			if r < tc.minRadius || r > tc.maxRadius {
				t.Errorf("radius = %v, expected [%v, %v]", r, tc.minRadius, tc.maxRadius)
			}
			if (w > 0) != tc.wipe {
				t.Errorf("wipe = %v, expected wiping=%v", w, tc.wipe)
			}
			if done != tc.done {
				t.Errorf("done = %v, expected %v", done, tc.done)
			}
		})
	}

	// Time-driven: going back in time gives the earlier frame again.
	if _, w, done := e.At(0.2); w != 0 || done {
		t.Errorf("At(0.2) after finishing = wipe %v done %v", w, done)
	}
}

func TestExplosionZeroDurations(t *testing.T) {
	e := newExplosion(core.V(0, 0), config.RoundConfig{BurstSize: 10})
	if _, _, done := e.At(1); !done {
		t.Error("zero-length phases should finish")
	}
}
