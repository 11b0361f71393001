package slicer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fruit-slicer/internal/config"
)

func TestSpawnerChanceBounds(t *testing.T) {
	cfg := config.DefaultSlicerConfig()

	never := NewSpawner(rand.New(rand.NewSource(1)), cfg)
	for i := 0; i < 1000; i++ {
		if _, ok := never.Roll(0, 0.5); ok {
			t.Fatal("Roll(0) spawned")
		}
	}

	always := NewSpawner(rand.New(rand.NewSource(1)), cfg)
	for i := 0; i < 1000; i++ {
		if _, ok := always.Roll(1, 0.5); !ok {
			t.Fatal("Roll(1) did not spawn")
		}
	}
}

func TestSpawnerPlans(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	s := NewSpawner(rand.New(rand.NewSource(42)), cfg)

	w, h := cfg.Display.Width, cfg.Display.Height
	for i := 0; i < 2000; i++ {
		p, _ := s.Roll(1, 0.2)

		if p.pos.X < cfg.Spawn.XMargin || p.pos.X > w-cfg.Spawn.XMargin {
			t.Fatalf("spawn x = %v outside margins", p.pos.X)
		}
		if p.pos.Y != h+cfg.Spawn.BottomMargin {
			t.Fatalf("spawn y = %v, expected %v", p.pos.Y, h+cfg.Spawn.BottomMargin)
		}
		if -p.impulse.Y < cfg.Throw.MinVertical || -p.impulse.Y > cfg.Throw.MaxVertical {
			t.Fatalf("vertical impulse %v out of range", p.impulse.Y)
		}
		if p.pos.X > w/2 && p.impulse.X > 0 || p.pos.X <= w/2 && p.impulse.X < 0 {
			t.Fatalf("throw from x=%v pushes away from center (%v)", p.pos.X, p.impulse.X)
		}
		if !p.kind.Cuttable() {
			t.Fatalf("spawned non-cuttable kind %v", p.kind)
		}
	}
}

func TestSpawnerBombProbability(t *testing.T) {
	cfg := config.DefaultSlicerConfig()

	tests := []struct {
		name     string
		p        float64
		minBombs int
		maxBombs int
	}{
		{"no bombs", 0, 0, 0},
		{"only bombs", 1, 1000, 1000},
		{"some bombs", 0.25, 180, 320},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(rand.New(rand.NewSource(3)), cfg)
			bombs := 0
			for i := 0; i < 1000; i++ {
				p, _ := s.Roll(1, tc.p)
				if p.kind == KindBomb {
					bombs++
				}
			}
			if bombs < tc.minBombs || bombs > tc.maxBombs {
				t.Errorf("%d bombs in 1000 throws, expected [%d, %d]", bombs, tc.minBombs, tc.maxBombs)
			}
		})
	}
}

func TestSpawnIsDeterministic(t *testing.T) {
	cfg := config.DefaultSlicerConfig()
	cfg.Spawn.Chance = 0.2

	run := func() []*Throwable {
		s, _ := newTestSessionWith(t, cfg, 99)
		var all []*Throwable
		for i := 0; i < 300; i++ {
			s.PhysicsTick(float64(i)*physicsDT, physicsDT)
		}
		for k := Kind(0); k < kindCount; k++ {
			all = append(all, s.Live(k)...)
		}
		return all
	}

	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("expected some spawns")
	}
	if len(a) != len(b) {
		t.Fatalf("same seed spawned %d and %d objects", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind() != b[i].Kind() || a[i].Body().Position() != b[i].Body().Position() {
			t.Fatalf("object %d differs: %v at %v vs %v at %v", i,
				a[i].Kind(), a[i].Body().Position(), b[i].Kind(), b[i].Body().Position())
		}
	}
}
