package slicer

import (
	"math/rand"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// spawnPlan describes one object to throw.
type spawnPlan struct {
	kind    Kind
	pos     core.Vec2
	impulse core.Vec2
}

// Spawner decides, once per physics step, whether to throw an object and
// how. All randomness comes from its own source so a seed reproduces the
// same sequence.
type Spawner struct {
	rng    *rand.Rand
	spawn  config.SpawnConfig
	throw  config.ThrowConfig
	width  float64
	height float64
}

// NewSpawner creates a spawner for a display of the configured size.
func NewSpawner(rng *rand.Rand, cfg config.SlicerConfig) *Spawner {
	return &Spawner{
		rng:    rng,
		spawn:  cfg.Spawn,
		throw:  cfg.Throw,
		width:  cfg.Display.Width,
		height: cfg.Display.Height,
	}
}

// Roll draws once against chance and, on success, plans a throw from just
// below the bottom edge. bombProbability is the share of throws that are
// bombs; the rest pick uniformly among the fruit.
func (s *Spawner) Roll(chance, bombProbability float64) (spawnPlan, bool) {
	if s.rng.Float64() >= chance {
		return spawnPlan{}, false
	}

	x := s.spawn.XMargin + s.rng.Float64()*(s.width-2*s.spawn.XMargin)
	pos := core.V(x, s.height+s.spawn.BottomMargin)

	kind := fruitKinds[s.rng.Intn(len(fruitKinds))]
	if s.rng.Float64() < bombProbability {
		kind = KindBomb
	}

	// Push toward the middle so throws stay on screen.
	h := lerp(s.throw.MinHorizontal, s.throw.MaxHorizontal, s.rng.Float64())
	if x > s.width/2 {
		h = -h
	}
	v := lerp(s.throw.MinVertical, s.throw.MaxVertical, s.rng.Float64())

	return spawnPlan{
		kind:    kind,
		pos:     pos,
		impulse: core.V(h, -v),
	}, true
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
