package slicer

import (
	"testing"
	"time"

	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/render"
)

const physicsDT = 1.0 / 60

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestSession returns a started session that never spawns on its own.
func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	cfg := config.DefaultSlicerConfig()
	cfg.Spawn.Chance = 0
	return newTestSessionWith(t, cfg, 1)
}

func newTestSessionWith(t *testing.T, cfg config.SlicerConfig, seed int64) (*Session, *fakeClock) {
	t.Helper()
	repo, err := assets.NewRepository()
	if err != nil {
		t.Fatalf("assets.NewRepository() error: %v", err)
	}
	s, err := NewSession(cfg, repo, seed)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	s.SetClock(clock.Now)
	s.Start(0.2, 1)
	return s, clock
}

func newTestCanvas() *render.Canvas {
	return render.NewCanvas(core.NewScreen(80, 24), 320, 240)
}

func pressAt(x, y int) core.Frame {
	f := core.Frame{Alpha: 1, Input: core.NewInputFrame()}
	f.Input.Touch = core.Touch{Pressed: true, X: x, Y: y}
	return f
}

func released() core.Frame {
	return core.Frame{Alpha: 1, Input: core.NewInputFrame()}
}

// swipe drags the knife through the given points, one render tick each,
// and releases at the end.
func swipe(s *Session, c Canvas, points ...[2]int) {
	for _, p := range points {
		s.RenderTick(pressAt(p[0], p[1]), c)
	}
	s.RenderTick(released(), c)
}
