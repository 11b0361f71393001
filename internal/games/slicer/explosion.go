package slicer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// minPhase keeps zero-length phases from finishing before they start.
const minPhase = 0.01

// Explosion is the bomb sequence: a burst growing out of the bomb, then a
// wipe covering the screen. It is driven by the seconds since the bomb was
// cut, so each frame draws whatever phase that time falls in.
type Explosion struct {
	origin   core.Vec2
	burst    *gween.Tween
	wipe     *gween.Tween
	burstDur float64
}

func newExplosion(origin core.Vec2, cfg config.RoundConfig) *Explosion {
	burstDur := max(cfg.Burst, minPhase)
	wipeDur := max(cfg.Wipe, minPhase)
	return &Explosion{
		origin:   origin,
		burst:    gween.New(0, float32(cfg.BurstSize), float32(burstDur), ease.OutCubic),
		wipe:     gween.New(0, 1, float32(wipeDur), ease.InQuad),
		burstDur: burstDur,
	}
}

// Origin returns where the bomb was cut.
func (e *Explosion) Origin() core.Vec2 {
	return e.origin
}

// At returns the burst radius and wipe progress (0 to 1) at t seconds into
// the sequence, and whether the sequence has finished.
func (e *Explosion) At(t float64) (radius, wipe float64, done bool) {
	r, burstDone := e.burst.Set(float32(t))
	if !burstDone {
		return float64(r), 0, false
	}
	w, wipeDone := e.wipe.Set(float32(t - e.burstDur))
	return float64(r), float64(w), wipeDone
}

// draw renders the sequence at t seconds. The burst flickers through the
// rainbow palette.
func (e *Explosion) draw(c Canvas, t float64) bool {
	t = max(t, 0)
	radius, wipe, done := e.At(t)
	color := core.Rainbow[int(t*20)%len(core.Rainbow)]
	c.FillDisc(e.origin, radius, '*', color)
	if wipe > 0 {
		c.Wipe(wipe, '█', core.ColorWhite)
	}
	return done
}
