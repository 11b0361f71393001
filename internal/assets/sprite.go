package assets

import (
	"math"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// Sprite is a loaded rune-art image. Pixels with a zero rune are transparent.
// Each pixel covers PixelW × PixelH logical display units.
type Sprite struct {
	Name   string
	W, H   int
	PixelW float64
	PixelH float64

	pixels []core.Cell
}

// At returns the pixel at (x, y) and whether it is opaque.
func (s *Sprite) At(x, y int) (core.Cell, bool) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return core.Cell{}, false
	}
	c := s.pixels[y*s.W+x]
	return c, c.Rune != 0
}

// Size returns the sprite's extent in logical units.
func (s *Sprite) Size() core.Vec2 {
	return core.V(float64(s.W)*s.PixelW, float64(s.H)*s.PixelH)
}

// Radius returns half the sprite's diagonal, the radius of the circle that
// contains the sprite at any rotation.
func (s *Sprite) Radius() float64 {
	size := s.Size()
	return math.Hypot(size.X, size.Y) / 2
}

// half returns a copy of s with everything outside columns [from, to)
// made transparent.
func (s *Sprite) half(name string, from, to int) *Sprite {
	h := &Sprite{
		Name:   name,
		W:      s.W,
		H:      s.H,
		PixelW: s.PixelW,
		PixelH: s.PixelH,
		pixels: make([]core.Cell, len(s.pixels)),
	}
	for y := 0; y < s.H; y++ {
		for x := from; x < to; x++ {
			h.pixels[y*s.W+x] = s.pixels[y*s.W+x]
		}
	}
	return h
}
