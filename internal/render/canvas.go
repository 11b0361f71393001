// Package render draws game objects given in logical display units onto a
// terminal cell screen.
package render

import (
	"math"

	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// Canvas draws onto a core.Screen through a viewport that maps logical
// display coordinates to cells.
type Canvas struct {
	screen *core.Screen
	vp     core.Viewport
}

// NewCanvas creates a canvas over screen for a logical display of w × h units.
func NewCanvas(screen *core.Screen, w, h float64) *Canvas {
	return &Canvas{
		screen: screen,
		vp:     core.NewViewport(w, h, screen.Width(), screen.Height()),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen { return c.screen }

// Viewport returns the logical to cell mapping.
func (c *Canvas) Viewport() core.Viewport { return c.vp }

// Cols returns the screen width in cells.
func (c *Canvas) Cols() int { return c.screen.Width() }

// Rows returns the screen height in cells.
func (c *Canvas) Rows() int { return c.screen.Height() }

// Resize follows a terminal resize.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.vp = core.NewViewport(c.vp.World.X, c.vp.World.Y, c.screen.Width(), c.screen.Height())
}

// Background fills every cell.
func (c *Canvas) Background(ch rune, color core.Color) {
	c.screen.FillColor(ch, color)
}

// DrawImage draws img centered at (x, y), rotated by theta radians about its
// center. Transparent pixels leave the screen untouched.
func (c *Canvas) DrawImage(img *assets.Sprite, x, y, theta float64) {
	if img == nil {
		return
	}
	center := core.V(x, y)
	r := img.Radius()

	col0, row0 := c.vp.ToCell(center.SubScalar(r))
	col1, row1 := c.vp.ToCell(center.AddScalar(r))
	col0, row0 = max(col0, 0), max(row0, 0)
	col1, row1 = min(col1, c.Cols()-1), min(row1, c.Rows()-1)

	halfW, halfH := float64(img.W)/2, float64(img.H)/2
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			// Sample the sprite pixel under this cell's center.
			local := c.vp.ToWorld(col, row).Sub(center).Rotate(-theta)
			px := int(math.Floor(local.X/img.PixelW + halfW))
			py := int(math.Floor(local.Y/img.PixelH + halfH))
			if cell, ok := img.At(px, py); ok {
				c.screen.SetCell(col, row, cell)
			}
		}
	}
}

// DrawSegment draws a straight line from a to b with a rune matching its slope.
func (c *Canvas) DrawSegment(a, b core.Vec2, color core.Color) {
	x0, y0 := c.vp.ToCell(a)
	x1, y1 := c.vp.ToCell(b)
	ch := slopeRune(x1-x0, y1-y0)

	dx, dy := core.Abs(x1-x0), -core.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.screen.SetColor(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// slopeRune picks a line character for a step of (dx, dy) cells, y down.
func slopeRune(dx, dy int) rune {
	adx, ady := core.Abs(dx), core.Abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '•'
	case ady*2 < adx:
		return '─'
	case adx*2 < ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// FillDisc fills every cell whose center lies within r of center.
func (c *Canvas) FillDisc(center core.Vec2, r float64, ch rune, color core.Color) {
	col0, row0 := c.vp.ToCell(center.SubScalar(r))
	col1, row1 := c.vp.ToCell(center.AddScalar(r))
	col0, row0 = max(col0, 0), max(row0, 0)
	col1, row1 = min(col1, c.Cols()-1), min(row1, c.Rows()-1)

	hit := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if core.PointInCircle(c.vp.ToWorld(col, row), center, r) {
				c.screen.SetColor(col, row, ch, color)
				hit = true
			}
		}
	}
	// A disc smaller than a cell still marks its cell.
	if !hit {
		col, row := c.vp.ToCell(center)
		c.screen.SetColor(col, row, ch, color)
	}
}

// DrawText writes text at a cell position.
func (c *Canvas) DrawText(col, row int, text string, color core.Color) {
	c.screen.DrawTextColor(col, row, text, color)
}

// DrawTextRight writes text so that it ends at the last column.
func (c *Canvas) DrawTextRight(row int, text string, color core.Color) {
	c.screen.DrawTextColor(c.Cols()-len([]rune(text)), row, text, color)
}

// DrawBanner draws text in a boxed, blanked panel in the middle of the screen.
func (c *Canvas) DrawBanner(text string, color core.Color) {
	box := c.screen.Bounds().CenteredIn(len([]rune(text))+4, 3)
	c.screen.DrawRect(box, ' ', core.ColorDefault)
	c.screen.DrawBox(box, color)
	c.screen.DrawTextColor(box.X+2, box.Y+1, text, color)
}

// Wipe covers the top fraction of rows, progress in [0, 1].
func (c *Canvas) Wipe(progress float64, ch rune, color core.Color) {
	rows := int(math.Ceil(core.ClampF(progress, 0, 1) * float64(c.Rows())))
	for row := 0; row < rows; row++ {
		for col := 0; col < c.Cols(); col++ {
			c.screen.SetColor(col, row, ch, color)
		}
	}
}
