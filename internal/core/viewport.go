package core

import "math"

// Viewport maps the logical display (fixed width × height units, y down)
// onto a grid of terminal cells of any size.
type Viewport struct {
	World      Vec2 // logical display size
	Cols, Rows int  // terminal grid size
}

// NewViewport creates a viewport for a logical display of w × h units
// shown on a cols × rows cell grid.
func NewViewport(w, h float64, cols, rows int) Viewport {
	return Viewport{World: V(w, h), Cols: max(cols, 1), Rows: max(rows, 1)}
}

// CellSize returns the logical size of one cell.
func (v Viewport) CellSize() Vec2 {
	return V(v.World.X/float64(v.Cols), v.World.Y/float64(v.Rows))
}

// ToCell converts a logical position to the cell containing it.
func (v Viewport) ToCell(p Vec2) (int, int) {
	cs := v.CellSize()
	return int(math.Floor(p.X / cs.X)), int(math.Floor(p.Y / cs.Y))
}

// ToWorld converts a cell coordinate to the logical position of its center.
func (v Viewport) ToWorld(col, row int) Vec2 {
	cs := v.CellSize()
	return V((float64(col)+0.5)*cs.X, (float64(row)+0.5)*cs.Y)
}

// ClampWorld restricts p to the visible logical display.
func (v Viewport) ClampWorld(p Vec2) Vec2 {
	return V(ClampF(p.X, 0, v.World.X), ClampF(p.Y, 0, v.World.Y))
}
