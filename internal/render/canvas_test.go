package render

import (
	"math"
	"testing"

	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// newSquareCanvas returns a 10x10 cell canvas over 40x40 units, so every
// cell is a 4x4 square.
func newSquareCanvas() *Canvas {
	return NewCanvas(core.NewScreen(10, 10), 40, 40)
}

func loadStrip(t *testing.T) *assets.Sprite {
	t.Helper()
	repo, err := assets.Parse([]byte(`
pixel: {width: 4, height: 4}
palette: {r: red, g: green, b: blue}
sprites:
  strip:
    art: ["abc"]
    paint: ["rgb"]
`))
	if err != nil {
		t.Fatal(err)
	}
	return repo.MustLoad("strip")
}

func TestDrawImageUnrotated(t *testing.T) {
	c := newSquareCanvas()
	c.DrawImage(loadStrip(t), 22, 22, 0)

	if got := c.Screen().Row(5); got != "    abc   " {
		t.Errorf("Row(5) = %q", got)
	}
	if got := c.Screen().GetCell(4, 5).Color; got != core.ColorRed {
		t.Errorf("color of 'a' = %v, expected red", got)
	}
}

func TestDrawImageRotated(t *testing.T) {
	c := newSquareCanvas()
	c.DrawImage(loadStrip(t), 22, 22, math.Pi/2)

	expected := map[[2]int]rune{
		{5, 4}: 'a',
		{5, 5}: 'b',
		{5, 6}: 'c',
		{4, 5}: ' ',
		{6, 5}: ' ',
	}
	for pos, r := range expected {
		if got := c.Screen().GetCell(pos[0], pos[1]).Rune; got != r {
			t.Errorf("GetCell(%d, %d) = %q, expected %q", pos[0], pos[1], got, r)
		}
	}
}

func TestDrawImageSkipsTransparent(t *testing.T) {
	repo, err := assets.Parse([]byte(`
pixel: {width: 4, height: 4}
palette: {r: red}
sprites:
  gap:
    art: ["# #"]
    paint: ["r r"]
`))
	if err != nil {
		t.Fatal(err)
	}

	c := newSquareCanvas()
	c.Background('.', core.ColorDefault)
	c.DrawImage(repo.MustLoad("gap"), 22, 22, 0)

	if got := c.Screen().Row(5); got != "....#.#..." {
		t.Errorf("Row(5) = %q", got)
	}
}

func TestDrawImageClipsAtEdges(t *testing.T) {
	c := newSquareCanvas()
	// Mostly off screen; must not panic
	c.DrawImage(loadStrip(t), -2, 2, 0.3)
	c.DrawImage(loadStrip(t), 41, 41, 0)
	c.DrawImage(nil, 10, 10, 0)
}

func TestDrawSegment(t *testing.T) {
	tests := []struct {
		name  string
		a, b  core.Vec2
		cells [][2]int
		rune  rune
	}{
		{"horizontal", core.V(2, 2), core.V(38, 2), [][2]int{{0, 0}, {5, 0}, {9, 0}}, '─'},
		{"vertical", core.V(2, 2), core.V(2, 38), [][2]int{{0, 0}, {0, 5}, {0, 9}}, '│'},
		{"falling diagonal", core.V(2, 2), core.V(38, 38), [][2]int{{0, 0}, {4, 4}, {9, 9}}, '╲'},
		{"rising diagonal", core.V(2, 38), core.V(38, 2), [][2]int{{0, 9}, {4, 5}, {9, 0}}, '╱'},
		{"single point", core.V(10, 10), core.V(10, 10), [][2]int{{2, 2}}, '•'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newSquareCanvas()
			c.DrawSegment(tc.a, tc.b, core.ColorOrange)
			for _, p := range tc.cells {
				got := c.Screen().GetCell(p[0], p[1])
				if got.Rune != tc.rune || got.Color != core.ColorOrange {
					t.Errorf("cell %v = %+v, expected orange %q", p, got, tc.rune)
				}
			}
		})
	}
}

func TestFillDisc(t *testing.T) {
	c := newSquareCanvas()
	c.FillDisc(core.V(20, 20), 6, '*', core.ColorYellow)

	if got := c.Screen().GetCell(4, 4).Rune; got != '*' {
		t.Errorf("center cell = %q, expected '*'", got)
	}
	if got := c.Screen().GetCell(0, 0).Rune; got != ' ' {
		t.Errorf("far cell = %q, expected blank", got)
	}

	c = newSquareCanvas()
	c.FillDisc(core.V(21, 21), 0.5, '+', core.ColorWhite)
	if got := c.Screen().GetCell(5, 5).Rune; got != '+' {
		t.Errorf("tiny disc should mark its cell, got %q", got)
	}
}

func TestWipe(t *testing.T) {
	tests := []struct {
		progress float64
		rows     int
	}{
		{0, 0},
		{0.5, 5},
		{0.51, 6},
		{1, 10},
		{2, 10},
	}

	for _, tc := range tests {
		c := newSquareCanvas()
		c.Wipe(tc.progress, '█', core.ColorWhite)
		covered := 0
		for row := 0; row < c.Rows(); row++ {
			if c.Screen().GetCell(0, row).Rune == '█' {
				covered++
			}
		}
		if covered != tc.rows {
			t.Errorf("Wipe(%v) covered %d rows, expected %d", tc.progress, covered, tc.rows)
		}
	}
}

func TestCanvasResize(t *testing.T) {
	c := newSquareCanvas()
	c.Resize(20, 5)

	if c.Cols() != 20 || c.Rows() != 5 {
		t.Fatalf("size = %dx%d, expected 20x5", c.Cols(), c.Rows())
	}
	if cs := c.Viewport().CellSize(); cs.X != 2 || cs.Y != 8 {
		t.Errorf("CellSize() = %v, expected (2, 8)", cs)
	}
}

func TestCanvasDrawBanner(t *testing.T) {
	c := NewCanvas(core.NewScreen(12, 5), 40, 40)
	c.Background('.', core.ColorDefault)
	c.DrawBanner("UP", core.ColorRed)

	expected := "............\n...┌────┐...\n...│ UP │...\n...└────┘...\n............"
	if got := c.Screen().String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if got := c.Screen().GetCell(3, 1).Color; got != core.ColorRed {
		t.Errorf("border color = %v, expected red", got)
	}
}

func TestCanvasDrawBannerWiderThanScreen(t *testing.T) {
	c := NewCanvas(core.NewScreen(6, 2), 40, 40)
	c.DrawBanner("TIME UP", core.ColorDefault)

	if got := c.Screen().Row(0); got != "┌─────" {
		t.Errorf("Row(0) = %q, expected the box pinned to the left edge", got)
	}
}
