package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(320, 240, 80, 24)

	cs := vp.CellSize()
	if cs.X != 4 || cs.Y != 10 {
		t.Fatalf("CellSize() = %v, expected (4, 10)", cs)
	}

	for _, cell := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		p := vp.ToWorld(cell[0], cell[1])
		col, row := vp.ToCell(p)
		if col != cell[0] || row != cell[1] {
			t.Errorf("ToCell(ToWorld(%d, %d)) = (%d, %d)", cell[0], cell[1], col, row)
		}
	}
}

func TestViewportClampWorld(t *testing.T) {
	vp := NewViewport(320, 240, 80, 24)

	tests := []struct {
		name     string
		p        Vec2
		expected Vec2
	}{
		{"inside", V(10, 10), V(10, 10)},
		{"left", V(-5, 10), V(0, 10)},
		{"below", V(100, 500), V(100, 240)},
		{"corner", V(400, -1), V(320, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.ClampWorld(tc.p); got != tc.expected {
				t.Errorf("ClampWorld(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestViewportDegenerateGrid(t *testing.T) {
	vp := NewViewport(320, 240, 0, -3)
	if vp.Cols != 1 || vp.Rows != 1 {
		t.Errorf("grid = %dx%d, expected at least 1x1", vp.Cols, vp.Rows)
	}
}
