package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellKeepsColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(3, 4, '●', ColorRed)

	got := s.GetCell(3, 4)
	if got.Rune != '●' || got.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected red ●", got)
	}

	// Out of bounds writes are dropped, reads are blank
	s.SetColor(-1, 0, 'x', ColorRed)
	s.SetColor(0, 10, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got != blankCell {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenFillColorAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillColor('#', ColorGreen)

	if got := s.GetCell(4, 4); got.Rune != '#' || got.Color != ColorGreen {
		t.Errorf("after FillColor got %+v", got)
	}

	s.Clear()
	if got := s.GetCell(2, 2); got != blankCell {
		t.Errorf("after Clear got %+v, expected blank", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 3)
	s.DrawTextColor(5, 1, "Score", ColorYellow)

	if got := s.Row(1); got != "     Sco" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(5, 1).Color != ColorYellow {
		t.Error("DrawTextColor should color each rune")
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(7, 3)
	if got := s.Bounds(); got != NewRect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorCyan)

	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if got := s.GetCell(5, 3).Color; got != ColorCyan {
		t.Errorf("corner color = %v, expected cyan", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawRect(NewRect(1, 0, 2, 2), '#', ColorGreen)
	s.DrawRect(NewRect(4, 1, 5, 5), '=', ColorDefault)

	expected := " ##   \n ## ==\n    =="
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := s.GetCell(2, 1).Color; got != ColorGreen {
		t.Errorf("fill color = %v, expected green", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Fruit", ColorDefault)

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("after shrink dimensions = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Frui" {
		t.Errorf("Row(0) after shrink = %q", got)
	}

	s.Resize(12, 5)
	if got := s.Row(0); !strings.HasPrefix(got, "Frui ") {
		t.Errorf("Row(0) after grow = %q", got)
	}
	if got := s.Row(4); got != strings.Repeat(" ", 12) {
		t.Errorf("new rows should be blank, got %q", got)
	}

	if got := s.Row(-1); got != strings.Repeat(" ", 12) {
		t.Errorf("out of bounds Row = %q", got)
	}
}
