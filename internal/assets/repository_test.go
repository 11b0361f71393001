package assets

import (
	"errors"
	"testing"
)

var fruitNames = []string{"apple", "bananas", "orange", "cherries", "strawberry", "pineapple"}

func TestEmbeddedSheetLoads(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatalf("NewRepository() error: %v", err)
	}

	for _, name := range append(fruitNames, "bomb") {
		t.Run(name, func(t *testing.T) {
			s, err := repo.LoadImage(name)
			if err != nil {
				t.Fatalf("LoadImage(%q) error: %v", name, err)
			}
			if s.W == 0 || s.H == 0 {
				t.Errorf("sprite %q is empty", name)
			}
			if s.Radius() <= 0 {
				t.Errorf("sprite %q radius = %v", name, s.Radius())
			}
		})
	}
}

func TestLoadImageIsCached(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"apple", "apple-left", "apple-right"} {
		a, err := repo.LoadImage(name)
		if err != nil {
			t.Fatalf("LoadImage(%q) error: %v", name, err)
		}
		b, _ := repo.LoadImage(name)
		if a != b {
			t.Errorf("LoadImage(%q) returned different handles", name)
		}
	}
}

func TestHalvesSplitTheSprite(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range fruitNames {
		t.Run(name, func(t *testing.T) {
			base := repo.MustLoad(name)
			left := repo.MustLoad(name + LeftSuffix)
			right := repo.MustLoad(name + RightSuffix)

			for y := 0; y < base.H; y++ {
				for x := 0; x < base.W; x++ {
					bc, bok := base.At(x, y)
					lc, lok := left.At(x, y)
					rc, rok := right.At(x, y)

					if lok && rok {
						t.Fatalf("pixel (%d, %d) is in both halves", x, y)
					}
					if bok != (lok || rok) {
						t.Fatalf("pixel (%d, %d) lost in split", x, y)
					}
					if lok && lc != bc || rok && rc != bc {
						t.Fatalf("pixel (%d, %d) changed in split", x, y)
					}
					if lok && x >= base.W/2 {
						t.Fatalf("left half has pixel at column %d", x)
					}
				}
			}
		})
	}
}

func TestUnknownImage(t *testing.T) {
	repo, err := NewRepository()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"kiwi", "kiwi-left", ""} {
		if _, err := repo.LoadImage(name); !errors.Is(err, ErrUnknownImage) {
			t.Errorf("LoadImage(%q) error = %v, expected ErrUnknownImage", name, err)
		}
	}
}

func TestParseRejectsBadSheets(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{{"},
		{"no pixel size", "sprites: {}"},
		{"ragged rows", `
pixel: {width: 1, height: 1}
palette: {r: red}
sprites:
  dot:
    art: ["##", "#"]
    paint: ["rr", "r"]
`},
		{"paint rows missing", `
pixel: {width: 1, height: 1}
palette: {r: red}
sprites:
  dot:
    art: ["#"]
`},
		{"unknown paint", `
pixel: {width: 1, height: 1}
palette: {r: red}
sprites:
  dot:
    art: ["#"]
    paint: ["z"]
`},
		{"unknown color", `
pixel: {width: 1, height: 1}
palette: {r: crimson}
sprites: {}
`},
		{"reserved suffix", `
pixel: {width: 1, height: 1}
palette: {r: red}
sprites:
  dot-left:
    art: ["#"]
    paint: ["r"]
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() succeeded, expected an error")
			}
		})
	}
}

func TestSpriteTransparency(t *testing.T) {
	repo, err := Parse([]byte(`
pixel: {width: 2, height: 4}
palette: {r: red}
sprites:
  dot:
    art: [" # "]
    paint: [" r "]
`))
	if err != nil {
		t.Fatal(err)
	}
	s := repo.MustLoad("dot")

	if _, ok := s.At(0, 0); ok {
		t.Error("space should be transparent")
	}
	if c, ok := s.At(1, 0); !ok || c.Rune != '#' {
		t.Errorf("At(1, 0) = %+v, %v", c, ok)
	}
	if _, ok := s.At(5, 5); ok {
		t.Error("out of range should be transparent")
	}
	if got := s.Size(); got.X != 6 || got.Y != 4 {
		t.Errorf("Size() = %v, expected (6, 4)", got)
	}
}
