// Package assets loads the rune-art sprites the game draws.
// Sprites come from an embedded YAML sheet and are cached by name.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

//go:embed sprites.yaml
var defaultSheetYAML []byte

// ErrUnknownImage is returned when a sprite name is not in the sheet.
var ErrUnknownImage = errors.New("unknown image")

// Suffixes of the derived half images, e.g. "apple-left".
const (
	LeftSuffix  = "-left"
	RightSuffix = "-right"
)

type sheetFile struct {
	Pixel struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"pixel"`
	Palette map[string]string     `yaml:"palette"`
	Sprites map[string]spriteSpec `yaml:"sprites"`
}

type spriteSpec struct {
	Art   []string `yaml:"art"`
	Paint []string `yaml:"paint"`
}

// Repository resolves image names to sprites. LoadImage is idempotent:
// repeated calls with the same name return the same *Sprite.
type Repository struct {
	mu      sync.Mutex
	pixelW  float64
	pixelH  float64
	palette map[rune]core.Color
	specs   map[string]spriteSpec
	cache   map[string]*Sprite
}

// NewRepository creates a repository backed by the embedded sprite sheet.
func NewRepository() (*Repository, error) {
	return Parse(defaultSheetYAML)
}

// Parse creates a repository from a YAML sprite sheet. The palette and the
// shape of every sprite are validated up front.
func Parse(data []byte) (*Repository, error) {
	var sheet sheetFile
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("assets: failed to parse sprite sheet: %w", err)
	}
	if sheet.Pixel.Width <= 0 || sheet.Pixel.Height <= 0 {
		return nil, fmt.Errorf("assets: invalid pixel size %vx%v", sheet.Pixel.Width, sheet.Pixel.Height)
	}

	r := &Repository{
		pixelW:  sheet.Pixel.Width,
		pixelH:  sheet.Pixel.Height,
		palette: make(map[rune]core.Color, len(sheet.Palette)),
		specs:   sheet.Sprites,
		cache:   make(map[string]*Sprite),
	}
	for key, name := range sheet.Palette {
		keyRunes := []rune(key)
		if len(keyRunes) != 1 {
			return nil, fmt.Errorf("assets: palette key %q must be one character", key)
		}
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("assets: palette %q: %w", key, err)
		}
		r.palette[keyRunes[0]] = c
	}
	for name, spec := range sheet.Sprites {
		if strings.HasSuffix(name, LeftSuffix) || strings.HasSuffix(name, RightSuffix) {
			return nil, fmt.Errorf("assets: sprite %q uses a reserved suffix", name)
		}
		sprite, err := r.build(name, spec)
		if err != nil {
			return nil, err
		}
		r.cache[name] = sprite
	}
	return r, nil
}

// LoadImage returns the sprite called name. Names ending in "-left" or
// "-right" resolve to the matching half of the base sprite.
func (r *Repository) LoadImage(name string) (*Sprite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.cache[name]; ok {
		return s, nil
	}

	var s *Sprite
	switch {
	case strings.HasSuffix(name, LeftSuffix):
		base, err := r.loadBase(strings.TrimSuffix(name, LeftSuffix), name)
		if err != nil {
			return nil, err
		}
		s = base.half(name, 0, base.W/2)
	case strings.HasSuffix(name, RightSuffix):
		base, err := r.loadBase(strings.TrimSuffix(name, RightSuffix), name)
		if err != nil {
			return nil, err
		}
		s = base.half(name, base.W/2, base.W)
	default:
		var err error
		if s, err = r.loadBase(name, name); err != nil {
			return nil, err
		}
	}

	r.cache[name] = s
	return s, nil
}

// MustLoad is LoadImage for names known at compile time.
func (r *Repository) MustLoad(name string) *Sprite {
	s, err := r.LoadImage(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the base sprite names in the sheet, sorted.
func (r *Repository) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadBase returns the cached base sprite, building it on first use.
// requested is the name reported in errors. Callers hold r.mu.
func (r *Repository) loadBase(name, requested string) (*Sprite, error) {
	if s, ok := r.cache[name]; ok {
		return s, nil
	}
	spec, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("assets: %q: %w", requested, ErrUnknownImage)
	}
	s, err := r.build(name, spec)
	if err != nil {
		return nil, err
	}
	r.cache[name] = s
	return s, nil
}

func (r *Repository) build(name string, spec spriteSpec) (*Sprite, error) {
	h := len(spec.Art)
	if h == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no art", name)
	}
	if len(spec.Paint) != h {
		return nil, fmt.Errorf("assets: sprite %q has %d art rows but %d paint rows", name, h, len(spec.Paint))
	}
	w := len([]rune(spec.Art[0]))

	s := &Sprite{
		Name:   name,
		W:      w,
		H:      h,
		PixelW: r.pixelW,
		PixelH: r.pixelH,
		pixels: make([]core.Cell, w*h),
	}
	for y := 0; y < h; y++ {
		art := []rune(spec.Art[y])
		paint := []rune(spec.Paint[y])
		if len(art) != w || len(paint) != w {
			return nil, fmt.Errorf("assets: sprite %q row %d is not %d wide", name, y, w)
		}
		for x, ch := range art {
			if ch == ' ' {
				continue
			}
			color := core.ColorDefault
			if paint[x] != ' ' {
				c, ok := r.palette[paint[x]]
				if !ok {
					return nil, fmt.Errorf("assets: sprite %q uses unknown paint %q", name, paint[x])
				}
				color = c
			}
			s.pixels[y*w+x] = core.Cell{Rune: ch, Color: color}
		}
	}
	return s, nil
}
