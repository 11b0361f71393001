package slicer

import (
	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// ImageLoader resolves image names to sprites. Repeated loads of the same
// name return the same sprite.
type ImageLoader interface {
	LoadImage(name string) (*assets.Sprite, error)
}

// Canvas is what the session draws on. Positions are in display units;
// text positions are in screen cells.
type Canvas interface {
	Background(ch rune, color core.Color)
	DrawImage(img *assets.Sprite, x, y, theta float64)
	DrawSegment(a, b core.Vec2, color core.Color)
	FillDisc(center core.Vec2, r float64, ch rune, color core.Color)
	DrawText(col, row int, text string, color core.Color)
	DrawTextRight(row int, text string, color core.Color)
	DrawBanner(text string, color core.Color)
	Wipe(progress float64, ch rune, color core.Color)
	Rows() int
}
