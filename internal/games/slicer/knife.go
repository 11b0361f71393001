package slicer

import (
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// Knife tracks the recent touch points of a drag in a ring buffer. The
// points in [tail, head) form the visible trail; the newest pair is the
// segment tested against thrown objects.
type Knife struct {
	points  []core.Vec2
	head    uint64
	tail    uint64
	pressed bool
}

// NewKnife creates a knife whose trail holds n points (at least 2).
func NewKnife(n int) *Knife {
	return &Knife{points: make([]core.Vec2, max(n, 2))}
}

// Update feeds one frame of touch input. When the touch forms a new cut
// segment it returns the segment from the previous point to the new one.
// Releasing collapses the trail, so the next press starts a fresh one and
// never connects to points from before the release.
func (k *Knife) Update(touch core.Touch) (a, b core.Vec2, ok bool) {
	k.pressed = touch.Pressed
	if !touch.Pressed {
		k.tail = k.head
		return core.Vec2{}, core.Vec2{}, false
	}

	p := touch.Pos()
	n := uint64(len(k.points))
	if k.head > k.tail && k.points[(k.head-1)%n] == p {
		// Holding still adds no zero-length segment.
		return core.Vec2{}, core.Vec2{}, false
	}

	if k.head-k.tail == n {
		k.tail++
	}
	k.points[k.head%n] = p
	k.head++

	if k.head-k.tail < 2 {
		return core.Vec2{}, core.Vec2{}, false
	}
	return k.points[(k.head-2)%n], k.points[(k.head-1)%n], true
}

// Reset drops the trail.
func (k *Knife) Reset() {
	k.head, k.tail = 0, 0
	k.pressed = false
}

// Len returns the number of buffered trail points.
func (k *Knife) Len() int {
	return int(k.head - k.tail)
}

// Trail returns the buffered points, oldest first.
func (k *Knife) Trail() []core.Vec2 {
	n := uint64(len(k.points))
	out := make([]core.Vec2, 0, k.head-k.tail)
	for i := k.tail; i < k.head; i++ {
		out = append(out, k.points[i%n])
	}
	return out
}

// Draw renders the trail as rainbow segments and a dot at the touch point.
// Colors are tied to the absolute point index so they stay put as the
// trail advances.
func (k *Knife) Draw(c Canvas) {
	n := uint64(len(k.points))
	for i := k.tail; i+1 < k.head; i++ {
		color := core.Rainbow[i%uint64(len(core.Rainbow))]
		c.DrawSegment(k.points[i%n], k.points[(i+1)%n], color)
	}
	if k.pressed && k.head > k.tail {
		c.FillDisc(k.points[(k.head-1)%n], 2, '●', core.ColorWhite)
	}
}
