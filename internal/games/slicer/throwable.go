package slicer

import (
	"github.com/vovakirdan/fruit-slicer/internal/assets"
	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/physics"
)

// Throwable is a fruit, a bomb, or a shard of a cut fruit. Its state goes
// Alive -> Removed, either by being cut or by falling off screen, and never
// back.
type Throwable struct {
	kind    Kind
	body    *physics.Body
	radius  float64
	sprite  *assets.Sprite
	removed bool

	// Age drives the tumbling rotation and is interpolated like position.
	age, prevAge, shownAge float64

	// impulse is the split impulse a shard was launched with.
	impulse core.Vec2
}

func newThrowable(kind Kind, sprite *assets.Sprite, pos core.Vec2, mass float64) *Throwable {
	return &Throwable{
		kind:   kind,
		body:   physics.NewBody(pos, mass),
		radius: kind.Radius(),
		sprite: sprite,
	}
}

// Kind returns the object's variant.
func (t *Throwable) Kind() Kind { return t.kind }

// Body returns the object's physics body.
func (t *Throwable) Body() *physics.Body { return t.body }

// Radius returns the collision radius.
func (t *Throwable) Radius() float64 { return t.radius }

// Sprite returns the image drawn for the object.
func (t *Throwable) Sprite() *assets.Sprite { return t.sprite }

// Removed reports whether the object is marked for removal. A removed object
// is never tested for collision again and is purged on the next render tick.
func (t *Throwable) Removed() bool { return t.removed }

// Impulse returns the split impulse for shards, zero otherwise.
func (t *Throwable) Impulse() core.Vec2 { return t.impulse }

// Position returns the interpolated position last shown.
func (t *Throwable) Position() core.Vec2 { return t.body.ShownPosition() }

// physicsTick re-applies gravity and integrates one fixed step.
func (t *Throwable) physicsTick(dt float64, gravity core.Vec2) {
	t.body.AddAcceleration(gravity)
	t.body.Step(dt)
	t.prevAge = t.age
	t.age += dt
}

// renderUpdate interpolates the shown state and marks the object removed
// once it is below floor and still falling.
func (t *Throwable) renderUpdate(alpha, floor float64) {
	t.body.Interpolate(alpha)
	alpha = core.ClampF(alpha, 0, 1)
	t.shownAge = t.prevAge*(1-alpha) + t.age*alpha

	if t.body.ShownPosition().Y > floor && t.body.ShownVelocity().Y > 0 {
		t.removed = true
	}
}

// angle returns the tumbling rotation: a spin rate proportional to the
// horizontal velocity, bounded to ±maxSpin, integrated over the object's age.
func (t *Throwable) angle(spinFactor, maxSpin float64) float64 {
	rate := core.ClampF(t.body.ShownVelocity().X*spinFactor, -maxSpin, maxSpin)
	return rate * t.shownAge
}

// hit tests the cut segment a-b against the shown position.
func (t *Throwable) hit(a, b core.Vec2) (core.Vec2, bool) {
	if t.removed || !t.kind.Cuttable() {
		return core.Vec2{}, false
	}
	return core.SegmentCircleContact(a, b, t.body.ShownPosition(), t.radius)
}

func (t *Throwable) draw(c Canvas, spinFactor, maxSpin float64) {
	p := t.body.ShownPosition()
	c.DrawImage(t.sprite, p.X, p.Y, t.angle(spinFactor, maxSpin))
}
