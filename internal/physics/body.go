// Package physics integrates point bodies at a fixed timestep and exposes an
// interpolated state for rendering between steps.
package physics

import (
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// MinMass is the smallest mass a Body may have. Smaller (or non-positive)
// masses are raised to it so force application never divides by zero.
const MinMass = 1e-6

// Body is a point mass advanced with semi-implicit Euler integration.
// Step snapshots the previous state before integrating; Interpolate blends
// the two snapshots for drawing.
type Body struct {
	prevPos, pos, shownPos core.Vec2
	prevVel, vel, shownVel core.Vec2
	accel                  core.Vec2
	mass                   float64
}

// NewBody creates a body at rest at pos.
func NewBody(pos core.Vec2, mass float64) *Body {
	if !(mass >= MinMass) {
		mass = MinMass
	}
	return &Body{
		prevPos:  pos,
		pos:      pos,
		shownPos: pos,
		mass:     mass,
	}
}

// Step advances the body by dt seconds and clears the accumulated acceleration.
// Forces are per-step: anything that must persist (gravity) is re-applied
// by the caller before every step.
func (b *Body) Step(dt float64) {
	b.prevPos = b.pos
	b.prevVel = b.vel

	b.vel = b.vel.Add(b.accel.Scale(dt))
	b.pos = b.pos.Add(b.vel.Scale(dt))
	b.accel = core.Vec2{}
}

// Interpolate sets the shown state to current*alpha + previous*(1-alpha).
// Alpha is clamped to [0, 1].
func (b *Body) Interpolate(alpha float64) {
	alpha = core.ClampF(alpha, 0, 1)
	b.shownPos = b.prevPos.Lerp(b.pos, alpha)
	b.shownVel = b.prevVel.Lerp(b.vel, alpha)
}

// AddForce accumulates f/mass into the acceleration for the next step.
func (b *Body) AddForce(f core.Vec2) {
	b.accel = b.accel.Add(f.DivScalar(b.mass))
}

// AddAcceleration accumulates a mass-independent acceleration such as gravity.
func (b *Body) AddAcceleration(a core.Vec2) {
	b.accel = b.accel.Add(a)
}

// ApplyImpulse changes the velocity by j/mass immediately.
func (b *Body) ApplyImpulse(j core.Vec2) {
	b.vel = b.vel.Add(j.DivScalar(b.mass))
}

// SetVelocity overwrites the current velocity, leaving the snapshot alone.
func (b *Body) SetVelocity(v core.Vec2) {
	b.vel = v
}

// Position returns the current simulated position.
func (b *Body) Position() core.Vec2 { return b.pos }

// Velocity returns the current simulated velocity.
func (b *Body) Velocity() core.Vec2 { return b.vel }

// PrevPosition returns the position before the last step.
func (b *Body) PrevPosition() core.Vec2 { return b.prevPos }

// PrevVelocity returns the velocity before the last step.
func (b *Body) PrevVelocity() core.Vec2 { return b.prevVel }

// ShownPosition returns the position computed by the last Interpolate.
func (b *Body) ShownPosition() core.Vec2 { return b.shownPos }

// ShownVelocity returns the velocity computed by the last Interpolate.
func (b *Body) ShownVelocity() core.Vec2 { return b.shownVel }

// Acceleration returns the acceleration accumulated since the last step.
func (b *Body) Acceleration() core.Vec2 { return b.accel }

// Mass returns the body's mass.
func (b *Body) Mass() float64 { return b.mass }
