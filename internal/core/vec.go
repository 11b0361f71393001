package core

import "math"

// Vec2 is an immutable 2D vector in logical display units.
// All operations return new values.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// AddScalar adds s to both components.
func (v Vec2) AddScalar(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }

// SubScalar subtracts s from both components.
func (v Vec2) SubScalar(s float64) Vec2 { return Vec2{v.X - s, v.Y - s} }

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// DivScalar divides both components by s.
func (v Vec2) DivScalar(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Neg returns the opposite vector.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Sqrt((v.X-o.X)*(v.X-o.X) + (v.Y-o.Y)*(v.Y-o.Y))
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// The caller must ensure v has a non-zero magnitude; use SafeNormalize
// when that is not guaranteed.
func (v Vec2) Normalize() Vec2 {
	return v.DivScalar(v.Magnitude())
}

// SafeNormalize returns the unit vector of v and true, or the zero vector and
// false when v has zero (or non-finite) magnitude.
func (v Vec2) SafeNormalize() (Vec2, bool) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec2{}, false
	}
	return v.DivScalar(m), true
}

// Perp returns v rotated 90 degrees counter-clockwise (in a y-up frame).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate returns v rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Lerp returns the linear interpolation between v (t=0) and o (t=1).
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return o.Scale(t).Add(v.Scale(1 - t))
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
