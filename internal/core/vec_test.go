package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a, b := V(3, 4), V(1, 2)

	tests := []struct {
		name     string
		got      Vec2
		expected Vec2
	}{
		{"add", a.Add(b), V(4, 6)},
		{"sub", a.Sub(b), V(2, 2)},
		{"mul", a.Mul(b), V(3, 8)},
		{"div", a.Div(b), V(3, 2)},
		{"add scalar", a.AddScalar(1), V(4, 5)},
		{"sub scalar", a.SubScalar(1), V(2, 3)},
		{"scale", a.Scale(2), V(6, 8)},
		{"div scalar", a.DivScalar(2), V(1.5, 2)},
		{"neg", a.Neg(), V(-3, -4)},
		{"perp", V(1, 0).Perp(), V(0, 1)},
		{"lerp start", a.Lerp(b, 0), a},
		{"lerp end", a.Lerp(b, 1), b},
		{"lerp middle", a.Lerp(b, 0.5), V(2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}

func TestVecMetrics(t *testing.T) {
	a := V(3, 4)

	if got := a.Magnitude(); got != 5 {
		t.Errorf("Magnitude() = %v, expected 5", got)
	}
	if got := a.Distance(V(0, 0)); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
	if got := a.Dot(V(2, -1)); got != 2 {
		t.Errorf("Dot() = %v, expected 2", got)
	}

	n := a.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-12 {
		t.Errorf("Normalize() magnitude = %v, expected 1", n.Magnitude())
	}
}

func TestSafeNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		ok   bool
	}{
		{"unit", V(1, 0), true},
		{"diagonal", V(-2, 2), true},
		{"zero", V(0, 0), false},
		{"nan", V(math.NaN(), 1), false},
		{"inf", V(math.Inf(1), 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := tc.v.SafeNormalize()
			if ok != tc.ok {
				t.Fatalf("SafeNormalize() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && math.Abs(n.Magnitude()-1) > 1e-12 {
				t.Errorf("magnitude = %v, expected 1", n.Magnitude())
			}
			if !ok && !n.IsZero() {
				t.Errorf("failed normalize returned %v, expected zero", n)
			}
		})
	}
}

func TestVecRotate(t *testing.T) {
	got := V(2, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-2) > 1e-12 {
		t.Errorf("Rotate(pi/2) = %v, expected (0, 2)", got)
	}
	back := got.Rotate(-math.Pi / 2)
	if back.Distance(V(2, 0)) > 1e-12 {
		t.Errorf("rotating back = %v, expected (2, 0)", back)
	}
}
