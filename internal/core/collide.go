package core

// DefaultSegmentEpsilon is the tolerance used by PointOnSegment when testing
// whether a projected point lies on a cut segment. Higher values are more
// forgiving to thick gestures.
const DefaultSegmentEpsilon = 0.1

// contactEpsilon absorbs rounding in the circle tests so a tangent segment
// still touches.
const contactEpsilon = 1e-9

// PointInCircle reports whether p lies inside or on the circle (c, r).
func PointInCircle(p, c Vec2, r float64) bool {
	return p.Distance(c) <= r+contactEpsilon
}

// PointOnSegment reports whether p lies on the segment a-b, allowing the
// path a→p→b to be up to epsilon longer (or shorter) than a→b.
func PointOnSegment(a, b, p Vec2, epsilon float64) bool {
	d1 := p.Distance(a)
	d2 := p.Distance(b)
	length := a.Distance(b)
	return d1+d2 >= length-epsilon && d1+d2 <= length+epsilon
}

// SegmentIntersectsCircle reports whether the finite segment a-b touches
// the circle (c, r).
func SegmentIntersectsCircle(a, b, c Vec2, r float64) bool {
	_, hit := SegmentCircleContact(a, b, c, r)
	return hit
}

// SegmentCircleContact tests the finite segment a-b against the circle (c, r).
// On a hit it also returns the offset from c to the point of the segment
// nearest to c. A zero-length segment degrades to a point test against a.
func SegmentCircleContact(a, b, c Vec2, r float64) (Vec2, bool) {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		if PointInCircle(a, c, r) {
			return a.Sub(c), true
		}
		return Vec2{}, false
	}

	t := c.Sub(a).Dot(ab) / lengthSq
	closest := a.Add(ab.Scale(t))

	if PointInCircle(a, c, r) || PointInCircle(b, c, r) {
		return a.Add(ab.Scale(ClampF(t, 0, 1))).Sub(c), true
	}

	// No extension past the endpoints.
	if !PointOnSegment(a, b, closest, DefaultSegmentEpsilon) {
		return Vec2{}, false
	}
	if !PointInCircle(closest, c, r) {
		return Vec2{}, false
	}
	return closest.Sub(c), true
}
