// Package geom provides the 2D primitives the raycaster is built on:
// points and line segments in normalized device space, plus the
// segment intersection test every visibility query reduces to.
package geom

import "math"

// epsilon is the tolerance below which a coordinate delta is treated
// as zero (degenerate segments, parallel denominators).
const epsilon = 1e-6

// Point is a position in normalized device space. Both axes range over
// [-1, 1] for on-screen geometry; the enclosing border sits slightly
// outside at ±1.1.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points. It represents both static
// obstacles (walls, border edges) and the rays cast from the light
// origin each frame.
type Segment struct {
	A, B Point
}

// Distance returns the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Intersect reports where two finite segments cross, if they do.
// It solves the parametric system
//
//	a.A + t*(a.B - a.A) == b.A + u*(b.B - b.A)
//
// and accepts the solution only when both t and u lie in [0, 1], i.e.
// the crossing is inside both segments rather than on their infinite
// extensions. Parallel segments have a zero denominator and report no
// intersection; collinear overlap is treated the same way.
func Intersect(a, b Segment) (Point, bool) {
	x1, y1 := a.A.X, a.A.Y
	x2, y2 := a.B.X, a.B.Y
	x3, y3 := b.A.X, b.A.Y
	x4, y4 := b.B.X, b.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < epsilon {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}
