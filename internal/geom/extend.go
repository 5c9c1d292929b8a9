package geom

import "math"

// farCoordinate is the "effectively infinite" distance an extended ray
// reaches from its start point. It must exceed every obstacle and
// border coordinate by a wide margin so that an extended ray always
// crosses the enclosing border.
const farCoordinate = 32767

// Extend returns a segment with the same start point as seg whose end
// point is pushed out to farCoordinate along seg's direction. The
// direction is taken straight from the segment's endpoint delta, so
// vertical, horizontal, and oblique probes all extend uniformly. A
// (near-)zero-length segment has no direction and is returned as is;
// it resolves to no hit downstream.
func Extend(seg Segment) Segment {
	dx := seg.B.X - seg.A.X
	dy := seg.B.Y - seg.A.Y

	length := math.Hypot(dx, dy)
	if length < epsilon {
		return seg
	}

	scale := farCoordinate / length
	return Segment{
		A: seg.A,
		B: Point{
			X: seg.A.X + dx*scale,
			Y: seg.A.Y + dy*scale,
		},
	}
}
