// Package scene owns the static obstacle geometry: the wall segments
// light rays are blocked by, and the invisible border rectangle that
// guarantees every ray has something to hit.
package scene

import "github.com/softglow/raycaster/internal/geom"

// Scene is the fixed obstacle geometry for one run. It is built once
// at startup and shared read-only; nothing mutates it between frames.
type Scene struct {
	Walls  []geom.Segment
	Border []geom.Segment
}

// Obstacles returns the walls followed by the border segments as one
// ordered slice. The order matters: the resolver breaks distance ties
// in favor of the earliest obstacle, so a wall lying exactly on the
// border still wins over it.
func (s *Scene) Obstacles() []geom.Segment {
	obstacles := make([]geom.Segment, 0, len(s.Walls)+len(s.Border))
	obstacles = append(obstacles, s.Walls...)
	obstacles = append(obstacles, s.Border...)
	return obstacles
}

// BorderSegments builds the four segments of the enclosing rectangle
// at ±extent. The border is scaffolding only: it is never drawn, it
// exists so that a ray pointing away from every wall still resolves.
func BorderSegments(extent float64) []geom.Segment {
	return []geom.Segment{
		{A: geom.Point{X: -extent, Y: extent}, B: geom.Point{X: extent, Y: extent}},   // north
		{A: geom.Point{X: extent, Y: extent}, B: geom.Point{X: extent, Y: -extent}},   // east
		{A: geom.Point{X: -extent, Y: -extent}, B: geom.Point{X: extent, Y: -extent}}, // south
		{A: geom.Point{X: -extent, Y: extent}, B: geom.Point{X: -extent, Y: -extent}}, // west
	}
}

// DefaultWalls returns the built-in demo layout: a jagged enclosure
// around the center, two crossed segments forming an X, a lone slanted
// wall in the upper right, and a short floor segment lower left.
func DefaultWalls() []geom.Segment {
	return []geom.Segment{
		{A: geom.Point{X: 0.65, Y: 0.5}, B: geom.Point{X: 0.7, Y: 0.8}},
		{A: geom.Point{X: 0.2, Y: 0.3}, B: geom.Point{X: 0.4, Y: -0.2}},
		{A: geom.Point{X: 0.4, Y: -0.2}, B: geom.Point{X: 0.05, Y: -0.3}},
		{A: geom.Point{X: 0.05, Y: -0.3}, B: geom.Point{X: -0.2, Y: -0.1}},
		{A: geom.Point{X: -0.2, Y: -0.1}, B: geom.Point{X: -0.1, Y: 0.2}},
		{A: geom.Point{X: -0.1, Y: 0.2}, B: geom.Point{X: 0.2, Y: 0.3}},
		{A: geom.Point{X: -0.5, Y: 0.5}, B: geom.Point{X: -0.3, Y: 0.3}},
		{A: geom.Point{X: -0.3, Y: 0.5}, B: geom.Point{X: -0.5, Y: 0.3}},
		{A: geom.Point{X: -0.5, Y: -0.5}, B: geom.Point{X: -0.2, Y: -0.5}},
	}
}
