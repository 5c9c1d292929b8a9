package vision

import (
	"math"

	"github.com/softglow/raycaster/internal/geom"
)

// CastRays produces count probe segments from origin, one per evenly
// spaced angle i*(2π/count). Each probe ends on a small reference
// circle of the given radius around the origin; the circle's vertical
// radius is scaled by aspect (display width/height) so it stays
// visually round on non-square windows. Probes only establish a
// direction and are extended before intersection testing.
//
// The field is rebuilt from scratch every frame; nothing is retained
// between calls.
func CastRays(origin geom.Point, count int, radius, aspect float64) []geom.Segment {
	if count <= 0 {
		return nil
	}

	step := 2 * math.Pi / float64(count)
	rays := make([]geom.Segment, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * step
		end := geom.Point{
			X: origin.X + radius*math.Cos(angle),
			Y: origin.Y + radius*aspect*math.Sin(angle),
		}
		rays = append(rays, geom.Segment{A: origin, B: end})
	}
	return rays
}

// Sweep is the per-frame entry point: it casts count rays from origin
// and resolves each against the obstacle set, returning one origin→hit
// segment per ray in cast order, ready for drawing.
func Sweep(origin geom.Point, count int, radius, aspect float64, obstacles []geom.Segment) ([]geom.Segment, error) {
	probes := CastRays(origin, count, radius, aspect)

	beams := make([]geom.Segment, 0, len(probes))
	for _, probe := range probes {
		hit, err := NearestHit(probe, obstacles)
		if err != nil {
			return nil, err
		}
		beams = append(beams, geom.Segment{A: origin, B: hit.Point})
	}
	return beams, nil
}
