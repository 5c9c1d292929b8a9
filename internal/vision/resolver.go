// Package vision turns a light origin into the set of visible points:
// it samples ray directions around the origin and resolves each ray to
// the nearest obstacle it strikes.
package vision

import (
	"fmt"
	"math"

	"github.com/softglow/raycaster/internal/geom"
)

// Hit is the nearest intersection found for one ray.
type Hit struct {
	Point    geom.Point
	Distance float64
	// Obstacle is the index of the struck segment in the obstacle
	// slice. On equal distances the earliest obstacle wins, so walls
	// shadow the border deterministically.
	Obstacle int
}

// NearestHit extends the probe segment to effectively infinite length
// and scans the obstacle set for the closest crossing, measured from
// the probe's start point.
//
// A well-formed scene encloses the origin with border segments, so
// every ray strikes something. No hit at all means the enclosure
// invariant is broken and is returned as an error rather than papered
// over with a default point.
func NearestHit(probe geom.Segment, obstacles []geom.Segment) (Hit, error) {
	extended := geom.Extend(probe)

	nearest := Hit{Distance: math.Inf(1), Obstacle: -1}
	for i, obstacle := range obstacles {
		p, ok := geom.Intersect(extended, obstacle)
		if !ok {
			continue
		}
		if d := geom.Distance(probe.A, p); d < nearest.Distance {
			nearest = Hit{Point: p, Distance: d, Obstacle: i}
		}
	}

	if nearest.Obstacle < 0 {
		return Hit{}, fmt.Errorf("ray from (%.3f, %.3f) escaped all %d obstacles: border does not enclose the origin",
			probe.A.X, probe.A.Y, len(obstacles))
	}
	return nearest, nil
}
