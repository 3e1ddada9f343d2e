package centroid

import (
	"math"

	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
)

// GetPolygonCentroid - compute the area-weighted centroid of a closed ring
// using planar co-ordinates. Winding direction does not affect the result.
//
// Vertices are accumulated relative to the first one so that rings far
// from the origin (lon/lat rings, for instance) do not lose precision.
func GetPolygonCentroid(ring *geo.PointSet) (*geo.Point, error) {
	if err := validateRing(ring); err != nil {
		return nil, err
	}

	origin := ring.First()
	ox, oy := origin.X(), origin.Y()

	var area, xSum, ySum float64
	var prevX, prevY float64 // first vertex, relative to itself

	for i := 1; i < ring.Length(); i++ {
		cur := ring.GetAt(i)
		curX, curY := cur.X()-ox, cur.Y()-oy

		f := curY*prevX - prevY*curX

		xSum += (curX + prevX) * f
		ySum += (curY + prevY) * f
		// 3x pre-divides the 1/6 centroid and 1/2 area constants
		area += f * 3.0

		prevX, prevY = curX, curY
	}

	if area == 0 {
		return nil, errors.Wrap(ErrDegenerateResult, "ring encloses no area")
	}

	x, y := xSum/area+ox, ySum/area+oy
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return nil, errors.Wrapf(ErrDegenerateResult, "non-finite centroid (%v, %v)", x, y)
	}

	return geo.NewPoint(x, y), nil
}
