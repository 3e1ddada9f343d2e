package centroid

import (
	"math"

	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
)

// IsPointSetClosed reports whether the point set forms a loop, ie. it has
// more than two points and its first and last points are equal.
func IsPointSetClosed(points *geo.PointSet) bool {
	if points != nil && points.Length() > 2 {
		return points.First().Equals(points.Last())
	}
	return false
}

// ReversePointSet returns a copy of points in reverse order.
func ReversePointSet(points *geo.PointSet) *geo.PointSet {
	reversed := geo.NewPointSet()

	for i := points.Length() - 1; i >= 0; i-- {
		reversed.Push(points.GetAt(i))
	}

	return reversed
}

func isFinitePoint(p *geo.Point) bool {
	return !math.IsNaN(p.X()) && !math.IsInf(p.X(), 0) &&
		!math.IsNaN(p.Y()) && !math.IsInf(p.Y(), 0)
}

func validateFinite(points *geo.PointSet) error {
	for i := 0; i < points.Length(); i++ {
		if !isFinitePoint(points.GetAt(i)) {
			return errors.Wrapf(ErrInvalidGeometry, "non-finite coordinate at index %d", i)
		}
	}
	return nil
}

// validateRing checks a polygon ring: closed, at least four points and
// three distinct vertices.
func validateRing(ring *geo.PointSet) error {
	if ring == nil {
		return errors.Wrap(ErrInvalidGeometry, "nil ring")
	}
	if n := ring.Length(); n < 4 {
		return errors.Wrapf(ErrInvalidGeometry, "ring has %d points, need at least 4", n)
	}
	if err := validateFinite(ring); err != nil {
		return err
	}
	if !ring.First().Equals(ring.Last()) {
		return errors.Wrap(ErrInvalidGeometry, "ring is not closed")
	}

	// closing point duplicates the first, skip it
	distinct := make(map[geo.Point]struct{}, ring.Length())
	for i := 0; i < ring.Length()-1; i++ {
		distinct[*ring.GetAt(i)] = struct{}{}
	}
	if len(distinct) < 3 {
		return errors.Wrapf(ErrInvalidGeometry, "ring has %d distinct vertices, need at least 3", len(distinct))
	}

	return nil
}

// validatePath checks a polyline: at least two points, all finite.
func validatePath(path *geo.PointSet) error {
	if path == nil {
		return errors.Wrap(ErrInvalidGeometry, "nil path")
	}
	if n := path.Length(); n < 2 {
		return errors.Wrapf(ErrInvalidGeometry, "path has %d points, need at least 2", n)
	}
	return validateFinite(path)
}
