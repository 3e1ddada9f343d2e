package centroid

import (
	"math"

	geo "github.com/paulmach/go.geo"
)

// Distance returns the length of the path, the sum of the haversine
// great-circle distances between consecutive points, in the given unit.
func Distance(path *geo.PointSet, unit Unit) float64 {
	travelled := 0.0

	for i := 0; i < path.Length()-1; i++ {
		travelled += path.GetAt(i).GeoDistanceFrom(path.GetAt(i+1), true)
	}

	return unit.fromMeters(travelled)
}

// Along returns the point the given distance along the path, measured from
// its first point. Inside a segment the point is found by travelling from
// the segment start along the great circle towards the segment end.
// Budgets outside [0, Distance(path)] are clamped to the path's endpoints.
// The path must hold at least one point.
func Along(path *geo.PointSet, distance float64, unit Unit) *geo.Point {
	budget := unit.toMeters(distance)
	travelled := 0.0

	if budget <= 0 {
		return copyPoint(path.First())
	}

	for i := 0; i < path.Length()-1; i++ {
		start, end := path.GetAt(i), path.GetAt(i+1)
		segment := start.GeoDistanceFrom(end, true)

		// the segment containing the budget
		if (travelled + segment) >= budget {
			remainder := budget - travelled
			if remainder >= segment {
				return copyPoint(end)
			}
			return destination(start, remainder, start.BearingTo(end))
		}

		travelled += segment
	}

	return copyPoint(path.Last())
}

// destination returns the point reached by travelling distance metres from
// origin on the initial bearing (degrees clockwise from north).
func destination(origin *geo.Point, distance, bearing float64) *geo.Point {
	angular := distance / geo.EarthRadius
	heading := deg2rad(bearing)
	lat1 := deg2rad(origin.Lat())
	lng1 := deg2rad(origin.Lng())

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) +
		math.Cos(lat1)*math.Sin(angular)*math.Cos(heading))
	lng2 := lng1 + math.Atan2(
		math.Sin(heading)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	return geo.NewPoint(rad2deg(lng2), rad2deg(lat2))
}

func copyPoint(p *geo.Point) *geo.Point {
	return geo.NewPoint(p.X(), p.Y())
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func rad2deg(r float64) float64 {
	return r * 180.0 / math.Pi
}
