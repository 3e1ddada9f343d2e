package centroid

import "github.com/paulmach/go.geo"

// GetLineCentroid - compute the centroid of a line string, the point
// lying half way along its length
func GetLineCentroid(path *geo.PointSet) (*geo.Point, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	halfDistance := Distance(path, Meters) / 2

	return Along(path, halfDistance, Meters), nil
}
