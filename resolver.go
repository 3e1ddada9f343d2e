package centroid

import (
	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Resolver picks the centroid strategy for a bare point set: closed sets
// are treated as polygons, open sets as lines.
type Resolver struct {
	logger logrus.FieldLogger
}

// NewResolver - constructor
func NewResolver(logger logrus.FieldLogger) *Resolver {
	return &Resolver{logger: logger}
}

// Compute returns the centroid of points. A closed set which does not form
// a usable polygon (too few vertices, zero area) falls back to its line
// centroid.
func (r *Resolver) Compute(points *geo.PointSet) (*geo.Point, error) {
	if points == nil {
		return nil, errors.Wrap(ErrInvalidGeometry, "compute centroid: nil point set")
	}

	log := r.logger.WithField("points", points.Length())

	if IsPointSetClosed(points) {
		centroid, err := GetPolygonCentroid(points)
		if err == nil {
			return centroid, nil
		}

		log.WithField("action", "polygon_centroid").WithError(err).
			Warn("closed point set is not a valid polygon, falling back to line centroid")
	}

	centroid, err := GetLineCentroid(points)
	if err != nil {
		log.WithField("action", "line_centroid").WithError(err).
			Debug("failed to compute centroid")
		return nil, errors.Wrap(err, "line centroid")
	}

	return centroid, nil
}
