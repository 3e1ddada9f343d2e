package centroid

import (
	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
)

// Centroider is implemented by features that can report a centroid.
type Centroider interface {
	Centroid() (*geo.Point, error)
}

var (
	_ Centroider = (*Polygon)(nil)
	_ Centroider = (*LineString)(nil)
)

// Polygon holds an outer ring followed by any inner rings. Only the outer
// ring takes part in the centroid; holes are ignored.
type Polygon struct {
	Rings []*geo.PointSet
}

// NewPolygon - constructor
func NewPolygon(rings ...*geo.PointSet) *Polygon {
	return &Polygon{Rings: rings}
}

// Centroid returns the area-weighted centroid of the outer ring.
func (p *Polygon) Centroid() (*geo.Point, error) {
	if len(p.Rings) == 0 {
		return nil, errors.Wrap(ErrInvalidGeometry, "polygon has no rings")
	}
	return GetPolygonCentroid(p.Rings[0])
}

// LineString is an open polyline.
type LineString struct {
	*geo.Path
}

// NewLineString - constructor
func NewLineString(ps *geo.PointSet) *LineString {
	path := geo.NewPath()
	if ps != nil {
		path.PointSet = *ps
	}
	return &LineString{Path: path}
}

// Centroid returns the point half way along the line.
func (l *LineString) Centroid() (*geo.Point, error) {
	return GetLineCentroid(&l.PointSet)
}
