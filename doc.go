// Package centroid computes the centroid of polygon rings and line strings.
//
// A polygon's centroid is the area-weighted centroid of its outer ring,
// computed in planar co-ordinates. A line's centroid is the point half way
// along it, where lengths are haversine great-circle distances.
//
// All functions are pure and safe for concurrent use. Malformed input is
// reported with errors wrapping ErrInvalidGeometry, and rings without area
// with errors wrapping ErrDegenerateResult.
package centroid
