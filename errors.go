package centroid

import "github.com/pkg/errors"

var (
	// ErrInvalidGeometry is returned when the input does not satisfy the
	// shape requirements of a ring or a path.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDegenerateResult is returned when a ring encloses no area, leaving
	// the centroid undefined.
	ErrDegenerateResult = errors.New("undefined centroid")
)
