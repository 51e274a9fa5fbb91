package geom

import "errors"

// Validation and domain errors surface immediately to the direct
// caller; the package never retries, falls back, or logs. Contract
// violations (evaluating an unset evaluation, transforming a direction
// with a singular matrix) are programming defects and panic instead.
var (
	// ErrShape reports constructor input of the wrong dimension or
	// shape, such as a 3-element slice offered to a 4×4 matrix.
	ErrShape = errors.New("geom: wrong shape")

	// ErrZeroVector reports an attempt to derive a direction from a
	// vector with vanishing magnitude.
	ErrZeroVector = errors.New("geom: zero vector")

	// ErrNotUnit reports a direction argument whose magnitude is not 1
	// within LengthAccuracy.
	ErrNotUnit = errors.New("geom: direction is not a unit vector")

	// ErrNotOrthogonal reports plane or frame directions that are not
	// perpendicular within AngleAccuracy.
	ErrNotOrthogonal = errors.New("geom: directions are not orthogonal")

	// ErrNotClosed reports a span request on an interval with at least
	// one infinite bound.
	ErrNotClosed = errors.New("geom: interval is not closed")

	// ErrNotPositive reports a radius or other magnitude that must be
	// positive but is zero or negative within LengthAccuracy.
	ErrNotPositive = errors.New("geom: value must be positive")
)
