package geom

import "math"

// LengthAccuracy is the epsilon below which two lengths, or a length and
// zero, are considered equal. Values are assumed to be expressed in the
// canonical base unit.
const LengthAccuracy = 1e-8

// AngleAccuracy is the epsilon below which two angles, expressed in
// radians, are considered equal.
const AngleAccuracy = 1e-6

// LengthIsZero reports whether x is zero within [LengthAccuracy].
// The bound is inclusive: LengthIsZero(LengthAccuracy) is true.
func LengthIsZero(x float64) bool {
	return x >= -LengthAccuracy && x <= LengthAccuracy
}

// LengthIsNegative reports whether x is strictly below -[LengthAccuracy].
func LengthIsNegative(x float64) bool {
	return x < -LengthAccuracy
}

// LengthIsPositive reports whether x is strictly above [LengthAccuracy].
func LengthIsPositive(x float64) bool {
	return x > LengthAccuracy
}

// AngleIsZero reports whether the angle x is zero within [AngleAccuracy].
// Unlike [LengthIsZero], the bound is exclusive.
func AngleIsZero(x float64) bool {
	return math.Abs(x) < AngleAccuracy
}

// AngleIsNegative reports whether the angle x is at or below
// -[AngleAccuracy].
//
// Note the non-strict bound: AngleIsNegative(-AngleAccuracy) is true,
// whereas LengthIsNegative(-LengthAccuracy) is false. The asymmetry
// between the length and angle predicates is intentional; boundary
// values are relied upon elsewhere.
func AngleIsNegative(x float64) bool {
	return x <= -AngleAccuracy
}

// AngleIsPositive reports whether the angle x is at or above
// [AngleAccuracy]. See [AngleIsNegative] for the boundary convention.
func AngleIsPositive(x float64) bool {
	return x >= AngleAccuracy
}

// WithinTolerance reports whether a and b are equal within the given
// relative and absolute tolerances. Two values compare equal when their
// difference is strictly below absTol, or at most relTol scaled by the
// mean magnitude of the operands:
//
//	|a-b| < absTol  ||  |a-b| <= relTol * 0.5 * |a+b|
//
// Infinities compare equal only to infinities of the same sign,
// regardless of the tolerances.
func WithinTolerance(a, b, relTol, absTol float64) bool {
	aInf := math.IsInf(a, 0)
	bInf := math.IsInf(b, 0)
	if aInf || bInf {
		return aInf && bInf && math.Signbit(a) == math.Signbit(b)
	}
	diff := math.Abs(a - b)
	return diff < absTol || diff <= relTol*0.5*math.Abs(a+b)
}
