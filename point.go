package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a location in 3D space, expressed in the canonical base
// unit. It shares its representation with [r3.Vec] so that callers
// already working with gonum's spatial types can convert freely.
type Point3 r3.Vec

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// NewPoint3FromSlice builds a point from a 3-element coordinate slice,
// as decoded from the wire. It does not alias coords.
func NewPoint3FromSlice(coords []float64) (Point3, error) {
	if len(coords) != 3 {
		return Point3{}, fmt.Errorf("%w: point needs 3 coordinates, got %d", ErrShape, len(coords))
	}
	return Pt3(coords[0], coords[1], coords[2]), nil
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Coords returns the point's coordinates as a fixed array, in the
// layout the wire boundary expects.
func (pt Point3) Coords() [3]float64 {
	return [3]float64{pt.X, pt.Y, pt.Z}
}

// Translate returns the point displaced by v.
func (pt Point3) Translate(v Vec3) Point3 {
	return Point3(r3.Add(r3.Vec(pt), r3.Vec(v)))
}

// Sub computes the vector from o to pt.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(pt), r3.Vec(o)))
}

// Distance returns the euclidean distance between two points.
func (pt Point3) Distance(o Point3) float64 {
	return r3.Norm(r3.Sub(r3.Vec(pt), r3.Vec(o)))
}

// Midpoint returns the midpoint of two points.
func (pt Point3) Midpoint(o Point3) Point3 {
	return Point3(r3.Scale(0.5, r3.Add(r3.Vec(pt), r3.Vec(o))))
}

// Transform applies the affine transform m to the point, treating it as
// a homogeneous coordinate with w = 1.
func (pt Point3) Transform(m Mat4) Point3 {
	return Pt3(
		m[0][0]*pt.X+m[0][1]*pt.Y+m[0][2]*pt.Z+m[0][3],
		m[1][0]*pt.X+m[1][1]*pt.Y+m[1][2]*pt.Z+m[1][3],
		m[2][0]*pt.X+m[2][1]*pt.Y+m[2][2]*pt.Z+m[2][3],
	)
}

// Equal reports whether two points coincide within [LengthAccuracy],
// component by component. This, not bitwise float equality, is the
// equality law used throughout the package.
func (pt Point3) Equal(o Point3) bool {
	return WithinTolerance(pt.X, o.X, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(pt.Y, o.Y, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(pt.Z, o.Z, LengthAccuracy, LengthAccuracy)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point3) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point3) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// Point2 is a location in 2D space, typically a position within a
// sketch plane's local coordinate system.
type Point2 r2.Vec

// Pt2 returns the point (x, y).
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// NewPoint2FromSlice builds a point from a 2-element coordinate slice.
// It does not alias coords.
func NewPoint2FromSlice(coords []float64) (Point2, error) {
	if len(coords) != 2 {
		return Point2{}, fmt.Errorf("%w: point needs 2 coordinates, got %d", ErrShape, len(coords))
	}
	return Pt2(coords[0], coords[1]), nil
}

func (pt Point2) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Coords returns the point's coordinates as a fixed array.
func (pt Point2) Coords() [2]float64 {
	return [2]float64{pt.X, pt.Y}
}

// Translate returns the point displaced by v.
func (pt Point2) Translate(v Vec2) Point2 {
	return Point2(r2.Add(r2.Vec(pt), r2.Vec(v)))
}

// Sub computes the vector from o to pt.
func (pt Point2) Sub(o Point2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(pt), r2.Vec(o)))
}

// Distance returns the euclidean distance between two points.
func (pt Point2) Distance(o Point2) float64 {
	return r2.Norm(r2.Sub(r2.Vec(pt), r2.Vec(o)))
}

// Equal reports whether two points coincide within [LengthAccuracy],
// component by component.
func (pt Point2) Equal(o Point2) bool {
	return WithinTolerance(pt.X, o.X, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(pt.Y, o.Y, LengthAccuracy, LengthAccuracy)
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point2) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point2) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
