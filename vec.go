package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a direction with magnitude in 3D space. Like [Point3] it is
// representation-compatible with [r3.Vec].
type Vec3 r3.Vec

// V3 returns the vector ⟨x, y, z⟩.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3FromSlice builds a vector from a 3-element component slice.
// It does not alias components.
func NewVec3FromSlice(components []float64) (Vec3, error) {
	if len(components) != 3 {
		return Vec3{}, fmt.Errorf("%w: vector needs 3 components, got %d", ErrShape, len(components))
	}
	return V3(components[0], components[1], components[2]), nil
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(o)))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(o)))
}

// Mul returns the vector scaled by f.
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3(r3.Scale(f, r3.Vec(v)))
}

// Negate returns a new vector with the signs of all components flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3(r3.Scale(-1, r3.Vec(v)))
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(o))
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3(r3.Cross(r3.Vec(v), r3.Vec(o)))
}

// Norm returns the magnitude of the vector. An exactly zero magnitude
// is reported as the smallest positive float64 so that dividing by the
// result stays finite.
func (v Vec3) Norm() float64 {
	n := r3.Norm(r3.Vec(v))
	if n == 0 {
		return math.SmallestNonzeroFloat64
	}
	return n
}

// Norm2 returns the squared magnitude of the vector.
func (v Vec3) Norm2() float64 {
	return r3.Norm2(r3.Vec(v))
}

// Normalize returns a vector of magnitude 1 with the same direction as
// v. The source vector is left untouched. See [NewUnitVec3] for the
// variant that rejects degenerate input.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1 / v.Norm())
}

// IsZero reports whether the vector's magnitude vanishes within
// [LengthAccuracy].
func (v Vec3) IsZero() bool {
	return LengthIsZero(v.X) && LengthIsZero(v.Y) && LengthIsZero(v.Z)
}

// AngleTo returns the angle in radians between v and o, in [0, π].
func (v Vec3) AngleTo(o Vec3) float64 {
	cos := r3.Cos(r3.Vec(v), r3.Vec(o))
	return math.Acos(min(max(cos, -1), 1))
}

// Transform applies the affine transform m to the vector as a
// homogeneous coordinate with w = 1, matching [Point3.Transform].
func (v Vec3) Transform(m Mat4) Vec3 {
	return V3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z+m[0][3],
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z+m[1][3],
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z+m[2][3],
	)
}

// Equal reports whether two vectors coincide within [LengthAccuracy],
// component by component.
func (v Vec3) Equal(o Vec3) bool {
	return WithinTolerance(v.X, o.X, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(v.Y, o.Y, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(v.Z, o.Z, LengthAccuracy, LengthAccuracy)
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Vec2 is a direction with magnitude in 2D space.
type Vec2 r2.Vec

// V2 returns the vector ⟨x, y⟩.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2FromSlice builds a vector from a 2-element component slice.
// It does not alias components.
func NewVec2FromSlice(components []float64) (Vec2, error) {
	if len(components) != 2 {
		return Vec2{}, fmt.Errorf("%w: vector needs 2 components, got %d", ErrShape, len(components))
	}
	return V2(components[0], components[1]), nil
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(o)))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(v), r2.Vec(o)))
}

// Mul returns the vector scaled by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2(r2.Scale(f, r2.Vec(v)))
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(o))
}

// Cross returns the 2D cross product of v and o, the signed area of the
// parallelogram they span.
func (v Vec2) Cross(o Vec2) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(o))
}

// Norm returns the magnitude of the vector. An exactly zero magnitude
// is reported as the smallest positive float64.
func (v Vec2) Norm() float64 {
	n := r2.Norm(r2.Vec(v))
	if n == 0 {
		return math.SmallestNonzeroFloat64
	}
	return n
}

// Norm2 returns the squared magnitude of the vector.
func (v Vec2) Norm2() float64 {
	return r2.Norm2(r2.Vec(v))
}

// Normalize returns a vector of magnitude 1 with the same direction as
// v. The source vector is left untouched.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1 / v.Norm())
}

// IsZero reports whether the vector's magnitude vanishes within
// [LengthAccuracy].
func (v Vec2) IsZero() bool {
	return LengthIsZero(v.X) && LengthIsZero(v.Y)
}

// Equal reports whether two vectors coincide within [LengthAccuracy],
// component by component.
func (v Vec2) Equal(o Vec2) bool {
	return WithinTolerance(v.X, o.X, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(v.Y, o.Y, LengthAccuracy, LengthAccuracy)
}

// IsInf reports whether at least one component is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
