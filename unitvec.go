package geom

import "fmt"

// UnitVec3 is a direction in 3D space with a magnitude of exactly 1.
// The invariant is established once at construction by normalizing the
// input; the stored components are never re-checked afterwards.
//
// The zero value is not a valid unit vector; obtain instances through
// [NewUnitVec3] or the axis constructors.
type UnitVec3 struct {
	v Vec3
}

// UnitX3 returns the positive x axis direction.
func UnitX3() UnitVec3 { return UnitVec3{V3(1, 0, 0)} }

// UnitY3 returns the positive y axis direction.
func UnitY3() UnitVec3 { return UnitVec3{V3(0, 1, 0)} }

// UnitZ3 returns the positive z axis direction.
func UnitZ3() UnitVec3 { return UnitVec3{V3(0, 0, 1)} }

// NewUnitVec3 returns the direction of v, normalized to magnitude 1.
// Callers must not assume the components are the input unchanged.
// A vector whose magnitude vanishes within [LengthAccuracy] has no
// direction and is rejected with [ErrZeroVector].
func NewUnitVec3(v Vec3) (UnitVec3, error) {
	if v.IsZero() {
		return UnitVec3{}, fmt.Errorf("%w: cannot normalize %v", ErrZeroVector, v)
	}
	return UnitVec3{v.Normalize()}, nil
}

// mustUnitVec3 is NewUnitVec3 for callers that have already excluded
// degenerate input; it panics instead of returning an error.
func mustUnitVec3(v Vec3) UnitVec3 {
	u, err := NewUnitVec3(v)
	if err != nil {
		panic(err)
	}
	return u
}

// Vec returns the underlying unit-magnitude vector.
func (u UnitVec3) Vec() Vec3 { return u.v }

// X returns the x component.
func (u UnitVec3) X() float64 { return u.v.X }

// Y returns the y component.
func (u UnitVec3) Y() float64 { return u.v.Y }

// Z returns the z component.
func (u UnitVec3) Z() float64 { return u.v.Z }

func (u UnitVec3) String() string { return u.v.String() }

// Negate returns the opposite direction.
func (u UnitVec3) Negate() UnitVec3 { return UnitVec3{u.v.Negate()} }

// Dot returns the dot product with another unit direction, the cosine
// of the angle between them.
func (u UnitVec3) Dot(o UnitVec3) float64 { return u.v.Dot(o.v) }

// Cross returns the cross product with another unit direction. The
// result is a bare vector: it has unit magnitude only when u and o are
// perpendicular.
func (u UnitVec3) Cross(o UnitVec3) Vec3 { return u.v.Cross(o.v) }

// Equal reports whether two directions coincide within tolerance.
func (u UnitVec3) Equal(o UnitVec3) bool { return u.v.Equal(o.v) }

// IsPerpendicularTo reports whether the angle between u and o is π/2
// within [AngleAccuracy].
func (u UnitVec3) IsPerpendicularTo(o UnitVec3) bool {
	return AngleIsZero(u.Dot(o))
}

// Transform applies m to the direction and renormalizes the image.
// m must not collapse the direction to zero; a degenerate (singular)
// transform is a programming defect and panics.
func (u UnitVec3) Transform(m Mat4) UnitVec3 {
	return mustUnitVec3(V3(
		m[0][0]*u.v.X+m[0][1]*u.v.Y+m[0][2]*u.v.Z,
		m[1][0]*u.v.X+m[1][1]*u.v.Y+m[1][2]*u.v.Z,
		m[2][0]*u.v.X+m[2][1]*u.v.Y+m[2][2]*u.v.Z,
	))
}

// UnitVec2 is a direction in 2D space with a magnitude of exactly 1.
type UnitVec2 struct {
	v Vec2
}

// UnitX2 returns the positive x axis direction.
func UnitX2() UnitVec2 { return UnitVec2{V2(1, 0)} }

// UnitY2 returns the positive y axis direction.
func UnitY2() UnitVec2 { return UnitVec2{V2(0, 1)} }

// NewUnitVec2 returns the direction of v, normalized to magnitude 1.
// A vector whose magnitude vanishes within [LengthAccuracy] is rejected
// with [ErrZeroVector].
func NewUnitVec2(v Vec2) (UnitVec2, error) {
	if v.IsZero() {
		return UnitVec2{}, fmt.Errorf("%w: cannot normalize %v", ErrZeroVector, v)
	}
	return UnitVec2{v.Normalize()}, nil
}

// Vec returns the underlying unit-magnitude vector.
func (u UnitVec2) Vec() Vec2 { return u.v }

// X returns the x component.
func (u UnitVec2) X() float64 { return u.v.X }

// Y returns the y component.
func (u UnitVec2) Y() float64 { return u.v.Y }

func (u UnitVec2) String() string { return u.v.String() }

// Negate returns the opposite direction.
func (u UnitVec2) Negate() UnitVec2 { return UnitVec2{u.v.Mul(-1)} }

// Equal reports whether two directions coincide within tolerance.
func (u UnitVec2) Equal(o UnitVec2) bool { return u.v.Equal(o.v) }
