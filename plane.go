package geom

import (
	"fmt"
	"math"
)

// Plane is a local 2D coordinate system embedded in 3D space: an origin
// and two mutually perpendicular unit directions spanning the plane.
// Planes are immutable; "changing" one means constructing a new one.
type Plane struct {
	origin Point3
	dirX   UnitVec3
	dirY   UnitVec3
}

// XYPlane returns the canonical plane through origin spanned by the
// global x and y axes.
func XYPlane(origin Point3) Plane {
	return Plane{origin: origin, dirX: UnitX3(), dirY: UnitY3()}
}

// NewPlane constructs a plane from an origin and two direction vectors.
// Both directions must already be unit vectors within [LengthAccuracy]
// and perpendicular to each other within [AngleAccuracy]; they are
// validated, not normalized. The error names the offending argument.
func NewPlane(origin Point3, dirX, dirY Vec3) (Plane, error) {
	if !WithinTolerance(dirX.Norm(), 1, LengthAccuracy, LengthAccuracy) {
		return Plane{}, fmt.Errorf("%w: dirX %v has norm %g", ErrNotUnit, dirX, dirX.Norm())
	}
	if !WithinTolerance(dirY.Norm(), 1, LengthAccuracy, LengthAccuracy) {
		return Plane{}, fmt.Errorf("%w: dirY %v has norm %g", ErrNotUnit, dirY, dirY.Norm())
	}
	ux := UnitVec3{dirX}
	uy := UnitVec3{dirY}
	if !ux.IsPerpendicularTo(uy) {
		return Plane{}, fmt.Errorf("%w: dirX %v and dirY %v", ErrNotOrthogonal, dirX, dirY)
	}
	return Plane{origin: origin, dirX: ux, dirY: uy}, nil
}

// NewPlaneFromNormal constructs a plane through origin perpendicular to
// normal, deriving an arbitrary but deterministic orthonormal basis for
// the in-plane directions. It fails with [ErrZeroVector] when normal is
// degenerate.
func NewPlaneFromNormal(origin Point3, normal Vec3) (Plane, error) {
	n, err := NewUnitVec3(normal)
	if err != nil {
		return Plane{}, err
	}
	// Seed with the global axis least aligned with the normal.
	seed := V3(1, 0, 0)
	if math.Abs(n.X()) > math.Abs(n.Y()) {
		seed = V3(0, 1, 0)
	}
	dirX := mustUnitVec3(seed.Cross(n.Vec()))
	dirY := mustUnitVec3(n.Vec().Cross(dirX.Vec()))
	return Plane{origin: origin, dirX: dirX, dirY: dirY}, nil
}

// Origin returns the plane's origin.
func (p Plane) Origin() Point3 { return p.origin }

// DirX returns the plane's local x direction.
func (p Plane) DirX() UnitVec3 { return p.dirX }

// DirY returns the plane's local y direction.
func (p Plane) DirY() UnitVec3 { return p.dirY }

// Normal returns the plane's normal, DirX × DirY. The cross product of
// two orthonormal directions is itself a unit vector.
func (p Plane) Normal() UnitVec3 {
	return UnitVec3{p.dirX.Cross(p.dirY)}
}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(origin: %v, dirX: %v, dirY: %v)", p.origin, p.dirX, p.dirY)
}

// Equal reports whether two planes coincide within tolerance: same
// origin and the same pair of spanning directions.
func (p Plane) Equal(o Plane) bool {
	return p.origin.Equal(o.origin) &&
		p.dirX.Equal(o.dirX) &&
		p.dirY.Equal(o.dirY)
}

// ContainsPoint reports whether pt lies on the plane within
// [LengthAccuracy], measured along the normal.
func (p Plane) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Sub(p.origin).Dot(p.Normal().Vec()))
}

// Local maps a point in the plane's 2D coordinate system to global 3D
// space.
func (p Plane) Local(pt Point2) Point3 {
	return p.origin.
		Translate(p.dirX.Vec().Mul(pt.X)).
		Translate(p.dirY.Vec().Mul(pt.Y))
}

// Transformed returns the image of the plane under m, renormalizing the
// direction images. m must preserve the right angle between the
// directions (rigid transforms and uniform scales do); the result is
// validated and a shearing transform is reported as an error.
func (p Plane) Transformed(m Mat4) (Plane, error) {
	return NewPlane(
		p.origin.Transform(m),
		p.dirX.Transform(m).Vec(),
		p.dirY.Transform(m).Vec(),
	)
}

// Frame is a [Plane] extended to a full 3D coordinate system by the
// derived third axis DirZ = DirX × DirY.
type Frame struct {
	Plane
}

// NewFrame constructs a frame with the same validation as [NewPlane].
func NewFrame(origin Point3, dirX, dirY Vec3) (Frame, error) {
	p, err := NewPlane(origin, dirX, dirY)
	if err != nil {
		return Frame{}, err
	}
	return Frame{p}, nil
}

// GlobalFrame returns the frame of the global coordinate system.
func GlobalFrame() Frame {
	return Frame{XYPlane(Pt3(0, 0, 0))}
}

// DirZ returns the frame's derived z direction, DirX × DirY.
func (f Frame) DirZ() UnitVec3 { return f.Normal() }

// ToGlobal returns the transform that maps coordinates local to the
// frame into global coordinates.
func (f Frame) ToGlobal() Mat4 {
	x, y, z := f.dirX.Vec(), f.dirY.Vec(), f.DirZ().Vec()
	return Mat4{
		{x.X, y.X, z.X, f.origin.X},
		{x.Y, y.Y, z.Y, f.origin.Y},
		{x.Z, y.Z, z.Z, f.origin.Z},
		{0, 0, 0, 1},
	}
}

// ToLocal returns the inverse of [Frame.ToGlobal]. The basis is
// orthonormal, so the rotation block inverts by transposition.
func (f Frame) ToLocal() Mat4 {
	x, y, z := f.dirX.Vec(), f.dirY.Vec(), f.DirZ().Vec()
	o := Pt3(0, 0, 0).Sub(f.origin)
	return Mat4{
		{x.X, x.Y, x.Z, o.Dot(x)},
		{y.X, y.Y, y.Z, o.Dot(y)},
		{z.X, z.Y, z.Z, o.Dot(z)},
		{0, 0, 0, 1},
	}
}
