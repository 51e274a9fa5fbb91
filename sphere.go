package geom

import (
	"fmt"
	"math"
)

// Sphere is a full sphere centered at a frame's origin. The u parameter
// is the azimuth from the frame's x axis within the xy plane; the v
// parameter is the elevation from the xy plane towards the z axis.
type Sphere struct {
	frame  Frame
	radius float64
}

var _ Surface = Sphere{}

// NewSphere constructs a sphere of the given radius centered at the
// frame's origin. The radius must be positive within [LengthAccuracy].
func NewSphere(frame Frame, radius float64) (Sphere, error) {
	if !LengthIsPositive(radius) {
		return Sphere{}, fmt.Errorf("%w: sphere radius %g", ErrNotPositive, radius)
	}
	return Sphere{frame: frame, radius: radius}, nil
}

// Frame returns the sphere's local coordinate system.
func (s Sphere) Frame() Frame { return s.frame }

// Origin returns the sphere's center.
func (s Sphere) Origin() Point3 { return s.frame.Origin() }

// Radius returns the sphere's radius.
func (s Sphere) Radius() float64 { return s.radius }

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(origin: %v, radius: %g)", s.Origin(), s.radius)
}

// ParameterizationUV implements [Surface].
func (s Sphere) ParameterizationUV() (u, v Parameterization) {
	u = Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(0, 2*math.Pi),
	}
	v = Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(-math.Pi/2, math.Pi/2),
	}
	return u, v
}

// ContainsParam implements [Surface].
func (s Sphere) ContainsParam(uv ParamUV) bool {
	pu, pv := s.ParameterizationUV()
	return pu.Interval.Contains(uv.U) && pv.Interval.Contains(uv.V)
}

// ContainsPoint implements [Surface].
func (s Sphere) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Distance(s.Origin()) - s.radius)
}

// Transformed implements [Surface]. m is expected to preserve angles
// and lengths; the radius is carried over unchanged.
func (s Sphere) Transformed(m Mat4) Surface {
	p, err := s.frame.Plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Sphere{frame: Frame{p}, radius: s.radius}
}

// Equal implements [Surface].
func (s Sphere) Equal(o Surface) bool {
	os, ok := o.(Sphere)
	if !ok {
		return false
	}
	return s.frame.Equal(os.frame.Plane) &&
		WithinTolerance(s.radius, os.radius, LengthAccuracy, LengthAccuracy)
}

// Evaluate implements [Surface].
func (s Sphere) Evaluate(uv ParamUV) SurfaceEvaluation {
	return &SphereEvaluation{sphere: s, surfEval: newSurfEval(uv)}
}

// ProjectPoint implements [Surface]. The closest parameters are the
// azimuth and elevation of pt as seen from the center. The center
// itself is equidistant from the whole surface and projects to the
// origin of the parameter domain.
func (s Sphere) ProjectPoint(pt Point3) SurfaceEvaluation {
	d := pt.Sub(s.Origin())
	x := d.Dot(s.frame.DirX().Vec())
	y := d.Dot(s.frame.DirY().Vec())
	z := d.Dot(s.frame.DirZ().Vec())
	if LengthIsZero(x) && LengthIsZero(y) && LengthIsZero(z) {
		return s.Evaluate(ParamUV{})
	}
	u := math.Atan2(y, x)
	if u < 0 {
		u += 2 * math.Pi
	}
	if LengthIsZero(x) && LengthIsZero(y) {
		u = 0
	}
	v := math.Atan2(z, math.Hypot(x, y))
	return s.Evaluate(ParamUV{U: u, V: v})
}

// SphereEvaluation is a [SurfaceEvaluation] on a [Sphere].
type SphereEvaluation struct {
	sphere Sphere
	surfEval
}

var _ SurfaceEvaluation = (*SphereEvaluation)(nil)

// radial returns the outward unit direction at the evaluation's
// parameters.
func (ev *SphereEvaluation) radial() Vec3 {
	f := ev.sphere.frame
	sinU, cosU := math.Sincos(ev.uv.U)
	sinV, cosV := math.Sincos(ev.uv.V)
	return f.DirX().Vec().Mul(cosV * cosU).
		Add(f.DirY().Vec().Mul(cosV * sinU)).
		Add(f.DirZ().Vec().Mul(sinV))
}

// Position implements [SurfaceEvaluation].
func (ev *SphereEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		ev.pos.set(ev.sphere.Origin().Translate(ev.radial().Mul(ev.sphere.radius)))
	}
	return ev.pos.value
}

// Normal implements [SurfaceEvaluation].
func (ev *SphereEvaluation) Normal() UnitVec3 {
	ev.mustBeSet()
	if !ev.normal.isSet {
		ev.normal.set(UnitVec3{ev.radial()})
	}
	return ev.normal.value
}

// UDerivative implements [SurfaceEvaluation].
func (ev *SphereEvaluation) UDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.du.isSet {
		f := ev.sphere.frame
		sinU, cosU := math.Sincos(ev.uv.U)
		cosV := math.Cos(ev.uv.V)
		ev.du.set(f.DirX().Vec().Mul(-ev.sphere.radius * cosV * sinU).
			Add(f.DirY().Vec().Mul(ev.sphere.radius * cosV * cosU)))
	}
	return ev.du.value
}

// VDerivative implements [SurfaceEvaluation].
func (ev *SphereEvaluation) VDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.dv.isSet {
		f := ev.sphere.frame
		sinU, cosU := math.Sincos(ev.uv.U)
		sinV, cosV := math.Sincos(ev.uv.V)
		r := ev.sphere.radius
		ev.dv.set(f.DirX().Vec().Mul(-r * sinV * cosU).
			Add(f.DirY().Vec().Mul(-r * sinV * sinU)).
			Add(f.DirZ().Vec().Mul(r * cosV)))
	}
	return ev.dv.value
}

// MinCurvature implements [SurfaceEvaluation]. Every normal section of
// a sphere is a great circle.
func (ev *SphereEvaluation) MinCurvature() float64 {
	ev.mustBeSet()
	return 1 / ev.sphere.radius
}

// MaxCurvature implements [SurfaceEvaluation].
func (ev *SphereEvaluation) MaxCurvature() float64 {
	ev.mustBeSet()
	return 1 / ev.sphere.radius
}
