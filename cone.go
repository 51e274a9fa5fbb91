package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
)

// Cone is a right circular cone around a frame's z axis. The surface
// passes through the circle of the given radius in the frame's xy
// plane and narrows towards the apex below it. The u parameter is the
// azimuth from the frame's x axis; the v parameter is the signed
// distance along the slant from the xy plane, so that the radius at v
// is radius + v·sin(halfAngle).
type Cone struct {
	frame     Frame
	radius    float64
	halfAngle s1.Angle
}

var _ Surface = Cone{}

// NewCone constructs a cone from its base radius and half-angle, the
// angle between the axis and the slant. The radius must be positive
// within [LengthAccuracy] and the half-angle must lie strictly between
// 0 and π/2 within [AngleAccuracy].
func NewCone(frame Frame, radius float64, halfAngle s1.Angle) (Cone, error) {
	if !LengthIsPositive(radius) {
		return Cone{}, fmt.Errorf("%w: cone radius %g", ErrNotPositive, radius)
	}
	a := halfAngle.Radians()
	if !AngleIsPositive(a) || AngleIsPositive(a-math.Pi/2) || AngleIsZero(a-math.Pi/2) {
		return Cone{}, fmt.Errorf("%w: cone half-angle %v must be in (0, π/2)", ErrShape, halfAngle)
	}
	return Cone{frame: frame, radius: radius, halfAngle: halfAngle}, nil
}

// Frame returns the cone's local coordinate system.
func (c Cone) Frame() Frame { return c.frame }

// Origin returns the center of the base circle at v = 0.
func (c Cone) Origin() Point3 { return c.frame.Origin() }

// Radius returns the radius of the base circle at v = 0.
func (c Cone) Radius() float64 { return c.radius }

// HalfAngle returns the angle between the axis and the slant.
func (c Cone) HalfAngle() s1.Angle { return c.halfAngle }

// ApexParam returns the v parameter of the apex, where the radius
// vanishes.
func (c Cone) ApexParam() float64 {
	return -c.radius / math.Sin(c.halfAngle.Radians())
}

// Apex returns the apex point.
func (c Cone) Apex() Point3 {
	v := c.ApexParam()
	return c.Origin().Translate(c.frame.DirZ().Vec().Mul(v * math.Cos(c.halfAngle.Radians())))
}

func (c Cone) String() string {
	return fmt.Sprintf("Cone(origin: %v, radius: %g, halfAngle: %v)", c.Origin(), c.radius, c.halfAngle)
}

// ParameterizationUV implements [Surface]. The v domain starts at the
// apex and is unbounded above.
func (c Cone) ParameterizationUV() (u, v Parameterization) {
	u = Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(0, 2*math.Pi),
	}
	v = Parameterization{
		Form:     OpenForm,
		Type:     LinearType,
		Interval: NewInterval(c.ApexParam(), math.Inf(1)),
	}
	return u, v
}

// ContainsParam implements [Surface].
func (c Cone) ContainsParam(uv ParamUV) bool {
	pu, pv := c.ParameterizationUV()
	return pu.Interval.Contains(uv.U) && pv.Interval.Contains(uv.V)
}

// ContainsPoint implements [Surface].
func (c Cone) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Distance(c.ProjectPoint(pt).Position()))
}

// Transformed implements [Surface]. m is expected to preserve angles
// and lengths; radius and half-angle are carried over unchanged.
func (c Cone) Transformed(m Mat4) Surface {
	p, err := c.frame.Plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Cone{frame: Frame{p}, radius: c.radius, halfAngle: c.halfAngle}
}

// Equal implements [Surface].
func (c Cone) Equal(o Surface) bool {
	oc, ok := o.(Cone)
	if !ok {
		return false
	}
	return c.frame.Equal(oc.frame.Plane) &&
		WithinTolerance(c.radius, oc.radius, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(c.halfAngle.Radians(), oc.halfAngle.Radians(), AngleAccuracy, AngleAccuracy)
}

// Evaluate implements [Surface].
func (c Cone) Evaluate(uv ParamUV) SurfaceEvaluation {
	return &ConeEvaluation{cone: c, surfEval: newSurfEval(uv)}
}

// ProjectPoint implements [Surface]. The azimuth comes straight from
// the point's position around the axis; the slant parameter is the
// projection onto the ruling line at that azimuth, clamped at the
// apex. A point on the axis projects to u = 0.
func (c Cone) ProjectPoint(pt Point3) SurfaceEvaluation {
	d := pt.Sub(c.Origin())
	x := d.Dot(c.frame.DirX().Vec())
	y := d.Dot(c.frame.DirY().Vec())
	z := d.Dot(c.frame.DirZ().Vec())
	u := 0.0
	if !LengthIsZero(x) || !LengthIsZero(y) {
		u = math.Atan2(y, x)
		if u < 0 {
			u += 2 * math.Pi
		}
	}
	sin, cos := math.Sincos(c.halfAngle.Radians())
	v := (math.Hypot(x, y)-c.radius)*sin + z*cos
	v = max(v, c.ApexParam())
	return c.Evaluate(ParamUV{U: u, V: v})
}

// ConeEvaluation is a [SurfaceEvaluation] on a [Cone].
type ConeEvaluation struct {
	cone Cone
	surfEval
}

var _ SurfaceEvaluation = (*ConeEvaluation)(nil)

// radial returns the outward unit direction at the evaluation's
// azimuth, perpendicular to the axis.
func (ev *ConeEvaluation) radial() Vec3 {
	f := ev.cone.frame
	sinU, cosU := math.Sincos(ev.uv.U)
	return f.DirX().Vec().Mul(cosU).Add(f.DirY().Vec().Mul(sinU))
}

// radiusAt returns the cone's radius at the evaluation's v parameter.
func (ev *ConeEvaluation) radiusAt() float64 {
	return ev.cone.radius + ev.uv.V*math.Sin(ev.cone.halfAngle.Radians())
}

// Position implements [SurfaceEvaluation].
func (ev *ConeEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		c := ev.cone
		cos := math.Cos(c.halfAngle.Radians())
		ev.pos.set(c.Origin().
			Translate(ev.radial().Mul(ev.radiusAt())).
			Translate(c.frame.DirZ().Vec().Mul(ev.uv.V * cos)))
	}
	return ev.pos.value
}

// Normal implements [SurfaceEvaluation]. The normal tilts down the
// slant by the half-angle; it is undefined at the apex, where it
// degrades to the limit along the evaluated azimuth.
func (ev *ConeEvaluation) Normal() UnitVec3 {
	ev.mustBeSet()
	if !ev.normal.isSet {
		c := ev.cone
		sin, cos := math.Sincos(c.halfAngle.Radians())
		n := ev.radial().Mul(cos).Sub(c.frame.DirZ().Vec().Mul(sin))
		ev.normal.set(UnitVec3{n})
	}
	return ev.normal.value
}

// UDerivative implements [SurfaceEvaluation].
func (ev *ConeEvaluation) UDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.du.isSet {
		f := ev.cone.frame
		sinU, cosU := math.Sincos(ev.uv.U)
		rho := ev.radiusAt()
		ev.du.set(f.DirX().Vec().Mul(-rho * sinU).Add(f.DirY().Vec().Mul(rho * cosU)))
	}
	return ev.du.value
}

// VDerivative implements [SurfaceEvaluation]. The slant direction is
// constant along a ruling.
func (ev *ConeEvaluation) VDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.dv.isSet {
		c := ev.cone
		sin, cos := math.Sincos(c.halfAngle.Radians())
		ev.dv.set(ev.radial().Mul(sin).Add(c.frame.DirZ().Vec().Mul(cos)))
	}
	return ev.dv.value
}

// MinCurvature implements [SurfaceEvaluation]. The ruling direction is
// straight.
func (ev *ConeEvaluation) MinCurvature() float64 {
	ev.mustBeSet()
	return 0
}

// MaxCurvature implements [SurfaceEvaluation]. The circumferential
// normal curvature grows towards the apex, where it diverges.
func (ev *ConeEvaluation) MaxCurvature() float64 {
	ev.mustBeSet()
	if !ev.kmax.isSet {
		cos := math.Cos(ev.cone.halfAngle.Radians())
		ev.kmax.set(cos / ev.radiusAt())
	}
	return ev.kmax.value
}
