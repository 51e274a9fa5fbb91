package geom

import (
	"fmt"
	"math"
)

// Torus is a ring torus around a frame's z axis: the surface swept by a
// circle of the minor radius whose center travels the circle of the
// major radius in the frame's xy plane. The u parameter is the azimuth
// around the axis; the v parameter is the angle around the swept tube,
// with v = 0 pointing away from the axis.
type Torus struct {
	frame Frame
	major float64
	minor float64
}

var _ Surface = Torus{}

// NewTorus constructs a torus from its major and minor radii. Both must
// be positive within [LengthAccuracy], and the major radius must not be
// smaller than the minor radius: spindle tori are not modeled.
func NewTorus(frame Frame, major, minor float64) (Torus, error) {
	if !LengthIsPositive(major) {
		return Torus{}, fmt.Errorf("%w: torus major radius %g", ErrNotPositive, major)
	}
	if !LengthIsPositive(minor) {
		return Torus{}, fmt.Errorf("%w: torus minor radius %g", ErrNotPositive, minor)
	}
	if LengthIsNegative(major - minor) {
		return Torus{}, fmt.Errorf("%w: torus major radius %g is smaller than minor radius %g", ErrShape, major, minor)
	}
	return Torus{frame: frame, major: major, minor: minor}, nil
}

// Frame returns the torus's local coordinate system.
func (t Torus) Frame() Frame { return t.frame }

// Origin returns the torus's center.
func (t Torus) Origin() Point3 { return t.frame.Origin() }

// MajorRadius returns the radius of the circle swept by the tube's
// center.
func (t Torus) MajorRadius() float64 { return t.major }

// MinorRadius returns the radius of the swept tube.
func (t Torus) MinorRadius() float64 { return t.minor }

func (t Torus) String() string {
	return fmt.Sprintf("Torus(origin: %v, major: %g, minor: %g)", t.Origin(), t.major, t.minor)
}

// ParameterizationUV implements [Surface]. Both parameters are full
// turns.
func (t Torus) ParameterizationUV() (u, v Parameterization) {
	p := Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(0, 2*math.Pi),
	}
	return p, p
}

// ContainsParam implements [Surface].
func (t Torus) ContainsParam(uv ParamUV) bool {
	pu, pv := t.ParameterizationUV()
	return pu.Interval.Contains(uv.U) && pv.Interval.Contains(uv.V)
}

// ContainsPoint implements [Surface].
func (t Torus) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Distance(t.ProjectPoint(pt).Position()))
}

// Transformed implements [Surface]. m is expected to preserve angles
// and lengths; the radii are carried over unchanged.
func (t Torus) Transformed(m Mat4) Surface {
	p, err := t.frame.Plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Torus{frame: Frame{p}, major: t.major, minor: t.minor}
}

// Equal implements [Surface].
func (t Torus) Equal(o Surface) bool {
	ot, ok := o.(Torus)
	if !ok {
		return false
	}
	return t.frame.Equal(ot.frame.Plane) &&
		WithinTolerance(t.major, ot.major, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(t.minor, ot.minor, LengthAccuracy, LengthAccuracy)
}

// Evaluate implements [Surface].
func (t Torus) Evaluate(uv ParamUV) SurfaceEvaluation {
	return &TorusEvaluation{torus: t, surfEval: newSurfEval(uv)}
}

// ProjectPoint implements [Surface]. The azimuth comes from the point's
// position around the axis; the tube angle from its position relative
// to the tube's center circle. A point on the axis projects to u = 0.
func (t Torus) ProjectPoint(pt Point3) SurfaceEvaluation {
	d := pt.Sub(t.Origin())
	x := d.Dot(t.frame.DirX().Vec())
	y := d.Dot(t.frame.DirY().Vec())
	z := d.Dot(t.frame.DirZ().Vec())
	u := 0.0
	if !LengthIsZero(x) || !LengthIsZero(y) {
		u = math.Atan2(y, x)
		if u < 0 {
			u += 2 * math.Pi
		}
	}
	radial := math.Hypot(x, y) - t.major
	v := 0.0
	if !LengthIsZero(radial) || !LengthIsZero(z) {
		v = math.Atan2(z, radial)
		if v < 0 {
			v += 2 * math.Pi
		}
	}
	return t.Evaluate(ParamUV{U: u, V: v})
}

// TorusEvaluation is a [SurfaceEvaluation] on a [Torus].
type TorusEvaluation struct {
	torus Torus
	surfEval
}

var _ SurfaceEvaluation = (*TorusEvaluation)(nil)

// radial returns the outward unit direction at the evaluation's
// azimuth, perpendicular to the axis.
func (ev *TorusEvaluation) radial() Vec3 {
	f := ev.torus.frame
	sinU, cosU := math.Sincos(ev.uv.U)
	return f.DirX().Vec().Mul(cosU).Add(f.DirY().Vec().Mul(sinU))
}

// Position implements [SurfaceEvaluation].
func (ev *TorusEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		t := ev.torus
		sinV, cosV := math.Sincos(ev.uv.V)
		ev.pos.set(t.Origin().
			Translate(ev.radial().Mul(t.major + t.minor*cosV)).
			Translate(t.frame.DirZ().Vec().Mul(t.minor * sinV)))
	}
	return ev.pos.value
}

// Normal implements [SurfaceEvaluation]. The normal points from the
// tube's center circle through the evaluated point.
func (ev *TorusEvaluation) Normal() UnitVec3 {
	ev.mustBeSet()
	if !ev.normal.isSet {
		t := ev.torus
		sinV, cosV := math.Sincos(ev.uv.V)
		n := ev.radial().Mul(cosV).Add(t.frame.DirZ().Vec().Mul(sinV))
		ev.normal.set(UnitVec3{n})
	}
	return ev.normal.value
}

// UDerivative implements [SurfaceEvaluation].
func (ev *TorusEvaluation) UDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.du.isSet {
		t := ev.torus
		f := t.frame
		sinU, cosU := math.Sincos(ev.uv.U)
		rho := t.major + t.minor*math.Cos(ev.uv.V)
		ev.du.set(f.DirX().Vec().Mul(-rho * sinU).Add(f.DirY().Vec().Mul(rho * cosU)))
	}
	return ev.du.value
}

// VDerivative implements [SurfaceEvaluation].
func (ev *TorusEvaluation) VDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.dv.isSet {
		t := ev.torus
		sinV, cosV := math.Sincos(ev.uv.V)
		ev.dv.set(ev.radial().Mul(-t.minor * sinV).
			Add(t.frame.DirZ().Vec().Mul(t.minor * cosV)))
	}
	return ev.dv.value
}

// MinCurvature implements [SurfaceEvaluation]. The normal curvature
// around the axis; it vanishes on the top and bottom circles and is
// negative on the inner half of the tube.
func (ev *TorusEvaluation) MinCurvature() float64 {
	ev.mustBeSet()
	if !ev.kmin.isSet {
		t := ev.torus
		cosV := math.Cos(ev.uv.V)
		ev.kmin.set(cosV / (t.major + t.minor*cosV))
	}
	return ev.kmin.value
}

// MaxCurvature implements [SurfaceEvaluation]. The section around the
// tube is a circle of the minor radius.
func (ev *TorusEvaluation) MaxCurvature() float64 {
	ev.mustBeSet()
	return 1 / ev.torus.minor
}
