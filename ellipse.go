package geom

import (
	"fmt"
	"math"
)

// Ellipse is a full ellipse lying in a plane, centered at the plane's
// origin with the major radius along the plane's local x axis. The
// parameter is the eccentric angle, which is proportional to arc length
// only for a circle.
type Ellipse struct {
	plane Plane
	major float64
	minor float64
}

var _ Curve = Ellipse{}

// NewEllipse constructs an ellipse in the given plane. Both radii must
// be positive within [LengthAccuracy] and the major radius must not be
// smaller than the minor radius.
func NewEllipse(plane Plane, major, minor float64) (Ellipse, error) {
	if !LengthIsPositive(major) {
		return Ellipse{}, fmt.Errorf("%w: ellipse major radius %g", ErrNotPositive, major)
	}
	if !LengthIsPositive(minor) {
		return Ellipse{}, fmt.Errorf("%w: ellipse minor radius %g", ErrNotPositive, minor)
	}
	if LengthIsNegative(major - minor) {
		return Ellipse{}, fmt.Errorf("%w: ellipse major radius %g is smaller than minor radius %g", ErrShape, major, minor)
	}
	return Ellipse{plane: plane, major: major, minor: minor}, nil
}

// Plane returns the plane the ellipse lies in.
func (e Ellipse) Plane() Plane { return e.plane }

// Origin returns the ellipse's center.
func (e Ellipse) Origin() Point3 { return e.plane.Origin() }

// MajorRadius returns the semi-major axis length, along the plane's
// local x axis.
func (e Ellipse) MajorRadius() float64 { return e.major }

// MinorRadius returns the semi-minor axis length, along the plane's
// local y axis.
func (e Ellipse) MinorRadius() float64 { return e.minor }

// Eccentricity returns the ellipse's eccentricity, in [0, 1).
func (e Ellipse) Eccentricity() float64 {
	return math.Sqrt(1 - (e.minor*e.minor)/(e.major*e.major))
}

func (e Ellipse) String() string {
	return fmt.Sprintf("Ellipse(origin: %v, major: %g, minor: %g)", e.Origin(), e.major, e.minor)
}

// Parameterization implements [Curve]. The eccentric angle domain is
// one full turn; it is not proportional to arc length, hence
// [OtherType].
func (e Ellipse) Parameterization() Parameterization {
	return Parameterization{
		Form:     ClosedForm,
		Type:     OtherType,
		Interval: NewInterval(0, 2*math.Pi),
	}
}

// ContainsParam implements [Curve].
func (e Ellipse) ContainsParam(t float64) bool {
	return e.Parameterization().Interval.Contains(t)
}

// ContainsPoint implements [Curve].
func (e Ellipse) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Distance(e.ProjectPoint(pt).Position()))
}

// Transformed implements [Curve]. m is expected to preserve angles and
// lengths; the radii are carried over unchanged.
func (e Ellipse) Transformed(m Mat4) Curve {
	p, err := e.plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Ellipse{plane: p, major: e.major, minor: e.minor}
}

// Equal implements [Curve].
func (e Ellipse) Equal(o Curve) bool {
	oe, ok := o.(Ellipse)
	if !ok {
		return false
	}
	return e.plane.Equal(oe.plane) &&
		WithinTolerance(e.major, oe.major, LengthAccuracy, LengthAccuracy) &&
		WithinTolerance(e.minor, oe.minor, LengthAccuracy, LengthAccuracy)
}

// Evaluate implements [Curve].
func (e Ellipse) Evaluate(t float64) CurveEvaluation {
	return &EllipseEvaluation{ellipse: e, curveEval: newCurveEval(t)}
}

// ProjectPoint implements [Curve]. The nearest eccentric angle has no
// closed form for a true ellipse, so the azimuth-based initial guess is
// refined with Newton iterations on the stationarity condition
//
//	g(t) = (P(t) - pt) · P'(t) = 0
//
// which converges in a handful of steps for points away from the
// center. The center itself is equidistant in the scaled metric and
// projects to the end of the minor axis, the nearest point on the
// curve.
func (e Ellipse) ProjectPoint(pt Point3) CurveEvaluation {
	d := pt.Sub(e.Origin())
	x := d.Dot(e.plane.DirX().Vec())
	y := d.Dot(e.plane.DirY().Vec())
	if LengthIsZero(x) && LengthIsZero(y) {
		return e.Evaluate(math.Pi / 2)
	}
	a, b := e.major, e.minor
	t := math.Atan2(a*y, b*x)
	for iter := 0; iter < 32; iter++ {
		sin, cos := math.Sincos(t)
		// g and its derivative for the in-plane distance function.
		g := (a*cos-x)*(-a*sin) + (b*sin-y)*(b*cos)
		dg := a*a*sin*sin - a*cos*(a*cos-x) + b*b*cos*cos - b*sin*(b*sin-y)
		if dg == 0 {
			break
		}
		step := g / dg
		t -= step
		if math.Abs(step) < AngleAccuracy {
			break
		}
	}
	t = math.Mod(t, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	return e.Evaluate(t)
}

// EllipseEvaluation is a [CurveEvaluation] on an [Ellipse].
type EllipseEvaluation struct {
	ellipse Ellipse
	curveEval
}

var _ CurveEvaluation = (*EllipseEvaluation)(nil)

// Position implements [CurveEvaluation].
func (ev *EllipseEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		e := ev.ellipse
		sin, cos := math.Sincos(ev.param)
		ev.pos.set(e.Origin().
			Translate(e.plane.DirX().Vec().Mul(e.major * cos)).
			Translate(e.plane.DirY().Vec().Mul(e.minor * sin)))
	}
	return ev.pos.value
}

// FirstDerivative implements [CurveEvaluation].
func (ev *EllipseEvaluation) FirstDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.first.isSet {
		e := ev.ellipse
		sin, cos := math.Sincos(ev.param)
		ev.first.set(e.plane.DirX().Vec().Mul(-e.major * sin).
			Add(e.plane.DirY().Vec().Mul(e.minor * cos)))
	}
	return ev.first.value
}

// SecondDerivative implements [CurveEvaluation].
func (ev *EllipseEvaluation) SecondDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.second.isSet {
		e := ev.ellipse
		sin, cos := math.Sincos(ev.param)
		ev.second.set(e.plane.DirX().Vec().Mul(-e.major * cos).
			Add(e.plane.DirY().Vec().Mul(-e.minor * sin)))
	}
	return ev.second.value
}

// Curvature implements [CurveEvaluation].
func (ev *EllipseEvaluation) Curvature() float64 {
	ev.mustBeSet()
	if !ev.curv.isSet {
		e := ev.ellipse
		sin, cos := math.Sincos(ev.param)
		den := e.major*e.major*sin*sin + e.minor*e.minor*cos*cos
		ev.curv.set(e.major * e.minor / math.Pow(den, 1.5))
	}
	return ev.curv.value
}
