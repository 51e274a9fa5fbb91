package geom

import (
	"fmt"
	"math"
)

// Circle is a full circle lying in a plane, centered at the plane's
// origin and parameterized by the angle from the plane's local x axis,
// in radians.
type Circle struct {
	plane  Plane
	radius float64
}

var _ Curve = Circle{}

// NewCircle constructs a circle of the given radius in the given plane.
// The radius must be positive within [LengthAccuracy].
func NewCircle(plane Plane, radius float64) (Circle, error) {
	if !LengthIsPositive(radius) {
		return Circle{}, fmt.Errorf("%w: circle radius %g", ErrNotPositive, radius)
	}
	return Circle{plane: plane, radius: radius}, nil
}

// Plane returns the plane the circle lies in.
func (c Circle) Plane() Plane { return c.plane }

// Origin returns the circle's center.
func (c Circle) Origin() Point3 { return c.plane.Origin() }

// Radius returns the circle's radius.
func (c Circle) Radius() float64 { return c.radius }

func (c Circle) String() string {
	return fmt.Sprintf("Circle(origin: %v, radius: %g)", c.Origin(), c.radius)
}

// Parameterization implements [Curve]. The angle domain is one full
// turn.
func (c Circle) Parameterization() Parameterization {
	return Parameterization{
		Form:     ClosedForm,
		Type:     CircularType,
		Interval: NewInterval(0, 2*math.Pi),
	}
}

// ContainsParam implements [Curve].
func (c Circle) ContainsParam(t float64) bool {
	return c.Parameterization().Interval.Contains(t)
}

// ContainsPoint implements [Curve].
func (c Circle) ContainsPoint(pt Point3) bool {
	return LengthIsZero(pt.Distance(c.ProjectPoint(pt).Position()))
}

// Transformed implements [Curve]. m is expected to preserve angles and
// lengths; the radius is carried over unchanged.
func (c Circle) Transformed(m Mat4) Curve {
	p, err := c.plane.Transformed(m)
	if err != nil {
		panic(err)
	}
	return Circle{plane: p, radius: c.radius}
}

// Equal implements [Curve].
func (c Circle) Equal(o Curve) bool {
	oc, ok := o.(Circle)
	if !ok {
		return false
	}
	return c.plane.Equal(oc.plane) &&
		WithinTolerance(c.radius, oc.radius, LengthAccuracy, LengthAccuracy)
}

// Evaluate implements [Curve].
func (c Circle) Evaluate(t float64) CurveEvaluation {
	return &CircleEvaluation{circle: c, curveEval: newCurveEval(t)}
}

// ProjectPoint implements [Curve]. The closest angle is the azimuth of
// pt in the circle's plane. A point on the circle's axis is equidistant
// from every angle; it projects to angle 0.
func (c Circle) ProjectPoint(pt Point3) CurveEvaluation {
	d := pt.Sub(c.Origin())
	x := d.Dot(c.plane.DirX().Vec())
	y := d.Dot(c.plane.DirY().Vec())
	if LengthIsZero(x) && LengthIsZero(y) {
		return c.Evaluate(0)
	}
	t := math.Atan2(y, x)
	if t < 0 {
		t += 2 * math.Pi
	}
	return c.Evaluate(t)
}

// local returns radial and tangential basis vectors at angle t.
func (c Circle) local(t float64) (radial, tangent Vec3) {
	sin, cos := math.Sincos(t)
	x := c.plane.DirX().Vec()
	y := c.plane.DirY().Vec()
	return x.Mul(cos).Add(y.Mul(sin)), x.Mul(-sin).Add(y.Mul(cos))
}

// CircleEvaluation is a [CurveEvaluation] on a [Circle].
type CircleEvaluation struct {
	circle Circle
	curveEval
}

var _ CurveEvaluation = (*CircleEvaluation)(nil)

// Position implements [CurveEvaluation].
func (ev *CircleEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		radial, _ := ev.circle.local(ev.param)
		ev.pos.set(ev.circle.Origin().Translate(radial.Mul(ev.circle.radius)))
	}
	return ev.pos.value
}

// FirstDerivative implements [CurveEvaluation].
func (ev *CircleEvaluation) FirstDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.first.isSet {
		_, tangent := ev.circle.local(ev.param)
		ev.first.set(tangent.Mul(ev.circle.radius))
	}
	return ev.first.value
}

// SecondDerivative implements [CurveEvaluation].
func (ev *CircleEvaluation) SecondDerivative() Vec3 {
	ev.mustBeSet()
	if !ev.second.isSet {
		radial, _ := ev.circle.local(ev.param)
		ev.second.set(radial.Mul(-ev.circle.radius))
	}
	return ev.second.value
}

// Curvature implements [CurveEvaluation]. A circle's curvature is the
// reciprocal of its radius everywhere.
func (ev *CircleEvaluation) Curvature() float64 {
	ev.mustBeSet()
	return 1 / ev.circle.radius
}
