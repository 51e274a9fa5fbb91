package geom

import "fmt"

// Line is an unbounded straight curve through an origin along a unit
// direction, parameterized by signed distance from the origin.
type Line struct {
	origin    Point3
	direction UnitVec3
}

var _ Curve = Line{}

// NewLine constructs a line through origin along direction. The
// direction is normalized at construction; a degenerate direction is
// rejected with [ErrZeroVector].
func NewLine(origin Point3, direction Vec3) (Line, error) {
	dir, err := NewUnitVec3(direction)
	if err != nil {
		return Line{}, err
	}
	return Line{origin: origin, direction: dir}, nil
}

// Origin returns the line's origin.
func (l Line) Origin() Point3 { return l.origin }

// Direction returns the line's unit direction.
func (l Line) Direction() UnitVec3 { return l.direction }

func (l Line) String() string {
	return fmt.Sprintf("Line(origin: %v, direction: %v)", l.origin, l.direction)
}

// Parameterization implements [Curve]. A line's parameter is the signed
// distance from the origin, over the full real line.
func (l Line) Parameterization() Parameterization {
	return Parameterization{
		Form:     OpenForm,
		Type:     LinearType,
		Interval: FullInterval(),
	}
}

// ContainsParam implements [Curve].
func (l Line) ContainsParam(t float64) bool {
	return l.Parameterization().Interval.Contains(t)
}

// ContainsPoint implements [Curve].
func (l Line) ContainsPoint(pt Point3) bool {
	d := pt.Sub(l.origin)
	off := d.Sub(l.direction.Vec().Mul(d.Dot(l.direction.Vec())))
	return LengthIsZero(off.Norm())
}

// Transformed implements [Curve].
func (l Line) Transformed(m Mat4) Curve {
	return Line{
		origin:    l.origin.Transform(m),
		direction: l.direction.Transform(m),
	}
}

// Equal implements [Curve]. Two lines are equal when their origins and
// directions coincide within tolerance; an antiparallel direction is a
// different line even though the point sets match.
func (l Line) Equal(o Curve) bool {
	ol, ok := o.(Line)
	if !ok {
		return false
	}
	return l.origin.Equal(ol.origin) && l.direction.Equal(ol.direction)
}

// Evaluate implements [Curve].
func (l Line) Evaluate(t float64) CurveEvaluation {
	return &LineEvaluation{line: l, curveEval: newCurveEval(t)}
}

// ProjectPoint implements [Curve]. The closest parameter on a line is
// the projection of pt onto the direction.
func (l Line) ProjectPoint(pt Point3) CurveEvaluation {
	return l.Evaluate(pt.Sub(l.origin).Dot(l.direction.Vec()))
}

// LineEvaluation is a [CurveEvaluation] on a [Line].
type LineEvaluation struct {
	line Line
	curveEval
}

var _ CurveEvaluation = (*LineEvaluation)(nil)

// Position implements [CurveEvaluation].
func (ev *LineEvaluation) Position() Point3 {
	ev.mustBeSet()
	if !ev.pos.isSet {
		ev.pos.set(ev.line.origin.Translate(ev.line.direction.Vec().Mul(ev.param)))
	}
	return ev.pos.value
}

// FirstDerivative implements [CurveEvaluation]. It is the line's
// direction everywhere.
func (ev *LineEvaluation) FirstDerivative() Vec3 {
	ev.mustBeSet()
	return ev.line.direction.Vec()
}

// SecondDerivative implements [CurveEvaluation]. It vanishes
// everywhere.
func (ev *LineEvaluation) SecondDerivative() Vec3 {
	ev.mustBeSet()
	return Vec3{}
}

// Curvature implements [CurveEvaluation]. A line has zero curvature.
func (ev *LineEvaluation) Curvature() float64 {
	ev.mustBeSet()
	return 0
}
